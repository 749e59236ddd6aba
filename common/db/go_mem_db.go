// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

var mlog = dlog.New("backend", "memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB sorted in memory db
type GoMemDB struct {
	db   *memdb.DB
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, cache)}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	v, err := db.db.Get(key)
	if err != nil {
		if err == lerrors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		mlog.Error("Get", "error", err)
		return nil, err
	}
	return cloneByte(v), nil
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	return db.db.Put(key, value)
}

// SetSync same as Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	err := db.db.Delete(key)
	if err == lerrors.ErrNotFound {
		return nil
	}
	return err
}

// DeleteSync same as Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close nothing to release
func (db *GoMemDB) Close() {
}

// Stats key count and size
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{
		"memdb.len":  strconv.Itoa(db.db.Len()),
		"memdb.size": strconv.Itoa(db.db.Size()),
	}
}

// Iterator iterator over a snapshot-free view, callers serialise writes
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()
	it := db.db.NewIterator(newRange(start, end))
	return &levelIt{Iterator: it, itBase: itBase{start, end, reverse}}
}

// NewBatch new batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kvOp struct {
	key    []byte
	value  []byte
	delete bool
}

type memBatch struct {
	db   *GoMemDB
	ops  []kvOp
	size int
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), value: cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, kvOp{key: cloneByte(key), delete: true})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, op := range b.ops {
		if op.delete {
			err := b.db.db.Delete(op.key)
			if err != nil && err != lerrors.ErrNotFound {
				return err
			}
			continue
		}
		if err := b.db.db.Put(op.key, op.value); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = nil
	b.size = 0
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key value backends and the state/local db interfaces
package db

import (
	"bytes"
	"errors"

	log "github.com/inconshreveable/log15"
	pkgerr "github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb key not found
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// Lister list operations of the local db
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

// KV state db seen by executors, writes are staged until Commit
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

// KVDB local db seen by executors
type KVDB interface {
	KV
	Lister
}

// IteratorDB iterator
type IteratorDB interface {
	// start is the prefix, end nil means every key with that prefix
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB backend
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch atomic write
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator iterator
type Iterator interface {
	Rewind() bool
	Next() bool
	// Seek positions at the first key >= key, or the last key <= key when reverse
	Seek(key []byte) bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Prefix() []byte
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	if !bytes.HasPrefix(key, it.start) {
		return false
	}
	if it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	return true
}

func (it *itBase) Prefix() []byte {
	return it.start
}

func newRange(start, end []byte) *util.Range {
	if end == nil {
		return util.BytesPrefix(start)
	}
	return &util.Range{Start: start, Limit: end}
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// backend names
const (
	MemDBBackendStr      = "memdb"
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BadgerDBBackendStr   = "badgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB open a backend by name
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB", "backend", backend, "err", "not registered")
		return nil, pkgerr.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		return nil, pkgerr.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"
	"strconv"

	"github.com/dgraph-io/badger"
)

var blog = dlog.New("backend", "badgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
	registerDBCreator(BadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".badger")
	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

// SetSync badger syncs on commit unless SyncWrites is off
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

// DeleteSync same as Delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// DB raw badger
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

// Close close
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

// Stats table sizes
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  bytesString(lsm),
		"badger.vlog": bytesString(vlog),
	}
}

func bytesString(n int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	i := 0
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}
	return strconv.FormatInt(n, 10) + units[i]
}

// Iterator iterator inside a read only transaction, released by Close
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	if end == nil {
		end = newRange(start, nil).Limit
	}
	return &badgerIt{itBase: itBase{start, end, reverse}, txn: txn, iter: it}
}

type badgerIt struct {
	itBase
	txn  *badger.Txn
	iter *badger.Iterator
	err  error
}

func (it *badgerIt) Rewind() bool {
	if !it.reverse {
		it.iter.Seek(it.start)
		return it.Valid()
	}
	if it.end == nil {
		it.iter.Rewind()
		return it.Valid()
	}
	// end is exclusive
	it.iter.Seek(it.end)
	if it.iter.Valid() && bytes.Equal(it.iter.Item().Key(), it.end) {
		it.iter.Next()
	}
	return it.Valid()
}

func (it *badgerIt) Next() bool {
	it.iter.Next()
	return it.Valid()
}

func (it *badgerIt) Seek(key []byte) bool {
	it.iter.Seek(key)
	return it.Valid()
}

func (it *badgerIt) Valid() bool {
	return it.iter.Valid() && it.checkKey(it.iter.Item().Key())
}

func (it *badgerIt) Key() []byte {
	return it.iter.Item().Key()
}

func (it *badgerIt) Value() []byte {
	value, err := it.iter.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *badgerIt) ValueCopy() []byte {
	return it.Value()
}

func (it *badgerIt) Error() error {
	return it.err
}

func (it *badgerIt) Close() {
	it.iter.Close()
	it.txn.Discard()
}

// NewBatch new batch
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db, txn: db.db.NewTransaction(true)}
}

type goBadgerDBBatch struct {
	db   *GoBadgerDB
	txn  *badger.Txn
	size int
	err  error
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.apply(func(txn *badger.Txn) error { return txn.Set(cloneByte(key), cloneByte(value)) })
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.apply(func(txn *badger.Txn) error { return txn.Delete(cloneByte(key)) })
	mBatch.size++
}

// apply commits the pending transaction when it grows too big and retries once
func (mBatch *goBadgerDBBatch) apply(op func(txn *badger.Txn) error) {
	if mBatch.err != nil {
		return
	}
	err := op(mBatch.txn)
	if err == badger.ErrTxnTooBig {
		if err = mBatch.txn.Commit(); err != nil {
			mBatch.err = err
			return
		}
		mBatch.txn = mBatch.db.db.NewTransaction(true)
		err = op(mBatch.txn)
	}
	mBatch.err = err
}

func (mBatch *goBadgerDBBatch) Write() error {
	if mBatch.err != nil {
		mBatch.txn.Discard()
		return mBatch.err
	}
	err := mBatch.txn.Commit()
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.txn.Discard()
	mBatch.txn = mBatch.db.db.NewTransaction(true)
	mBatch.size = 0
	mBatch.err = nil
}

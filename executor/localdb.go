// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
)

// LocalDB local db for store key value in local
type LocalDB struct {
	db      dbm.DB
	list    *dbm.ListHelper
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewLocalDB new local db
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{db: db, list: dbm.NewListHelper(db), cache: make(map[string][]byte)}
}

// Begin 开启事务
func (l *LocalDB) Begin() {
	l.intx = true
	l.txcache = make(map[string][]byte)
}

// Rollback 回滚事务
func (l *LocalDB) Rollback() {
	l.intx = false
	l.txcache = nil
}

// Commit 提交事务
func (l *LocalDB) Commit() error {
	for k, v := range l.txcache {
		l.cache[k] = v
	}
	l.Rollback()
	return nil
}

// Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if l.intx {
		if value, ok := l.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := l.cache[skey]; ok {
		return notDeleted(value)
	}
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

// Set set key value, nil value deletes the key
func (l *LocalDB) Set(key []byte, value []byte) error {
	if l.intx {
		l.txcache[string(key)] = value
	} else {
		l.cache[string(key)] = value
	}
	return nil
}

// List 列出已经落盘的数据, count 为 0 时不限数量
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	if count < 0 || count > types.MaxQueryCount {
		return nil, types.ErrInvalidParam
	}
	return l.list.List(prefix, key, count, direction), nil
}

// PrefixCount 前缀数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.list.PrefixCount(prefix)
}

func (l *LocalDB) writeBatch(batch dbm.Batch) {
	for k, v := range l.cache {
		if v == nil {
			batch.Delete([]byte(k))
			continue
		}
		batch.Set([]byte(k), v)
	}
}

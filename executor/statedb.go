// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
	lru "github.com/hashicorp/golang-lru"
)

// StateDB state db of one block. 事务中的写入在 Commit 之前只存在于 txcache,
// Commit 之后进入 cache, 区块写入数据库时一次性落盘
type StateDB struct {
	db      dbm.DB
	lru     *lru.Cache
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB new state db, lru caches committed values and may be nil
func NewStateDB(db dbm.DB, cache *lru.Cache) *StateDB {
	return &StateDB{
		db:    db,
		lru:   cache,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务中的写入合并到区块缓存
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notDeleted(value)
	}
	if s.lru != nil {
		if value, ok := s.lru.Get(skey); ok {
			return value.([]byte), nil
		}
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		elog.Error("StateDB Get", "key", skey, "err", err)
		return nil, err
	}
	//get 的值可以写入lru，因为没有对系统的值做修改
	if s.lru != nil {
		s.lru.Add(skey, value)
	}
	return value, nil
}

func notDeleted(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, nil value deletes the key
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// writeBatch 把区块缓存写入 batch
func (s *StateDB) writeBatch(batch dbm.Batch) {
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
			continue
		}
		batch.Set([]byte(k), v)
	}
}

// flushCache batch 写入成功以后刷新 lru
func (s *StateDB) flushCache() {
	if s.lru == nil {
		return
	}
	for k, v := range s.cache {
		if v == nil {
			s.lru.Remove(k)
			continue
		}
		s.lru.Add(k, v)
	}
}

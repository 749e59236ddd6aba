// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
	lru "github.com/hashicorp/golang-lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBTx(t *testing.T) {
	db, err := dbm.NewGoMemDB("test", "", 16)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	cache, err := lru.New(8)
	require.NoError(t, err)
	s := NewStateDB(db, cache)

	v, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	assert.True(t, cache.Contains("a"))

	s.Begin()
	s.Set([]byte("a"), []byte("2"))
	s.Set([]byte("b"), []byte("3"))
	v, err = s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	s.Rollback()

	v, err = s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	s.Set([]byte("b"), []byte("3"))
	s.Set([]byte("a"), nil)
	require.NoError(t, s.Commit())
	_, err = s.Get([]byte("a"))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Len(t, s.cache, 2)

	batch := db.NewBatch(true)
	s.writeBatch(batch)
	require.NoError(t, batch.Write())
	s.flushCache()
	assert.False(t, cache.Contains("a"))
	cached, ok := cache.Get("b")
	require.True(t, ok)
	assert.Equal(t, []byte("3"), cached)
	_, err = db.Get([]byte("a"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestLocalDB(t *testing.T) {
	db, err := dbm.NewGoMemDB("test", "", 16)
	require.NoError(t, err)
	for _, k := range []string{"LODB-x-1", "LODB-x-2", "LODB-x-3"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}
	l := NewLocalDB(db)
	l.Begin()
	l.Set([]byte("LODB-x-4"), []byte("4"))
	v, err := l.Get([]byte("LODB-x-4"))
	require.NoError(t, err)
	assert.Equal(t, []byte("4"), v)
	l.Rollback()
	_, err = l.Get([]byte("LODB-x-4"))
	assert.Equal(t, types.ErrNotFound, err)

	values, err := l.List([]byte("LODB-x-"), nil, 0, dbm.ListDESC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-3"), []byte("LODB-x-2"), []byte("LODB-x-1")}, values)
	values, err = l.List([]byte("LODB-x-"), []byte("LODB-x-1"), 1, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-2")}, values)
	_, err = l.List([]byte("LODB-x-"), nil, types.MaxQueryCount+1, dbm.ListASC)
	assert.Equal(t, types.ErrInvalidParam, err)
	assert.Equal(t, int64(3), l.PrefixCount([]byte("LODB-x-")))
}

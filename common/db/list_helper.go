// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

//ListHelper 在 IteratorDB 之上做前缀分页
type ListHelper struct {
	db IteratorDB
}

var listlog = dlog.New("helper", "list")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

//List 分页, key 不包含在结果中, count 为 0 时不限数量
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	if direction == ListSeek {
		it := db.db.Iterator(prefix, nil, true)
		defer it.Close()
		if !it.Seek(key) {
			return nil
		}
		return [][]byte{cloneByte(it.Key()), it.ValueCopy()}
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 从 key 之后开始迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	return db.scan(prefix, key, count, direction == ListDESC)
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, nil, count, false)
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, nil, count, true)
}

func (db *ListHelper) scan(prefix, key []byte, count int32, reverse bool) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, reverse)
	defer it.Close()

	var ok bool
	if key == nil {
		ok = it.Rewind()
	} else {
		ok = it.Seek(key)
		if ok && bytes.Equal(it.Key(), key) {
			ok = it.Next()
		}
	}
	var i int32
	for ; ok; ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("scan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for ok := it.Rewind(); ok; ok = it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount", "error", it.Error())
			return 0
		}
		count++
	}
	return count
}

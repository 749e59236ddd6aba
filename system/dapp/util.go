// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
)

//KVCreator 创建KV的辅助工具
type KVCreator struct {
	kvs  []*types.KeyValue
	logs []*types.ReceiptLog
	kvdb db.KV
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if err := c.kvdb.Set(key, value); err != nil {
		panic(err)
	}
	return c
}

//AddReceipt 合并其他模块(如账户)已经写入的 receipt
func (c *KVCreator) AddReceipt(receipt *types.Receipt) *KVCreator {
	if receipt == nil {
		return c
	}
	c.kvs = append(c.kvs, receipt.KV...)
	c.logs = append(c.logs, receipt.Logs...)
	return c
}

//AddLog add log
func (c *KVCreator) AddLog(log *types.ReceiptLog) *KVCreator {
	c.logs = append(c.logs, log)
	return c
}

//Receipt 生成 ExecOk receipt
func (c *KVCreator) Receipt() *types.Receipt {
	return &types.Receipt{Ty: types.ExecOk, KV: c.kvs, Logs: c.logs}
}

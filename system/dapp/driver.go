// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动框架: DriverBase 通过反射把交易分发到 Exec_/ExecLocal_/Query_ 方法
package dapp

import (
	"reflect"

	"github.com/33cn/redvsblue/common/address"
	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetName(string)
	SetEnv(height, blocktime int64)
	//[exec.sub.<name>] 的原始json
	SetSubConfig(sub []byte)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

// DriverBase 执行器驱动的公共部分, 由具体驱动嵌入
type DriverBase struct {
	statedb    dbm.KV
	localdb    dbm.KVDB
	height     int64
	blocktime  int64
	name       string
	child      Driver
	childValue reflect.Value
	ety        types.ExecutorType
	subcfg     []byte
}

// SetChild 设置具体驱动, 必须在构造函数中调用
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// SetExecutorType set executor type
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType get executor type
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// GetFuncMap Exec_/ExecLocal_/Query_ methods of the child
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	if d.child == nil {
		return nil
	}
	return ListMethod(d.child)
}

// SetEnv 设置当前区块的高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetSubConfig set sub config
func (d *DriverBase) SetSubConfig(sub []byte) {
	d.subcfg = sub
}

// GetSubConfig raw json of the driver section, nil when absent
func (d *DriverBase) GetSubConfig() []byte {
	return d.subcfg
}

// ExecLocal 调用 ExecLocal_<Action>, 没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err == types.ErrActionNotSupport {
		blog.Debug("call ExecLocal", "tx.Execer", tx.Execer, "err", err)
		return &set, nil
	}
	if err != nil {
		return nil, err
	}
	//merge
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "prefix", prefix, "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	//call action
	funcname := prefix + name
	funcmap := d.child.GetFuncMap()
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return set, err
}

// Exec 调用 Exec_<Action>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

// CheckTx 默认检查: from 地址格式正确且不是执行器地址, payload 可以解码
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if err := address.CheckAddress(tx.From); err != nil {
		return types.ErrInvalidAddress
	}
	//执行器地址没有私钥, 不能作为 from
	if IsDriverAddress(tx.From, -1) {
		return types.ErrFromAddr
	}
	if d.ety == nil {
		return types.ErrActionNotSupport
	}
	_, _, err := d.ety.DecodePayloadValue(tx)
	return err
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set local db
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get local db
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称, 默认为驱动名称
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName set name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetActionName action name of the tx
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

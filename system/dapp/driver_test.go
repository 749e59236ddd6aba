// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

//go:generate sh -c "protoc -I=testdata --go_out=. --go_opt=paths=source_relative echo.proto && mv echo.pb.go a_echo_pb_test.go"

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/33cn/redvsblue/common/address"
	"github.com/33cn/redvsblue/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alice = "1HTnL9jzKFTfGt5D7iwUTsnMhPuzPBSZyN"

type echoType struct {
	types.ExecTypeBase
}

func newEchoType() *echoType {
	t := &echoType{}
	t.SetChild(t)
	return t
}

func (t *echoType) GetName() string                     { return "echo" }
func (t *echoType) GetPayload() types.ExecutorAction    { return &EchoAction{} }
func (t *echoType) GetTypeMap() map[string]int32        { return map[string]int32{"Set": 1, "Fail": 2} }
func (t *echoType) GetLogMap() map[int32]*types.LogInfo { return nil }

var echoTy = newEchoType()

type echo struct {
	DriverBase
}

func newEcho() Driver {
	e := &echo{}
	e.SetChild(e)
	e.SetExecutorType(echoTy)
	return e
}

func (e *echo) GetDriverName() string { return "echo" }

func (e *echo) Exec_Set(p *EchoSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := NewKVCreator(e.GetStateDB())
	kv.Add([]byte("mavl-echo-"+p.Key), []byte(p.Value))
	return kv.Receipt(), nil
}

func (e *echo) Exec_Fail(p *EchoFail, tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrAmount
}

func (e *echo) ExecLocal_Set(p *EchoSet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-echo-" + p.Key), Value: []byte(tx.From)}}}, nil
}

func (e *echo) Query_Get(p *EchoSet) (types.Message, error) {
	v, err := e.GetStateDB().Get([]byte("mavl-echo-" + p.Key))
	if err != nil {
		return nil, err
	}
	return &types.ReplyString{Data: string(v)}, nil
}

// mapKV state db without transactions
type mapKV map[string][]byte

func (m mapKV) Get(key []byte) ([]byte, error) {
	v, ok := m[string(key)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return v, nil
}

func (m mapKV) Set(key, value []byte) error {
	m[string(key)] = value
	return nil
}

func (m mapKV) Begin()        {}
func (m mapKV) Rollback()     {}
func (m mapKV) Commit() error { return nil }

var registerOnce sync.Once

func registerEcho() {
	registerOnce.Do(func() {
		Register("echo", newEcho, 0)
	})
}

func createTx(t *testing.T, action string, param interface{}) *types.Transaction {
	data, err := json.Marshal(param)
	require.NoError(t, err)
	tx, err := echoTy.CreateTx(alice, action, data)
	require.NoError(t, err)
	return tx
}

func TestListMethod(t *testing.T) {
	e := newEcho()
	funcs := e.GetFuncMap()
	assert.Len(t, funcs, 4)
	for _, name := range []string{"Exec_Set", "Exec_Fail", "ExecLocal_Set", "Query_Get"} {
		_, ok := funcs[name]
		assert.True(t, ok, name)
	}
	_, ok := funcs["GetDriverName"]
	assert.False(t, ok)
}

func TestExecDispatch(t *testing.T) {
	e := newEcho()
	db := mapKV{}
	e.SetStateDB(db)

	tx := createTx(t, "Set", &EchoSet{Key: "k", Value: "v"})
	require.NoError(t, e.CheckTx(tx, 0))
	assert.Equal(t, "Set", e.GetActionName(tx))
	receipt, err := e.Exec(tx, 0)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 1)
	assert.Equal(t, []byte("v"), db["mavl-echo-k"])

	set, err := e.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	assert.Equal(t, []byte(alice), set.KV[0].Value)

	tx = createTx(t, "Fail", &EchoFail{})
	_, err = e.Exec(tx, 0)
	assert.Equal(t, types.ErrAmount, err)
	// 没有 ExecLocal_Fail
	set, err = e.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	assert.Len(t, set.KV, 0)

	tx.Payload = types.Encode(&EchoAction{Ty: 9})
	_, err = e.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, "unknown", e.GetActionName(tx))

	tx.Payload = types.Encode(&EchoAction{Ty: 1})
	assert.Equal(t, types.ErrActionNotSupport, e.CheckTx(tx, 0))
	tx.Payload = []byte(`not proto`)
	assert.Equal(t, types.ErrDecode, e.CheckTx(tx, 0))
}

func TestCheckTxAddress(t *testing.T) {
	e := newEcho()
	tx := createTx(t, "Set", &EchoSet{Key: "k", Value: "v"})
	tx.From = "not-an-address"
	assert.Equal(t, types.ErrInvalidAddress, e.CheckTx(tx, 0))

	registerEcho()
	tx.From = ExecAddress("echo")
	assert.Equal(t, types.ErrFromAddr, e.CheckTx(tx, 0))
	tx.From = alice
	assert.NoError(t, e.CheckTx(tx, 0))
}

func TestQuery(t *testing.T) {
	e := newEcho()
	db := mapKV{"mavl-echo-k": []byte("v")}
	e.SetStateDB(db)

	reply, err := e.Query("Get", []byte(`{"key":"k"}`))
	require.NoError(t, err)
	assert.Equal(t, &types.ReplyString{Data: "v"}, reply)

	_, err = e.Query("Get", []byte(`{"key":"missing"}`))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = e.Query("Get", []byte(`{`))
	assert.Equal(t, types.ErrDecode, err)
	_, err = e.Query("Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestAllow(t *testing.T) {
	e := newEcho()
	tx := createTx(t, "Set", &EchoSet{})
	require.NoError(t, e.Allow(tx, 0))
	tx.Execer = "other"
	assert.Equal(t, types.ErrNotAllowed, e.Allow(tx, 0))
}

func TestRegister(t *testing.T) {
	registerEcho()
	assert.True(t, IsRegistered("echo"))
	d, err := LoadDriver("echo", 0)
	require.NoError(t, err)
	assert.Equal(t, "echo", d.GetName())
	d.SetName("echo2")
	assert.Equal(t, "echo2", d.GetName())

	_, err = LoadDriver("nope", 0)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	assert.Equal(t, address.ExecAddress("echo"), ExecAddress("echo"))
	assert.True(t, IsDriverAddress(ExecAddress("echo"), 0))
	assert.False(t, IsDriverAddress(alice, 0))
	assert.Panics(t, func() { Register("echo", newEcho, 0) })
}

func TestKVCreator(t *testing.T) {
	db := mapKV{}
	creator := NewKVCreator(db)
	_, err := db.Get([]byte("a"))
	assert.Equal(t, types.ErrNotFound, err)
	creator.Add([]byte("a"), []byte("b"))
	value, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), value)

	creator.AddReceipt(&types.Receipt{
		KV:   []*types.KeyValue{{Key: []byte("c"), Value: []byte("d")}},
		Logs: []*types.ReceiptLog{{Ty: types.TyLogCreditDeposit}},
	})
	creator.AddLog(&types.ReceiptLog{Ty: 1001})
	receipt := creator.Receipt()
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
}

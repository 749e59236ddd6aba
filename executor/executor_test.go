// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//go:generate sh -c "protoc -I=testdata --go_out=. --go_opt=paths=source_relative kvtest.proto && mv kvtest.pb.go a_kvtest_pb_test.go"

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "1HTnL9jzKFTfGt5D7iwUTsnMhPuzPBSZyN"
	bob   = "19D64ZBEi7ZvGCjsdjZPH1sUwXQKHyRe97"
)

type kvType struct {
	types.ExecTypeBase
}

func (t *kvType) GetName() string                     { return "kvtest" }
func (t *kvType) GetPayload() types.ExecutorAction    { return &KVTestAction{} }
func (t *kvType) GetTypeMap() map[string]int32        { return map[string]int32{"Set": 1, "Fail": 2} }
func (t *kvType) GetLogMap() map[int32]*types.LogInfo { return nil }

var kvTy = func() *kvType {
	t := &kvType{}
	t.SetChild(t)
	return t
}()

type kvDriver struct {
	dapp.DriverBase
}

func newKVDriver() dapp.Driver {
	d := &kvDriver{}
	d.SetChild(d)
	d.SetExecutorType(kvTy)
	return d
}

func (d *kvDriver) GetDriverName() string { return "kvtest" }

func (d *kvDriver) Exec_Set(p *KVTestSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := dapp.NewKVCreator(d.GetStateDB())
	kv.Add([]byte("mavl-kvtest-"+p.Key), []byte(p.Value))
	kv.AddLog(types.NewLog(1001, p))
	return kv.Receipt(), nil
}

func (d *kvDriver) Exec_Fail(p *KVTestSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	d.GetStateDB().Set([]byte("mavl-kvtest-"+p.Key), []byte(p.Value))
	return nil, types.ErrAmount
}

func (d *kvDriver) ExecLocal_Set(p *KVTestSet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-kvtest-" + p.Key), Value: []byte(tx.From)}}}, nil
}

func (d *kvDriver) Query_Get(p *KVTestSet) (types.Message, error) {
	v, err := d.GetStateDB().Get([]byte("mavl-kvtest-" + p.Key))
	if err != nil {
		return nil, err
	}
	return &types.ReplyString{Data: string(v)}, nil
}

func (d *kvDriver) Query_Height(p *types.ReqNil) (types.Message, error) {
	return &types.ReplyHeight{Height: d.GetHeight()}, nil
}

func (d *kvDriver) Query_Who(p *types.ReqAddr) (types.Message, error) {
	v, err := d.GetLocalDB().Get([]byte("LODB-kvtest-" + p.Addr))
	if err != nil {
		return nil, err
	}
	return &types.ReplyString{Data: string(v)}, nil
}

var registerOnce sync.Once

func newTestExecutor(t *testing.T) (*Executor, dbm.DB) {
	registerOnce.Do(func() {
		dapp.Register("kvtest", newKVDriver, 0)
	})
	db, err := dbm.NewGoMemDB("test", "", 16)
	require.NoError(t, err)
	exec, err := New(&types.Exec{StateCacheSize: 16}, nil, db)
	require.NoError(t, err)
	return exec, db
}

func kvTx(t *testing.T, from, action, key, value string) *types.Transaction {
	param, err := json.Marshal(&KVTestSet{Key: key, Value: value})
	require.NoError(t, err)
	tx, err := kvTy.CreateTx(from, action, param)
	require.NoError(t, err)
	return tx
}

func TestExecTxOk(t *testing.T) {
	exec, db := newTestExecutor(t)
	detail, err := exec.ExecTx(kvTx(t, alice, "Set", "k1", "v1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Height)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int32(types.ExecOk), detail.Receipt.Ty)
	require.Len(t, detail.Receipt.Logs, 1)

	v, err := db.Get([]byte("mavl-kvtest-k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	v, err = db.Get([]byte("LODB-kvtest-k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte(alice), v)

	got, err := exec.QueryTransaction(detail.Hash)
	require.NoError(t, err)
	assert.Equal(t, detail.Height, got.Height)
	assert.Equal(t, detail.Tx.Nonce, got.Tx.Nonce)
	assert.Equal(t, "ExecOk", got.Result().Receipt.TyName)

	reply, err := exec.Query("kvtest", "Get", []byte(`{"key":"k1"}`))
	require.NoError(t, err)
	assert.Equal(t, &types.ReplyString{Data: "v1"}, reply)
	reply, err = exec.Query("kvtest", "Who", []byte(`{"addr":"k1"}`))
	require.NoError(t, err)
	assert.Equal(t, &types.ReplyString{Data: alice}, reply)
}

func TestExecTxFailRollsBack(t *testing.T) {
	exec, db := newTestExecutor(t)
	_, err := exec.ExecTx(kvTx(t, alice, "Set", "k1", "v1"))
	require.NoError(t, err)

	detail, err := exec.ExecTx(kvTx(t, bob, "Fail", "k1", "changed"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), exec.Height())
	assert.Equal(t, int32(types.ExecErr), detail.Receipt.Ty)
	require.Len(t, detail.Receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogErr), detail.Receipt.Logs[0].Ty)
	assert.Equal(t, "ErrAmount", string(detail.Receipt.Logs[0].Log))

	v, err := db.Get([]byte("mavl-kvtest-k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	reply, err := exec.Query("kvtest", "Get", []byte(`{"key":"k1"}`))
	require.NoError(t, err)
	assert.Equal(t, &types.ReplyString{Data: "v1"}, reply)
}

func TestCheckTxRejects(t *testing.T) {
	exec, _ := newTestExecutor(t)

	tx := kvTx(t, alice, "Set", "k", "v")
	tx.Execer = "nosuchexec"
	_, err := exec.ExecTx(tx)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	tx = kvTx(t, "bad-address", "Set", "k", "v")
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrInvalidAddress, err)

	tx = kvTx(t, dapp.ExecAddress("kvtest"), "Set", "k", "v")
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrFromAddr, err)

	tx = kvTx(t, alice, "Set", "k", "v")
	tx.Payload = []byte{0xff, 0xff}
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrDecode, err)

	tx = kvTx(t, alice, "Set", "k", "v")
	tx.Payload = types.Encode(&KVTestAction{Ty: 7})
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrActionNotSupport, err)

	_, err = exec.ExecTx(nil)
	assert.Equal(t, types.ErrEmptyTx, err)
	assert.Equal(t, int64(0), exec.Height())
}

func TestMineAndReload(t *testing.T) {
	exec, db := newTestExecutor(t)
	h, err := exec.Mine()
	require.NoError(t, err)
	assert.Equal(t, int64(1), h)
	_, err = exec.ExecTx(kvTx(t, alice, "Set", "k", "v"))
	require.NoError(t, err)
	h, err = exec.Mine()
	require.NoError(t, err)
	assert.Equal(t, int64(3), h)

	reply, err := exec.Query("kvtest", "Height", nil)
	require.NoError(t, err)
	assert.Equal(t, &types.ReplyHeight{Height: 3}, reply)

	exec2, err := New(nil, nil, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), exec2.Height())
}

func TestQueryErrors(t *testing.T) {
	exec, _ := newTestExecutor(t)
	_, err := exec.Query("nosuchexec", "Get", nil)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	_, err = exec.Query("kvtest", "Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query("kvtest", "Get", []byte(`{"key":"missing"}`))
	assert.Equal(t, types.ErrNotFound, err)

	_, err = exec.QueryTransaction("0x1234")
	assert.Equal(t, types.ErrTxNotFound, err)
	_, err = exec.QueryTransaction("zz")
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestTimedMiner(t *testing.T) {
	exec, _ := newTestExecutor(t)
	exec.blockInterval = 10 * time.Millisecond
	exec.Start(context.Background())
	require.Eventually(t, func() bool { return exec.Height() >= 2 }, 2*time.Second, 5*time.Millisecond)
	exec.Close()
	h := exec.Height()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, h, exec.Height())
}

func TestStartDisabled(t *testing.T) {
	exec, _ := newTestExecutor(t)
	exec.Start(context.Background())
	exec.Close()
	assert.Equal(t, int64(0), exec.Height())
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/redvsblue/types"
)

// CreateTxIn 由 action 名和参数创建交易
type CreateTxIn struct {
	Execer     string          `json:"execer"`
	ActionName string          `json:"actionName"`
	From       string          `json:"from"`
	Value      string          `json:"value,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// CreateTx 用执行器注册的类型构造交易
func (in *CreateTxIn) CreateTx() (*types.Transaction, error) {
	ety := types.LoadExecutorType(in.Execer)
	if ety == nil {
		return nil, types.ErrUnRegistedDriver
	}
	tx, err := ety.CreateTx(in.From, in.ActionName, in.Payload)
	if err != nil {
		return nil, err
	}
	tx.Value = in.Value
	if err := tx.Check(); err != nil {
		return nil, err
	}
	return tx, nil
}

// ErrorResult rest 的错误返回, 执行失败的交易同时返回交易详情
type ErrorResult struct {
	Error string      `json:"error"`
	Tx    interface{} `json:"tx,omitempty"`
}

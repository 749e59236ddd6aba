// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
)

// Chain33 jrpc 服务, 方法名为 Chain33.<Method>
type Chain33 struct {
	api rpctypes.ChainAPI
}

// CreateTransaction 由 action 名和参数构造交易, 不执行
func (c *Chain33) CreateTransaction(in *rpctypes.CreateTxIn, result *interface{}) error {
	tx, err := in.CreateTx()
	if err != nil {
		return err
	}
	*result = tx
	return nil
}

// SendTransaction 执行交易并出块, 返回交易详情. 执行失败的交易同样返回详情
func (c *Chain33) SendTransaction(in *types.Transaction, result *interface{}) error {
	detail, err := c.api.ExecTx(in)
	if err != nil {
		log.Debug("SendTransaction", "err", err)
		return err
	}
	*result = detail.Result()
	return nil
}

// Query 执行器查询
func (c *Chain33) Query(in *types.Query, result *interface{}) error {
	reply, err := c.api.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		log.Debug("Query", "execer", in.Execer, "funcName", in.FuncName, "err", err)
		return err
	}
	*result = reply
	return nil
}

// GetHeight 最新高度
func (c *Chain33) GetHeight(in *types.ReqNil, result *interface{}) error {
	*result = &types.ReplyHeight{Height: c.api.Height()}
	return nil
}

// QueryTransaction 根据哈希查询交易
func (c *Chain33) QueryTransaction(in *types.ReqHash, result *interface{}) error {
	detail, err := c.api.QueryTransaction(in.Hash)
	if err != nil {
		return err
	}
	*result = detail.Result()
	return nil
}

// Mine 出一个空块
func (c *Chain33) Mine(in *types.ReqNil, result *interface{}) error {
	height, err := c.api.Mine()
	if err != nil {
		return err
	}
	*result = &types.ReplyHeight{Height: height}
	return nil
}

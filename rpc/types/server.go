// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 模块和插件共用的接口和类型
package types

import (
	"net/rpc"

	"github.com/33cn/redvsblue/types"
	"github.com/gin-gonic/gin"
)

// ChainAPI 节点对 rpc 提供的能力, executor.Executor 实现了该接口
type ChainAPI interface {
	ExecTx(tx *types.Transaction) (*types.TxDetail, error)
	Query(execer, funcName string, param []byte) (types.Message, error)
	QueryTransaction(hash string) (*types.TxDetail, error)
	Height() int64
	Mine() (int64, error)
}

// RPCServer 插件通过它注册 jrpc 服务和 rest 路由
type RPCServer interface {
	API() ChainAPI
	JRPC() *rpc.Server
	REST() gin.IRouter
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package redvsblue 红蓝对战: 买入 credit, 在当前轮次给红方或蓝方投票, 轮次结束后赢的一方按比例分得输方的投注
package redvsblue

import (
	"github.com/33cn/redvsblue/plugin/dapp/redvsblue/commands"
	"github.com/33cn/redvsblue/plugin/dapp/redvsblue/executor"
	"github.com/33cn/redvsblue/plugin/dapp/redvsblue/rpc"
	"github.com/33cn/redvsblue/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "redvsblue",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RedVsBlueCmd,
		RPC:      rpc.Init,
	})
}

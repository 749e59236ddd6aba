// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/redvsblue/rpc/jsonclient"
	"github.com/33cn/redvsblue/types"
	"github.com/spf13/cobra"
)

// HeightCmd 查询最新高度
func HeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Get last block height",
		Run:   height,
	}
	return cmd
}

func height(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res types.ReplyHeight
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetHeight", &types.ReqNil{}, &res)
	ctx.Run()
}

// MineCmd 出空块推进高度
func MineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine empty blocks",
		Run:   mine,
	}
	cmd.Flags().Int64P("count", "n", 1, "number of blocks")
	return cmd
}

func mine(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	count, _ := cmd.Flags().GetInt64("count")
	if count <= 0 {
		cmd.PrintErrln(types.ErrInvalidParam)
		return
	}
	var res types.ReplyHeight
	for i := int64(0); i < count; i++ {
		ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Mine", &types.ReqNil{}, &res)
		if _, err := ctx.RunResult(); err != nil {
			cmd.PrintErrln(err)
			return
		}
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetHeight", &types.ReqNil{}, &res)
	ctx.Run()
}

// Commands 系统命令列表
func Commands() []*cobra.Command {
	return []*cobra.Command{
		HeightCmd(),
		MineCmd(),
		TxCmd(),
	}
}

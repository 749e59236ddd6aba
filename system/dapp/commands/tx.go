// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令: 交易, 高度和出块
package commands

import (
	"encoding/json"

	"github.com/33cn/redvsblue/rpc/jsonclient"
	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryTxCmd(),
	)
	return cmd
}

// QueryTxCmd  query tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction by hash",
		Run:   queryTx,
	}
	addQueryTxFlags(cmd)
	return cmd
}

func addQueryTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")
	params := types.ReqHash{
		Hash: hash,
	}
	var res types.TxDetailResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.QueryTransaction", params, &res)
	ctx.Run()
}

// SendAction 构造交易并发送, 输出交易详情
func SendAction(cmd *cobra.Command, execer, actionName, from, value string, payload interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, err := json.Marshal(payload)
	if err != nil {
		cmd.PrintErrln(err)
		return
	}
	in := &rpctypes.CreateTxIn{
		Execer:     execer,
		ActionName: actionName,
		From:       from,
		Value:      value,
		Payload:    data,
	}
	var tx types.Transaction
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", in, &tx)
	if _, err := ctx.RunResult(); err != nil {
		cmd.PrintErrln(err)
		return
	}
	var res types.TxDetailResult
	ctx = jsonclient.NewRPCCtx(rpcLaddr, "Chain33.SendTransaction", &tx, &res)
	ctx.Run()
}

// Query 调用执行器查询并输出结果
func Query(cmd *cobra.Command, execer, funcName string, param, res interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, err := json.Marshal(param)
	if err != nil {
		cmd.PrintErrln(err)
		return
	}
	params := types.Query{
		Execer:   execer,
		FuncName: funcName,
		Payload:  data,
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, res)
	ctx.Run()
}

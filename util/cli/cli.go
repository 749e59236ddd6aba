// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/redvsblue/common/log"
	"github.com/33cn/redvsblue/pluginmgr"
	"github.com/33cn/redvsblue/system/dapp/commands"
	"github.com/33cn/redvsblue/types"
	"github.com/spf13/cobra"
)

// DefaultRPCAddr 默认的 jrpc 地址
const DefaultRPCAddr = "http://localhost:8801"

// NewRootCmd 命令行根命令, 包括系统命令和所有插件的命令
func NewRootCmd(title, rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   title + "-cli",
		Short: title + " client tools",
	}
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	rootCmd.AddCommand(commands.Commands()...)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(types.Version)
		},
	})
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run :
func Run(title, rpcAddr string) {
	if rpcAddr == "" {
		rpcAddr = DefaultRPCAddr
	}
	log.SetLogLevel("error")
	if err := NewRootCmd(title, rpcAddr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

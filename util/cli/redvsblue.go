// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunRedVsBlue 加载配置, 存储, 执行器和 rpc, 组合成节点程序
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	clog "github.com/33cn/redvsblue/common/log"
	"github.com/33cn/redvsblue/common/config"
	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/executor"
	"github.com/33cn/redvsblue/metrics"
	"github.com/33cn/redvsblue/pluginmgr"
	"github.com/33cn/redvsblue/rpc"
	"github.com/33cn/redvsblue/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of redvsblue, overrides store.dbPath")
	versionCmd = flag.Bool("v", false, "version")
)

var nlog = log.New("module", "node")

// Node 一个运行中的节点
type Node struct {
	cfg    *types.Config
	db     dbm.DB
	exec   *executor.Executor
	rpc    *rpc.RPC
	cancel context.CancelFunc

	JrpcPort int
	GrpcPort int
	RestPort int
}

// RunRedVsBlue 解析命令行并运行节点, 收到 SIGINT/SIGTERM 时退出
func RunRedVsBlue(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(types.Version)
		return
	}
	var (
		cfg *types.Config
		sub *types.ConfigSubModule
	)
	if *configPath == "" {
		if _, err := os.Stat(name + ".toml"); err == nil {
			*configPath = name + ".toml"
		}
	}
	if *configPath == "" {
		cfg, sub = config.InitCfgString(types.DefaultCfgString)
	} else {
		cfg, sub = config.InitCfg(*configPath)
	}
	if *datadir != "" {
		cfg.Store.DbPath = *datadir
	}
	clog.SetFileLog(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	node, err := StartNode(ctx, cfg, sub)
	if err != nil {
		nlog.Crit("start node", "err", err)
		os.Exit(1)
	}
	go watching(ctx)
	<-ctx.Done()
	nlog.Info("begin close node")
	node.Close()
}

// StartNode 按配置启动存储, 执行器, rpc 和 metrics
func StartNode(ctx context.Context, cfg *types.Config, sub *types.ConfigSubModule) (*Node, error) {
	nlog.Info("loading plugins")
	pluginmgr.InitExec(sub.Exec)

	nlog.Info("loading store", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	nlog.Info("loading execs module")
	exec, err := executor.New(cfg.Exec, sub.Exec, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	exec.Start(ctx)

	nlog.Info("loading rpc module")
	r := rpc.New(cfg.RPC, exec)
	jport, gport, rport, err := r.Listen()
	if err != nil {
		cancel()
		exec.Close()
		db.Close()
		return nil, err
	}
	metrics.StartMetrics(ctx, cfg.Metrics)

	nlog.Info(cfg.Title+" started", "height", exec.Height(), "jrpc", jport, "grpc", gport, "rest", rport)
	return &Node{
		cfg:      cfg,
		db:       db,
		exec:     exec,
		rpc:      r,
		cancel:   cancel,
		JrpcPort: jport,
		GrpcPort: gport,
		RestPort: rport,
	}, nil
}

// Executor 节点的执行器
func (n *Node) Executor() *executor.Executor {
	return n.exec
}

// Close close all module,clean some resource
func (n *Node) Close() {
	n.cancel()
	nlog.Info("begin close rpc module")
	n.rpc.Close()
	nlog.Info("begin close execs module")
	n.exec.Close()
	nlog.Info("begin close store module")
	n.db.Close()
}

func watching(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			nlog.Info("info:", "NumGoroutine:", runtime.NumGoroutine())
			nlog.Info("info:", "Mem:", m.Sys/(1024*1024))
			nlog.Info("info:", "HeapAlloc:", m.HeapAlloc/(1024*1024))
		}
	}
}

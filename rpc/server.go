// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc jrpc, grpc 和 rest 服务
package rpc

import (
	"net"
	"net/http"
	"net/rpc"

	"github.com/33cn/redvsblue/pluginmgr"
	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
	"github.com/gin-gonic/gin"
	log15 "github.com/inconshreveable/log15"
	"google.golang.org/grpc"
)

var log = log15.New("module", "rpc")

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	jrpc   *Chain33
	s      *rpc.Server
	l      net.Listener
	server *http.Server
	filter *filter
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(api rpctypes.ChainAPI, f *filter) *JSONRPCServer {
	j := &JSONRPCServer{jrpc: &Chain33{api: api}, filter: f}
	server := rpc.NewServer()
	j.s = server
	if err := server.RegisterName("Chain33", j.jrpc); err != nil {
		panic(err)
	}
	return j
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	if j.server != nil {
		if err := j.server.Close(); err != nil {
			log.Error("JSONRPCServer close", "err", err)
		}
	}
}

// Grpcserver a object
type Grpcserver struct {
	grpc   *Grpc
	s      *grpc.Server
	l      net.Listener
	filter *filter
}

// Close grpcserver close
func (g *Grpcserver) Close() {
	if g == nil || g.s == nil {
		return
	}
	g.s.Stop()
}

// RPC a type object
type RPC struct {
	cfg  *types.RPC
	api  rpctypes.ChainAPI
	japi *JSONRPCServer
	gapi *Grpcserver
	rest *RESTServer
}

// New produce a rpc by cfg, 插件的 rpc 在这里注册
func New(cfg *types.RPC, api rpctypes.ChainAPI) *RPC {
	if cfg == nil {
		cfg = &types.RPC{}
	}
	f := newFilter(cfg)
	r := &RPC{
		cfg:  cfg,
		api:  api,
		japi: NewJSONRPCServer(api, f),
		gapi: NewGRpcServer(api, f),
		rest: NewRESTServer(api, f),
	}
	pluginmgr.AddRPC(r)
	return r
}

// Listen 监听配置的地址, 地址为空的服务不启动. 返回 jrpc, grpc, rest 的端口
func (r *RPC) Listen() (jport, gport, rport int, err error) {
	if r.cfg.JrpcBindAddr != "" {
		jport, err = r.japi.Listen(r.cfg.JrpcBindAddr, r.cfg.MaxConnections)
		if err != nil {
			r.Close()
			return 0, 0, 0, err
		}
	}
	if r.cfg.GrpcBindAddr != "" {
		gport, err = r.gapi.Listen(r.cfg.GrpcBindAddr, r.cfg.MaxConnections)
		if err != nil {
			r.Close()
			return 0, 0, 0, err
		}
	}
	if r.cfg.RestBindAddr != "" {
		rport, err = r.rest.Listen(r.cfg.RestBindAddr, r.cfg.MaxConnections)
		if err != nil {
			r.Close()
			return 0, 0, 0, err
		}
	}
	log.Info("rpc Listen port", "jrpc", jport, "grpc", gport, "rest", rport)
	return jport, gport, rport, nil
}

// API chain api
func (r *RPC) API() rpctypes.ChainAPI {
	return r.api
}

// JRPC return jrpc
func (r *RPC) JRPC() *rpc.Server {
	return r.japi.s
}

// GRPC return grpc
func (r *RPC) GRPC() *grpc.Server {
	return r.gapi.s
}

// REST rest 的 /v1 路由
func (r *RPC) REST() gin.IRouter {
	return r.rest.v1
}

// Handler rest 的 http handler
func (r *RPC) Handler() http.Handler {
	return r.rest.engine
}

// Close rpc close
func (r *RPC) Close() {
	r.japi.Close()
	r.gapi.Close()
	r.rest.Close()
}

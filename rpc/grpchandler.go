// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
	"github.com/go-stack/stack"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"
)

// Chain33Server grpc 服务 redvsblue.Chain33
type Chain33Server interface {
	SendTransaction(context.Context, *types.Transaction) (*types.TxDetailResult, error)
	Query(context.Context, *types.Query) (*json.RawMessage, error)
	GetHeight(context.Context, *types.ReqNil) (*types.ReplyHeight, error)
}

// Grpc a channelClient
type Grpc struct {
	api rpctypes.ChainAPI
}

// SendTransaction 执行交易
func (g *Grpc) SendTransaction(ctx context.Context, in *types.Transaction) (*types.TxDetailResult, error) {
	detail, err := g.api.ExecTx(in)
	if err != nil {
		return nil, err
	}
	return detail.Result(), nil
}

// Query 执行器查询, 返回结果的 json
func (g *Grpc) Query(ctx context.Context, in *types.Query) (*json.RawMessage, error) {
	reply, err := g.api.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(reply)
	if err != nil {
		return nil, err
	}
	raw := json.RawMessage(data)
	return &raw, nil
}

// GetHeight 最新高度
func (g *Grpc) GetHeight(ctx context.Context, in *types.ReqNil) (*types.ReplyHeight, error) {
	return &types.ReplyHeight{Height: g.api.Height()}, nil
}

func chain33SendTransactionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(types.Transaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Chain33Server).SendTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/redvsblue.Chain33/SendTransaction"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Chain33Server).SendTransaction(ctx, req.(*types.Transaction))
	}
	return interceptor(ctx, in, info, handler)
}

func chain33QueryHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(types.Query)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Chain33Server).Query(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/redvsblue.Chain33/Query"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Chain33Server).Query(ctx, req.(*types.Query))
	}
	return interceptor(ctx, in, info, handler)
}

func chain33GetHeightHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(types.ReqNil)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Chain33Server).GetHeight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/redvsblue.Chain33/GetHeight"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Chain33Server).GetHeight(ctx, req.(*types.ReqNil))
	}
	return interceptor(ctx, in, info, handler)
}

// Chain33ServiceDesc grpc service desc
var Chain33ServiceDesc = grpc.ServiceDesc{
	ServiceName: "redvsblue.Chain33",
	HandlerType: (*Chain33Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendTransaction", Handler: chain33SendTransactionHandler},
		{MethodName: "Query", Handler: chain33QueryHandler},
		{MethodName: "GetHeight", Handler: chain33GetHeightHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// NewGRpcServer new grpcserver object
func NewGRpcServer(api rpctypes.ChainAPI, f *filter) *Grpcserver {
	s := &Grpcserver{grpc: &Grpc{api: api}, filter: f}
	var opts []grpc.ServerOption
	//register interceptor
	interceptor := func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		if err := s.auth(ctx); err != nil {
			return nil, err
		}
		defer func() {
			if e := recover(); e != nil {
				log.Error("grpc panic", "method", info.FullMethod, "err", e, "stack", fmt.Sprintf("%+v", stack.Trace().TrimRuntime()))
				err = fmt.Errorf("%v", e)
			}
		}()
		// Continue processing the request
		return handler(ctx, req)
	}
	opts = append(opts, grpc.UnaryInterceptor(interceptor))
	kp := keepalive.EnforcementPolicy{
		MinTime:             10 * time.Second,
		PermitWithoutStream: true,
	}
	opts = append(opts, grpc.KeepaliveEnforcementPolicy(kp))
	server := grpc.NewServer(opts...)
	s.s = server
	server.RegisterService(&Chain33ServiceDesc, s.grpc)
	return s
}

func (g *Grpcserver) auth(ctx context.Context) error {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return types.ErrNotAllowed
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		host = p.Addr.String()
	}
	return g.filter.allow(host)
}

// Listen 启动 grpc 服务, 返回监听的端口
func (g *Grpcserver) Listen(addr string, maxConn int) (int, error) {
	listener, err := listen(addr, maxConn)
	if err != nil {
		return 0, err
	}
	g.l = listener
	go func() {
		if err := g.s.Serve(listener); err != nil {
			log.Error("grpc serve", "err", err)
		}
	}()
	return listenPort(listener), nil
}

// Chain33Client grpc 客户端
type Chain33Client struct {
	cc grpc.ClientConnInterface
}

// NewChain33Client 调用时使用 json codec
func NewChain33Client(cc grpc.ClientConnInterface) *Chain33Client {
	return &Chain33Client{cc: cc}
}

func (c *Chain33Client) invoke(ctx context.Context, method string, in, out interface{}) error {
	return c.cc.Invoke(ctx, "/redvsblue.Chain33/"+method, in, out, grpc.ForceCodec(JSONCodec{}))
}

// SendTransaction send tx
func (c *Chain33Client) SendTransaction(ctx context.Context, in *types.Transaction) (*types.TxDetailResult, error) {
	out := new(types.TxDetailResult)
	if err := c.invoke(ctx, "SendTransaction", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query 查询结果解码到 reply
func (c *Chain33Client) Query(ctx context.Context, in *types.Query, reply interface{}) error {
	return c.invoke(ctx, "Query", in, reply)
}

// GetHeight height
func (c *Chain33Client) GetHeight(ctx context.Context) (*types.ReplyHeight, error) {
	out := new(types.ReplyHeight)
	if err := c.invoke(ctx, "GetHeight", &types.ReqNil{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/go-stack/stack"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"
)

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

// Read rewrite the read of http
func (c *HTTPConn) Read(p []byte) (n int, err error) { return c.in.Read(p) }

// Write rewrite the write of http
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rewrite the close of http
func (c *HTTPConn) Close() error { return nil }

// listen tcp 监听, maxConn 大于 0 时限制连接数
func listen(addr string, maxConn int) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}
	if maxConn > 0 {
		listener = netutil.LimitListener(listener, maxConn)
	}
	return listener, nil
}

func listenPort(l net.Listener) int {
	if addr, ok := l.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// recoverHandler handler panic 时打印调用栈并返回 500
func recoverHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				log.Error("rpc panic", "url", r.URL.String(), "err", e, "stack", fmt.Sprintf("%+v", stack.Trace().TrimRuntime()))
				writeJSONError(w, http.StatusInternalServerError, fmt.Errorf("%v", e))
			}
		}()
		h.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := json.Marshal(&rpctypes.ErrorResult{Error: err.Error()})
	_, _ = w.Write(data)
}

// Listen 启动 jrpc 服务, 返回监听的端口
func (j *JSONRPCServer) Listen(addr string, maxConn int) (int, error) {
	listener, err := listen(addr, maxConn)
	if err != nil {
		return 0, err
	}
	j.l = listener
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := j.filter.allow(remoteIP(r)); err != nil {
			writeJSONError(w, rpctypes.HTTPStatus(err), err)
			return
		}
		if r.URL.Path != "/" {
			writeJSONError(w, http.StatusNotFound, fmt.Errorf("path %s not found", r.URL.Path))
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
		w.Header().Set("Content-type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := j.s.ServeRequest(serverCodec); err != nil {
			log.Debug("Error while serving JSON request", "err", err)
		}
	})
	co := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	j.server = &http.Server{Handler: co.Handler(recoverHandler(handler))}
	go func() {
		if err := j.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("jrpc serve", "err", err)
		}
	}()
	return listenPort(listener), nil
}

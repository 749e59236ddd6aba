// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"fmt"
	"net"
	"net/http"

	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
	"github.com/gin-gonic/gin"
	"github.com/go-stack/stack"
	"github.com/google/uuid"
)

// RequestIDHeader 每个 rest 返回都带有请求 id
const RequestIDHeader = "X-Request-Id"

// RESTServer gin 实现的 rest 网关, 路由在 /v1 下
type RESTServer struct {
	api    rpctypes.ChainAPI
	engine *gin.Engine
	v1     *gin.RouterGroup
	l      net.Listener
	server *http.Server
	filter *filter
}

// NewRESTServer new rest server
func NewRESTServer(api rpctypes.ChainAPI, f *filter) *RESTServer {
	gin.SetMode(gin.ReleaseMode)
	s := &RESTServer{api: api, engine: gin.New(), filter: f}
	s.engine.Use(requestID(), gin.CustomRecovery(recovery), s.filterIP())
	s.v1 = s.engine.Group("/v1")
	s.v1.POST("/tx", s.sendTx)
	s.v1.GET("/tx/:hash", s.queryTx)
	s.v1.GET("/height", s.height)
	return s
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)
		c.Next()
	}
}

func recovery(c *gin.Context, recovered interface{}) {
	log.Error("rest panic", "path", c.Request.URL.Path, "requestID", c.GetString(RequestIDHeader),
		"err", recovered, "stack", fmt.Sprintf("%+v", stack.Trace().TrimRuntime()))
	c.AbortWithStatusJSON(http.StatusInternalServerError, &rpctypes.ErrorResult{Error: fmt.Sprintf("%v", recovered)})
}

func (s *RESTServer) filterIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.filter.allow(remoteIP(c.Request)); err != nil {
			c.AbortWithStatusJSON(rpctypes.HTTPStatus(err), &rpctypes.ErrorResult{Error: err.Error()})
			return
		}
		c.Next()
	}
}

// sendTx 构造并执行交易
func (s *RESTServer) sendTx(c *gin.Context) {
	var in rpctypes.CreateTxIn
	if err := c.ShouldBindJSON(&in); err != nil {
		rpctypes.WriteError(c, types.ErrDecode)
		return
	}
	tx, err := in.CreateTx()
	if err != nil {
		rpctypes.WriteError(c, err)
		return
	}
	detail, err := s.api.ExecTx(tx)
	if err != nil {
		rpctypes.WriteError(c, err)
		return
	}
	rpctypes.WriteTxDetail(c, detail)
}

func (s *RESTServer) queryTx(c *gin.Context) {
	detail, err := s.api.QueryTransaction(c.Param("hash"))
	if err != nil {
		rpctypes.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail.Result())
}

func (s *RESTServer) height(c *gin.Context) {
	c.JSON(http.StatusOK, &types.ReplyHeight{Height: s.api.Height()})
}

// Listen 启动 rest 服务, 返回监听的端口
func (s *RESTServer) Listen(addr string, maxConn int) (int, error) {
	listener, err := listen(addr, maxConn)
	if err != nil {
		return 0, err
	}
	s.l = listener
	s.server = &http.Server{Handler: s.engine}
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("rest serve", "err", err)
		}
	}()
	return listenPort(listener), nil
}

// Close close
func (s *RESTServer) Close() {
	if s.server != nil {
		if err := s.server.Close(); err != nil {
			log.Error("RESTServer close", "err", err)
		}
	}
}

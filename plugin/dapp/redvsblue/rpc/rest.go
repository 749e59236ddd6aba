// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 红蓝对战的 rest 接口
package rpc

import (
	"net/http"
	"strconv"

	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	rpctypes "github.com/33cn/redvsblue/rpc/types"
	"github.com/33cn/redvsblue/types"
	"github.com/gin-gonic/gin"
)

type handler struct {
	api  rpctypes.ChainAPI
	name string
}

// Init 注册 rest 路由和错误对应的状态码
func Init(name string, s rpctypes.RPCServer) {
	rpctypes.RegisterErrStatus(http.StatusBadRequest, pty.ErrInvalidSide)
	rpctypes.RegisterErrStatus(http.StatusConflict, pty.ErrRoundClosed, pty.ErrRoundNotClosed, pty.ErrAlreadyClaimed)
	h := &handler{api: s.API(), name: name}
	r := s.REST()
	r.GET("/round", h.currentRound)
	r.GET("/rounds/:id", h.roundInfo)
	r.GET("/rounds/:id/totals", h.totals)
	r.GET("/rounds/:id/earnings/:addr", h.earnings)
	r.GET("/accounts/:addr/balance", h.balance)
	r.GET("/accounts/:addr/games", h.games)
	r.GET("/owner", h.owner)
	r.GET("/supply", h.supply)
}

func parseInt(c *gin.Context, s string, bitSize int) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		rpctypes.WriteError(c, types.ErrInvalidParam)
		return 0, false
	}
	return v, true
}

func (h *handler) query(c *gin.Context, funcName string, param interface{}) {
	rpctypes.WriteQuery(c, h.api, h.name, funcName, param)
}

func (h *handler) currentRound(c *gin.Context) {
	h.query(c, "GetCurrentRound", &types.ReqNil{})
}

func (h *handler) roundInfo(c *gin.Context) {
	round, ok := parseInt(c, c.Param("id"), 64)
	if !ok {
		return
	}
	h.query(c, "GetRoundInfo", &pty.ReqRound{Round: round})
}

func (h *handler) totals(c *gin.Context) {
	round, ok := parseInt(c, c.Param("id"), 64)
	if !ok {
		return
	}
	h.query(c, "GetGameTotals", &pty.ReqRound{Round: round})
}

func (h *handler) earnings(c *gin.Context) {
	round, ok := parseInt(c, c.Param("id"), 64)
	if !ok {
		return
	}
	h.query(c, "GetEarnings", &pty.ReqEarnings{Round: round, Addr: c.Param("addr")})
}

func (h *handler) balance(c *gin.Context) {
	h.query(c, "GetCreditBalance", &types.ReqAddr{Addr: c.Param("addr")})
}

// games ?round=&count=&direction=
func (h *handler) games(c *gin.Context) {
	req := &pty.ReqPlayerGames{Addr: c.Param("addr")}
	if s := c.Query("round"); s != "" {
		round, ok := parseInt(c, s, 64)
		if !ok {
			return
		}
		req.Round = &round
	}
	if s := c.Query("count"); s != "" {
		count, ok := parseInt(c, s, 32)
		if !ok {
			return
		}
		req.Count = int32(count)
	}
	if s := c.Query("direction"); s != "" {
		direction, ok := parseInt(c, s, 32)
		if !ok {
			return
		}
		req.Direction = int32(direction)
	}
	h.query(c, "GetPlayerGames", req)
}

func (h *handler) owner(c *gin.Context) {
	h.query(c, "GetOwnerAddress", &types.ReqNil{})
}

func (h *handler) supply(c *gin.Context) {
	h.query(c, "GetTotalCredits", &types.ReqNil{})
}

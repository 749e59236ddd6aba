// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"net/http"

	"github.com/33cn/redvsblue/types"
	"github.com/gin-gonic/gin"
)

// WriteError 按错误类型返回状态码
func WriteError(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), &ErrorResult{Error: err.Error()})
}

// WriteQuery 调用执行器的查询并返回结果
func WriteQuery(c *gin.Context, api ChainAPI, execer, funcName string, param interface{}) {
	data, err := json.Marshal(param)
	if err != nil {
		WriteError(c, types.ErrInvalidParam)
		return
	}
	reply, err := api.Query(execer, funcName, data)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// WriteTxDetail 执行失败的交易按错误返回状态码, 同时带上交易详情
func WriteTxDetail(c *gin.Context, detail *types.TxDetail) {
	if err := ReceiptError(detail.Receipt); err != nil {
		c.JSON(HTTPStatus(err), &ErrorResult{Error: err.Error(), Tx: detail.Result()})
		return
	}
	c.JSON(http.StatusOK, detail.Result())
}

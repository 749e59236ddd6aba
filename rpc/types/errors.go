// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"net/http"
	"sync"

	"github.com/33cn/redvsblue/types"
)

var (
	statusLock sync.RWMutex
	errStatus  = make(map[string]int)
)

func init() {
	RegisterErrStatus(http.StatusBadRequest,
		types.ErrAmount,
		types.ErrOverflow,
		types.ErrInsufficientCredits,
		types.ErrInvalidParam,
		types.ErrInvalidAddress,
		types.ErrFromAddr,
		types.ErrActionNotSupport,
		types.ErrQueryNotSupport,
		types.ErrUnRegistedDriver,
		types.ErrExecNameNotAllow,
		types.ErrTxTooBig,
		types.ErrEmptyTx,
		types.ErrDecode,
	)
	RegisterErrStatus(http.StatusNotFound, types.ErrNotFound, types.ErrTxNotFound)
	RegisterErrStatus(http.StatusTooManyRequests, types.ErrRateLimited)
	RegisterErrStatus(http.StatusForbidden, types.ErrNotAllowed)
}

// RegisterErrStatus 错误对应的 http 状态码, 插件注册自己的错误
func RegisterErrStatus(status int, errs ...error) {
	statusLock.Lock()
	defer statusLock.Unlock()
	for _, err := range errs {
		errStatus[err.Error()] = status
	}
}

// HTTPStatus 没有注册的错误返回 500
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	statusLock.RLock()
	defer statusLock.RUnlock()
	if status, ok := errStatus[err.Error()]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ReceiptError 执行失败的交易的错误, 成功时返回 nil
func ReceiptError(r *types.ReceiptData) error {
	if r == nil || r.Ty == types.ExecOk {
		return nil
	}
	for _, l := range r.Logs {
		if l.Ty != types.TyLogErr {
			continue
		}
		return errors.New(string(l.Log))
	}
	return errors.New("ExecErr")
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"net/http"
	"testing"

	"github.com/33cn/redvsblue/types"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(types.ErrAmount))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(types.ErrTxNotFound))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(types.ErrRateLimited))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))

	errTest := errors.New("ErrTestConflict")
	RegisterErrStatus(http.StatusConflict, errTest)
	assert.Equal(t, http.StatusConflict, HTTPStatus(errTest))
	//按错误文本匹配, 经过 receipt 还原的错误同样适用
	assert.Equal(t, http.StatusConflict, HTTPStatus(errors.New("ErrTestConflict")))
}

func TestReceiptError(t *testing.T) {
	assert.Nil(t, ReceiptError(nil))
	assert.Nil(t, ReceiptError(&types.ReceiptData{Ty: types.ExecOk}))

	err := ReceiptError(types.NewErrReceipt(types.ErrInsufficientCredits))
	assert.EqualError(t, err, types.ErrInsufficientCredits.Error())

	err = ReceiptError(&types.ReceiptData{Ty: types.ExecErr})
	assert.EqualError(t, err, "ExecErr")

	err = ReceiptError(&types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{{Ty: types.TyLogErr, Log: []byte("raw")}}})
	assert.EqualError(t, err, "raw")
}

func TestCreateTxIn(t *testing.T) {
	in := &CreateTxIn{Execer: "nosuchexec", ActionName: "Any"}
	_, err := in.CreateTx()
	assert.Equal(t, types.ErrUnRegistedDriver, err)
}

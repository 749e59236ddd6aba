// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// errors shared by the framework and the credit ledger
var (
	ErrNotFound            = errors.New("ErrNotFound")
	ErrAmount              = errors.New("ErrAmount")
	ErrOverflow            = errors.New("ErrOverflow")
	ErrInsufficientCredits = errors.New("ErrInsufficientCredits")
	ErrInvalidParam        = errors.New("ErrInvalidParam")
	ErrInvalidAddress      = errors.New("ErrInvalidAddress")
	ErrFromAddr            = errors.New("ErrFromAddr")
	ErrActionNotSupport    = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport     = errors.New("ErrQueryNotSupport")
	ErrMethodReturnType    = errors.New("ErrMethodReturnType")
	ErrUnRegistedDriver    = errors.New("ErrUnRegistedDriver")
	ErrExecNameNotAllow    = errors.New("ErrExecNameNotAllow")
	ErrTxNotFound          = errors.New("ErrTxNotFound")
	ErrTxTooBig            = errors.New("ErrTxTooBig")
	ErrEmptyTx             = errors.New("ErrEmptyTx")
	ErrDecode              = errors.New("ErrDecode")
	ErrRateLimited         = errors.New("ErrRateLimited")
	ErrNotAllowed          = errors.New("ErrNotAllowed")
	ErrDataBaseDamage      = errors.New("ErrDataBaseDamage")
)

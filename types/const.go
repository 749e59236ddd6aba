// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// receipt types
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log types shared by every executor. dapp log types start at 1000.
const (
	TyLogReserved       = 0
	TyLogErr            = 1
	TyLogCreditDeposit  = 2
	TyLogCreditWithdraw = 3
	TyLogCreditTransfer = 4
)

// db key prefixes
const (
	StatePrefix     = "mavl-"
	LocalPrefix     = "LODB-"
	HeightKey       = "Chain-Height"
	TxReceiptPrefix = "TxReceipt-"
)

// limits
const (
	MaxTxSize         = 100000
	MaxQueryCount     = 1000
	DefaultQueryCount = 20
)

var systemLog = map[int32]string{
	TyLogReserved:       "LogReserved",
	TyLogErr:            "LogErr",
	TyLogCreditDeposit:  "LogCreditDeposit",
	TyLogCreditWithdraw: "LogCreditWithdraw",
	TyLogCreditTransfer: "LogCreditTransfer",
}

// Version 程序版本
var Version = "1.0.0"

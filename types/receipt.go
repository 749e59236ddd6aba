// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/redvsblue/common"
	"google.golang.org/protobuf/proto"
)

// ReceiptLogResult human readable log
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawLog"`
}

// ReceiptDataResult human readable receipt
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// TxDetailResult rpc view of a TxDetail
type TxDetailResult struct {
	Tx        *Transaction       `json:"tx"`
	Hash      string             `json:"hash"`
	Height    int64              `json:"height"`
	Blocktime int64              `json:"blockTime"`
	Receipt   *ReceiptDataResult `json:"receipt"`
}

// NewErrReceipt receipt of a failed transaction, the log is the error text
func NewErrReceipt(err error) *ReceiptData {
	return &ReceiptData{Ty: ExecErr, Logs: []*ReceiptLog{{Ty: TyLogErr, Log: []byte(err.Error())}}}
}

// NewLog encode a log payload
func NewLog(ty int32, payload proto.Message) *ReceiptLog {
	return &ReceiptLog{Ty: ty, Log: Encode(payload)}
}

func decodeSystemLog(ty int32, data []byte) interface{} {
	switch ty {
	case TyLogErr:
		return string(data)
	case TyLogCreditDeposit, TyLogCreditWithdraw, TyLogCreditTransfer:
		var l ReceiptAccountTransfer
		if Decode(data, &l) != nil {
			return nil
		}
		return &l
	}
	return nil
}

// Result decode logs with the names registered by the executor type
func (r *ReceiptData) Result(execer string) *ReceiptDataResult {
	if r == nil {
		return nil
	}
	result := &ReceiptDataResult{Ty: r.Ty}
	switch r.Ty {
	case ExecOk:
		result.TyName = "ExecOk"
	case ExecPack:
		result.TyName = "ExecPack"
	default:
		result.TyName = "ExecErr"
	}
	ety := LoadExecutorType(execer)
	for _, l := range r.Logs {
		lr := &ReceiptLogResult{Ty: l.Ty, RawLog: common.ToHex(l.Log)}
		if name, ok := systemLog[l.Ty]; ok {
			lr.TyName = name
			lr.Log = decodeSystemLog(l.Ty, l.Log)
		} else if ety != nil {
			if info, exist := ety.GetLogMap()[l.Ty]; exist {
				lr.TyName = info.Name
				if v, err := ety.DecodeLog(l.Ty, l.Log); err == nil {
					lr.Log = v
				}
			}
		}
		if lr.TyName == "" {
			lr.TyName = "LogReserved"
		}
		result.Logs = append(result.Logs, lr)
	}
	return result
}

// Result rpc view
func (d *TxDetail) Result() *TxDetailResult {
	return &TxDetailResult{
		Tx:        d.Tx,
		Hash:      d.Hash,
		Height:    d.Height,
		Blocktime: d.Blocktime,
		Receipt:   d.Receipt.Result(d.Tx.GetExecer()),
	}
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//go:generate protoc -I=../proto --go_out=. --go_opt=paths=source_relative redvsblue.proto

import (
	"reflect"

	"github.com/33cn/redvsblue/types"
)

var (
	actionTypeMap = map[string]int32{
		"BuyCredits":      RedVsBlueActionBuyCredits,
		"WithdrawCredits": RedVsBlueActionWithdrawCredits,
		"CastVote":        RedVsBlueActionCastVote,
		"ClaimEarnings":   RedVsBlueActionClaimEarnings,
	}
	logMap = map[int32]*types.LogInfo{
		TyLogRedVsBlueBuyCredits:      {Ty: reflect.TypeOf(&ReceiptBuyCredits{}).Elem(), Name: "LogRedVsBlueBuyCredits"},
		TyLogRedVsBlueWithdrawCredits: {Ty: reflect.TypeOf(&ReceiptWithdrawCredits{}).Elem(), Name: "LogRedVsBlueWithdrawCredits"},
		TyLogRedVsBlueCastVote:        {Ty: reflect.TypeOf(&ReceiptCastVote{}).Elem(), Name: "LogRedVsBlueCastVote"},
		TyLogRedVsBlueClaimEarnings:   {Ty: reflect.TypeOf(&ReceiptClaimEarnings{}).Elem(), Name: "LogRedVsBlueClaimEarnings"},
	}
)

func init() {
	types.RegistorExecutor(RedVsBlueX, NewType())
}

// RedVsBlueType payload 和 log 的编解码
type RedVsBlueType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *RedVsBlueType {
	c := &RedVsBlueType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名
func (t *RedVsBlueType) GetName() string {
	return RedVsBlueX
}

// GetPayload 获取消息负载结构
func (t *RedVsBlueType) GetPayload() types.ExecutorAction {
	return &RedVsBlueAction{}
}

// GetTypeMap 获取类型map
func (t *RedVsBlueType) GetTypeMap() map[string]int32 {
	return actionTypeMap
}

// GetLogMap 获取日志map
func (t *RedVsBlueType) GetLogMap() map[int32]*types.LogInfo {
	return logMap
}

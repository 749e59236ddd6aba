// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/types"
)

// ExecLocal_CastVote 记录地址参与的轮次
func (r *RedVsBlue) ExecLocal_CastVote(payload *pty.CastVote, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	if receipt.Ty != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	var set types.LocalDBSet
	for _, item := range receipt.Logs {
		if item.Ty != pty.TyLogRedVsBlueCastVote {
			continue
		}
		var vlog pty.ReceiptCastVote
		if err := types.Decode(item.Log, &vlog); err != nil {
			return nil, err
		}
		key := calcPlayerGameKey(vlog.Addr, vlog.Round)
		//同一轮次多次投票只记录一次
		if _, err := r.GetLocalDB().Get(key); err == nil {
			continue
		}
		set.KV = append(set.KV, &types.KeyValue{Key: key, Value: types.Encode(&pty.PlayerGame{Round: vlog.Round})})
	}
	return &set, nil
}

// ExecLocal_ClaimEarnings 标记轮次已领取
func (r *RedVsBlue) ExecLocal_ClaimEarnings(payload *pty.ClaimEarnings, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	if receipt.Ty != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	var set types.LocalDBSet
	for _, item := range receipt.Logs {
		if item.Ty != pty.TyLogRedVsBlueClaimEarnings {
			continue
		}
		var clog pty.ReceiptClaimEarnings
		if err := types.Decode(item.Log, &clog); err != nil {
			return nil, err
		}
		//没有投过票的地址也可以领取 (收益为 0), 不记录
		key := calcPlayerGameKey(clog.Addr, clog.Round)
		if _, err := r.GetLocalDB().Get(key); err != nil {
			continue
		}
		set.KV = append(set.KV, &types.KeyValue{Key: key, Value: types.Encode(&pty.PlayerGame{Round: clog.Round, Claimed: true})})
	}
	return &set, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/types"
)

// Exec_BuyCredits 购买 credit
func (r *RedVsBlue) Exec_BuyCredits(payload *pty.BuyCredits, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx)
	if err != nil {
		return nil, err
	}
	return action.BuyCredits(tx)
}

// Exec_WithdrawCredits 卖出 credit
func (r *RedVsBlue) Exec_WithdrawCredits(payload *pty.WithdrawCredits, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx)
	if err != nil {
		return nil, err
	}
	return action.WithdrawCredits(payload)
}

// Exec_CastVote 投票
func (r *RedVsBlue) Exec_CastVote(payload *pty.CastVote, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx)
	if err != nil {
		return nil, err
	}
	return action.CastVote(payload)
}

// Exec_ClaimEarnings 领取收益
func (r *RedVsBlue) Exec_ClaimEarnings(payload *pty.ClaimEarnings, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx)
	if err != nil {
		return nil, err
	}
	return action.ClaimEarnings(payload)
}

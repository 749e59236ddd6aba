// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/redvsblue/account"
	dbm "github.com/33cn/redvsblue/common/db"
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
)

// Action 一笔交易的执行环境
type Action struct {
	db       dbm.KV
	acc      *account.DB
	game     *gameDB
	conv     *account.Converter
	cfg      *pty.Config
	fromaddr string
	height   int64
	execaddr string
}

// NewAction new
func NewAction(r *RedVsBlue, tx *types.Transaction) (*Action, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	db := r.GetStateDB()
	acc, err := account.NewCreditAccount(r.GetName(), db)
	if err != nil {
		return nil, err
	}
	return &Action{
		db:       db,
		acc:      acc,
		game:     newGameDB(db),
		conv:     account.NewConverter(cfg.CreditsPerNative),
		cfg:      cfg,
		fromaddr: tx.From,
		height:   r.GetHeight(),
		execaddr: dapp.ExecAddress(r.GetName()),
	}, nil
}

func (a *Action) currentRound() int64 {
	return currentRound(a.height, a.cfg.WindowSize)
}

// BuyCredits 交易的 value 按比例换成 credit, 不足一个 credit 的部分退回
func (a *Action) BuyCredits(tx *types.Transaction) (*types.Receipt, error) {
	value, err := tx.Amount()
	if err != nil {
		return nil, err
	}
	credits, accepted, refund, err := a.conv.ToCredits(value)
	if err != nil {
		rlog.Error("BuyCredits", "addr", a.fromaddr, "value", tx.Value, "err", err)
		return nil, err
	}
	receipt, err := a.acc.Deposit(a.fromaddr, credits)
	if err != nil {
		return nil, err
	}
	log := &pty.ReceiptBuyCredits{
		Addr:    a.fromaddr,
		Native:  accepted.String(),
		Refund:  refund.String(),
		Credits: credits,
		Balance: a.acc.LoadAccount(a.fromaddr).Balance,
	}
	kv := dapp.NewKVCreator(a.db)
	kv.AddReceipt(receipt).AddLog(types.NewLog(pty.TyLogRedVsBlueBuyCredits, log))
	return kv.Receipt(), nil
}

// WithdrawCredits 卖出 credit, 返回对应的 native 数量
func (a *Action) WithdrawCredits(w *pty.WithdrawCredits) (*types.Receipt, error) {
	receipt, err := a.acc.Withdraw(a.fromaddr, w.Amount)
	if err != nil {
		rlog.Error("WithdrawCredits", "addr", a.fromaddr, "amount", w.Amount, "err", err)
		return nil, err
	}
	log := &pty.ReceiptWithdrawCredits{
		Addr:    a.fromaddr,
		Credits: w.Amount,
		Native:  a.conv.ToNative(w.Amount).String(),
		Balance: a.acc.LoadAccount(a.fromaddr).Balance,
	}
	kv := dapp.NewKVCreator(a.db)
	kv.AddReceipt(receipt).AddLog(types.NewLog(pty.TyLogRedVsBlueWithdrawCredits, log))
	return kv.Receipt(), nil
}

// CastVote 在当前轮次投票, credit 转入奖池
func (a *Action) CastVote(v *pty.CastVote) (*types.Receipt, error) {
	round := a.currentRound()
	if v.GameId != nil && *v.GameId >= 0 && *v.GameId != round {
		return nil, pty.ErrRoundClosed
	}
	if v.Side != pty.SideRed && v.Side != pty.SideBlue {
		return nil, pty.ErrInvalidSide
	}
	if v.Amount <= 0 || v.Amount > a.acc.LoadAccount(a.fromaddr).Balance {
		return nil, types.ErrInsufficientCredits
	}
	receipt, err := a.acc.Transfer(a.fromaddr, a.execaddr, v.Amount)
	if err != nil {
		rlog.Error("CastVote transfer", "addr", a.fromaddr, "amount", v.Amount, "err", err)
		return nil, err
	}
	total, err := a.game.getInt64(calcTotalKey(round, v.Side))
	if err != nil {
		return nil, err
	}
	wager, err := a.game.getInt64(calcWagerKey(round, a.fromaddr, v.Side))
	if err != nil {
		return nil, err
	}
	//wager <= total <= 总量, 不会溢出
	total += v.Amount
	wager += v.Amount
	log := &pty.ReceiptCastVote{
		Addr:      a.fromaddr,
		Round:     round,
		Side:      v.Side,
		Amount:    v.Amount,
		Wager:     wager,
		SideTotal: total,
		Balance:   a.acc.LoadAccount(a.fromaddr).Balance,
	}
	kv := dapp.NewKVCreator(a.db)
	kv.AddReceipt(receipt)
	kv.Add(calcTotalKey(round, v.Side), types.EncodeInt64(total))
	kv.Add(calcWagerKey(round, a.fromaddr, v.Side), types.EncodeInt64(wager))
	kv.AddLog(types.NewLog(pty.TyLogRedVsBlueCastVote, log))
	rlog.Debug("CastVote", "addr", a.fromaddr, "round", round, "side", pty.SideName(v.Side), "amount", v.Amount)
	return kv.Receipt(), nil
}

// ClaimEarnings 领取已结束轮次的收益, 每个地址每个轮次只能领取一次
func (a *Action) ClaimEarnings(c *pty.ClaimEarnings) (*types.Receipt, error) {
	if c.Round < 0 {
		return nil, types.ErrInvalidParam
	}
	if c.Round >= a.currentRound() {
		return nil, pty.ErrRoundNotClosed
	}
	earnings, claimed, err := a.game.earnings(c.Round, a.fromaddr, true, a.cfg.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, pty.ErrAlreadyClaimed
	}
	kv := dapp.NewKVCreator(a.db)
	if earnings.Earned > 0 {
		receipt, err := a.acc.Transfer(a.execaddr, a.fromaddr, earnings.Earned)
		if err != nil {
			rlog.Error("ClaimEarnings pay", "addr", a.fromaddr, "round", c.Round, "earned", earnings.Earned, "err", err)
			return nil, err
		}
		kv.AddReceipt(receipt)
	}
	owner := a.cfg.OwnerAddr()
	if earnings.Fee > 0 {
		receipt, err := a.acc.Transfer(a.execaddr, owner, earnings.Fee)
		if err != nil {
			rlog.Error("ClaimEarnings fee", "owner", owner, "round", c.Round, "fee", earnings.Fee, "err", err)
			return nil, err
		}
		kv.AddReceipt(receipt)
	}
	kv.Add(calcClaimKey(c.Round, a.fromaddr), types.Encode(&pty.ClaimRecord{
		Claimed: true,
		Earned:  earnings.Earned,
		Fee:     earnings.Fee,
		Height:  a.height,
	}))
	log := &pty.ReceiptClaimEarnings{
		Addr:    a.fromaddr,
		Round:   c.Round,
		Earned:  earnings.Earned,
		Spent:   earnings.Spent,
		Fee:     earnings.Fee,
		Owner:   owner,
		Balance: a.acc.LoadAccount(a.fromaddr).Balance,
	}
	kv.AddLog(types.NewLog(pty.TyLogRedVsBlueClaimEarnings, log))
	return kv.Receipt(), nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/redvsblue/account"
	"github.com/33cn/redvsblue/common/address"
	dbm "github.com/33cn/redvsblue/common/db"
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
)

// Query_GetCurrentRound 当前轮次
func (r *RedVsBlue) Query_GetCurrentRound(in *types.ReqNil) (types.Message, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	round := currentRound(r.GetHeight(), cfg.WindowSize)
	start, end := roundWindow(round, cfg.WindowSize)
	return &pty.ReplyCurrentRound{
		Round:       round,
		Height:      r.GetHeight(),
		WindowSize:  cfg.WindowSize,
		StartHeight: start,
		EndHeight:   end,
	}, nil
}

// Query_GetRoundInfo 轮次的起止高度
func (r *RedVsBlue) Query_GetRoundInfo(in *pty.ReqRound) (types.Message, error) {
	if in.Round < 0 {
		return nil, types.ErrInvalidParam
	}
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	start, end := roundWindow(in.Round, cfg.WindowSize)
	return &pty.ReplyRoundInfo{
		Round:       in.Round,
		StartHeight: start,
		EndHeight:   end,
		Closed:      isClosed(in.Round, r.GetHeight(), cfg.WindowSize),
	}, nil
}

// Query_GetGameTotals 两边的总投注
func (r *RedVsBlue) Query_GetGameTotals(in *pty.ReqRound) (types.Message, error) {
	if in.Round < 0 {
		return nil, types.ErrInvalidParam
	}
	totals, err := newGameDB(r.GetStateDB()).totals(in.Round)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyGameTotals{Round: in.Round, Red: totals[pty.SideRed], Blue: totals[pty.SideBlue]}, nil
}

// Query_GetEarnings 地址在轮次的收益
func (r *RedVsBlue) Query_GetEarnings(in *pty.ReqEarnings) (types.Message, error) {
	if in.Round < 0 {
		return nil, types.ErrInvalidParam
	}
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return r.getEarnings(in.Round, in.Addr)
}

func (r *RedVsBlue) getEarnings(round int64, addr string) (*pty.ReplyEarnings, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	closed := isClosed(round, r.GetHeight(), cfg.WindowSize)
	e, claimed, err := newGameDB(r.GetStateDB()).earnings(round, addr, closed, cfg.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyEarnings{Round: round, Addr: addr, Earned: e.Earned, Spent: e.Spent, Claimed: claimed}, nil
}

// Query_GetCreditBalance credit 余额
func (r *RedVsBlue) Query_GetCreditBalance(in *types.ReqAddr) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	acc, err := account.NewCreditAccount(r.GetName(), r.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyCreditBalance{Addr: in.Addr, Balance: acc.LoadAccount(in.Addr).Balance}, nil
}

// Query_GetOwnerAddress 手续费接收地址
func (r *RedVsBlue) Query_GetOwnerAddress(in *types.ReqNil) (types.Message, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	return &types.ReplyString{Data: cfg.OwnerAddr()}, nil
}

// Query_GetTotalCredits credit 总量, 奖池和 owner 余额
func (r *RedVsBlue) Query_GetTotalCredits(in *types.ReqNil) (types.Message, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	acc, err := account.NewCreditAccount(r.GetName(), r.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyTotalCredits{
		Supply: acc.LoadSupply(),
		Pool:   acc.LoadAccount(dapp.ExecAddress(r.GetName())).Balance,
		Owner:  acc.LoadAccount(cfg.OwnerAddr()).Balance,
	}, nil
}

// Query_GetPlayerGames 地址参与过的轮次和收益
func (r *RedVsBlue) Query_GetPlayerGames(in *pty.ReqPlayerGames) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if in.Direction != dbm.ListDESC && in.Direction != dbm.ListASC {
		return nil, types.ErrInvalidParam
	}
	count := in.Count
	if count == 0 {
		count = types.DefaultQueryCount
	}
	var key []byte
	if in.Round != nil {
		key = calcPlayerGameKey(in.Addr, *in.Round)
	}
	values, err := r.GetLocalDB().List(calcPlayerGamePrefix(in.Addr), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	var reply pty.ReplyPlayerGames
	for _, value := range values {
		var game pty.PlayerGame
		if err := types.Decode(value, &game); err != nil {
			rlog.Error("GetPlayerGames decode", "addr", in.Addr, "err", err)
			continue
		}
		earnings, err := r.getEarnings(game.Round, in.Addr)
		if err != nil {
			return nil, err
		}
		reply.Games = append(reply.Games, earnings)
	}
	if len(reply.Games) == 0 {
		return nil, types.ErrNotFound
	}
	reply.Total = r.GetPrefixCount(calcPlayerGamePrefix(in.Addr))
	return &reply, nil
}

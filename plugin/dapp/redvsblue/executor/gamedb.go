// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/redvsblue/common/db"
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/types"
)

// gameDB 读取轮次的投注状态
type gameDB struct {
	db dbm.KV
}

func newGameDB(db dbm.KV) *gameDB {
	return &gameDB{db: db}
}

func (g *gameDB) getInt64(key []byte) (int64, error) {
	value, err := g.db.Get(key)
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return types.DecodeInt64(value)
}

// totals 两边的总投注, 没有投注的轮次为 (0,0)
func (g *gameDB) totals(round int64) (totals [2]int64, err error) {
	for _, side := range []int32{pty.SideRed, pty.SideBlue} {
		totals[side], err = g.getInt64(calcTotalKey(round, side))
		if err != nil {
			return totals, err
		}
	}
	return totals, nil
}

// wager 地址在两边的投注
func (g *gameDB) wager(round int64, addr string) (wager [2]int64, err error) {
	for _, side := range []int32{pty.SideRed, pty.SideBlue} {
		wager[side], err = g.getInt64(calcWagerKey(round, addr, side))
		if err != nil {
			return wager, err
		}
	}
	return wager, nil
}

// claim 领取记录, 没有领取时返回 nil
func (g *gameDB) claim(round int64, addr string) (*pty.ClaimRecord, error) {
	value, err := g.db.Get(calcClaimKey(round, addr))
	if err == types.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record pty.ClaimRecord
	if err := types.Decode(value, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// earnings 轮次还没有结束时收益为 0
func (g *gameDB) earnings(round int64, addr string, closed bool, feeBasisPoints int64) (Earnings, bool, error) {
	wager, err := g.wager(round, addr)
	if err != nil {
		return Earnings{}, false, err
	}
	record, err := g.claim(round, addr)
	if err != nil {
		return Earnings{}, false, err
	}
	claimed := record != nil
	if !closed {
		return Earnings{Spent: wager[pty.SideRed] + wager[pty.SideBlue]}, claimed, nil
	}
	totals, err := g.totals(round)
	if err != nil {
		return Earnings{}, false, err
	}
	return CalcEarnings(totals, wager, feeBasisPoints), claimed, nil
}

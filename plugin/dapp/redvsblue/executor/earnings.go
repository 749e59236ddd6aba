// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/shopspring/decimal"
)

// Earnings 一个地址在一个已结束轮次的收益
type Earnings struct {
	Earned int64
	Spent  int64
	Fee    int64
}

// CalcEarnings 根据两边的总量和地址的投注计算收益.
// 平局退还全部投注; 赢的一方拿回本金并按比例分得扣除手续费后的输方总量.
func CalcEarnings(totals, wager [2]int64, feeBasisPoints int64) Earnings {
	e := Earnings{Spent: wager[pty.SideRed] + wager[pty.SideBlue]}
	if totals[pty.SideRed] == totals[pty.SideBlue] {
		e.Earned = e.Spent
		return e
	}
	win, lose := pty.SideRed, pty.SideBlue
	if totals[pty.SideBlue] > totals[pty.SideRed] {
		win, lose = pty.SideBlue, pty.SideRed
	}
	stake := wager[win]
	if stake == 0 {
		return e
	}
	winTotal, loseTotal := totals[win], totals[lose]
	distributable := loseTotal - mulDiv(loseTotal, feeBasisPoints, pty.MaxFeeBasisPoints)
	share := mulDiv(distributable, stake, winTotal)
	e.Earned = stake + share
	e.Fee = mulDiv(loseTotal, stake, winTotal) - share
	return e
}

//floor(a*b/c), a b c 都不为负
func mulDiv(a, b, c int64) int64 {
	prod := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b))
	div := decimal.NewFromInt(c)
	return prod.Sub(prod.Mod(div)).Div(div).IntPart()
}

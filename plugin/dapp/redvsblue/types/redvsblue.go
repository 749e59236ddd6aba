// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ReqRound query by round
type ReqRound struct {
	Round int64 `json:"round"`
}

// ReqEarnings query earnings of addr in round
type ReqEarnings struct {
	Round int64  `json:"round"`
	Addr  string `json:"addr"`
}

// ReqPlayerGames 分页查询地址参与过的轮次, Round 为空时从头开始, Direction 0 倒序 1 正序
type ReqPlayerGames struct {
	Addr      string `json:"addr"`
	Round     *int64 `json:"round,omitempty"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

// ReplyCurrentRound current round
type ReplyCurrentRound struct {
	Round       int64 `json:"round"`
	Height      int64 `json:"height"`
	WindowSize  int64 `json:"windowSize"`
	StartHeight int64 `json:"startHeight"`
	EndHeight   int64 `json:"endHeight"`
}

// ReplyRoundInfo window of a round
type ReplyRoundInfo struct {
	Round       int64 `json:"round"`
	StartHeight int64 `json:"startHeight"`
	EndHeight   int64 `json:"endHeight"`
	Closed      bool  `json:"closed"`
}

// ReplyGameTotals side totals
type ReplyGameTotals struct {
	Round int64 `json:"round"`
	Red   int64 `json:"red"`
	Blue  int64 `json:"blue"`
}

// ReplyEarnings earnings of addr
type ReplyEarnings struct {
	Round   int64  `json:"round"`
	Addr    string `json:"addr"`
	Earned  int64  `json:"earned"`
	Spent   int64  `json:"spent"`
	Claimed bool   `json:"claimed"`
}

// ReplyCreditBalance balance
type ReplyCreditBalance struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

// ReplyPlayerGames one page of the games of addr, total counts every round played
type ReplyPlayerGames struct {
	Games []*ReplyEarnings `json:"games"`
	Total int64            `json:"total"`
}

// ReplyTotalCredits supply and the balances of the pool and the owner
type ReplyTotalCredits struct {
	Supply int64 `json:"supply"`
	Pool   int64 `json:"pool"`
	Owner  int64 `json:"owner"`
}

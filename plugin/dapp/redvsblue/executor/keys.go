// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	"github.com/33cn/redvsblue/types"
)

var (
	totalPrefix = types.StatePrefix + pty.RedVsBlueX + "-total-"
	wagerPrefix = types.StatePrefix + pty.RedVsBlueX + "-wager-"
	claimPrefix = types.StatePrefix + pty.RedVsBlueX + "-claim-"
	gamePrefix  = types.LocalPrefix + pty.RedVsBlueX + "-game-"
)

func calcTotalKey(round int64, side int32) []byte {
	return []byte(fmt.Sprintf("%s%010d-%d", totalPrefix, round, side))
}

func calcWagerKey(round int64, addr string, side int32) []byte {
	return []byte(fmt.Sprintf("%s%010d-%s-%d", wagerPrefix, round, addr, side))
}

func calcClaimKey(round int64, addr string) []byte {
	return []byte(fmt.Sprintf("%s%010d-%s", claimPrefix, round, addr))
}

func calcPlayerGamePrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s-", gamePrefix, addr))
}

func calcPlayerGameKey(addr string, round int64) []byte {
	return []byte(fmt.Sprintf("%s%s-%010d", gamePrefix, addr, round))
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RedVsBlueX 执行器名
const RedVsBlueX = "redvsblue"

// action
const (
	RedVsBlueActionBuyCredits = 1 + iota
	RedVsBlueActionWithdrawCredits
	RedVsBlueActionCastVote
	RedVsBlueActionClaimEarnings
)

//log for redvsblue
const (
	TyLogRedVsBlueBuyCredits      = 2001
	TyLogRedVsBlueWithdrawCredits = 2002
	TyLogRedVsBlueCastVote        = 2003
	TyLogRedVsBlueClaimEarnings   = 2004
)

// side
const (
	SideRed  = 0
	SideBlue = 1
)

// default config
const (
	DefaultWindowSize       = 128
	DefaultCreditsPerNative = 1000
	MaxFeeBasisPoints       = 10000
	// OwnerExecName 默认 owner 地址由该名字计算
	OwnerExecName = RedVsBlueX + ".owner"
)

// SideName RED / BLUE
func SideName(side int32) string {
	switch side {
	case SideRed:
		return "RED"
	case SideBlue:
		return "BLUE"
	}
	return "unknown"
}

// ParseSide side from its name or number
func ParseSide(s string) (int32, error) {
	switch s {
	case "RED", "red", "0":
		return SideRed, nil
	case "BLUE", "blue", "1":
		return SideBlue, nil
	}
	return 0, ErrInvalidSide
}

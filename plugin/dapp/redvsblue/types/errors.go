// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrRoundNotClosed 轮次还没有结束, 不能领取
	ErrRoundNotClosed = errors.New("ErrRoundNotClosed")
	// ErrAlreadyClaimed 已经领取过
	ErrAlreadyClaimed = errors.New("ErrAlreadyClaimed")
	// ErrRoundClosed 投票指定的轮次不是当前轮次
	ErrRoundClosed = errors.New("ErrRoundClosed")
	// ErrInvalidSide side 只能是 RED 或 BLUE
	ErrInvalidSide = errors.New("ErrInvalidSide")
)

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

// currentRound 高度所在的轮次
func currentRound(height, windowSize int64) int64 {
	if height < 0 {
		return 0
	}
	return height / windowSize
}

// roundWindow 轮次的起止高度, 闭区间
func roundWindow(round, windowSize int64) (start, end int64) {
	start = round * windowSize
	return start, start + windowSize - 1
}

// isClosed 小于当前轮次的轮次已经结束
func isClosed(round, height, windowSize int64) bool {
	return round < currentRound(height, windowSize)
}

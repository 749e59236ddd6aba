// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"math"

	"github.com/33cn/redvsblue/types"
	"github.com/shopspring/decimal"
)

var maxCredits = decimal.NewFromInt(math.MaxInt64)

// Converter native 与 credit 之间的换算
type Converter struct {
	perNative decimal.Decimal
}

// NewConverter creditsPerNative must be positive
func NewConverter(creditsPerNative int64) *Converter {
	if creditsPerNative <= 0 {
		panic("creditsPerNative must be positive")
	}
	return &Converter{perNative: decimal.NewFromInt(creditsPerNative)}
}

// ToCredits 换算为 credit, 不足一个 credit 的部分作为 refund 返回
func (c *Converter) ToCredits(native decimal.Decimal) (credits int64, accepted, refund decimal.Decimal, err error) {
	if !native.IsPositive() {
		return 0, decimal.Zero, decimal.Zero, types.ErrAmount
	}
	whole := native.Mul(c.perNative).Floor()
	if !whole.IsPositive() {
		return 0, decimal.Zero, decimal.Zero, types.ErrAmount
	}
	if whole.GreaterThan(maxCredits) {
		return 0, decimal.Zero, decimal.Zero, types.ErrOverflow
	}
	credits = whole.IntPart()
	accepted = c.ToNative(credits)
	return credits, accepted, native.Sub(accepted), nil
}

// ToNative credit 对应的 native 数量
func (c *Converter) ToNative(credits int64) decimal.Decimal {
	return decimal.NewFromInt(credits).Div(c.perNative)
}

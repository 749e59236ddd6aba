// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/redvsblue/common/address"
	"github.com/33cn/redvsblue/types"
	"github.com/pkg/errors"
)

// Config [exec.sub.redvsblue]
type Config struct {
	WindowSize       int64  `json:"windowSize"`
	CreditsPerNative int64  `json:"creditsPerNative"`
	FeeBasisPoints   int64  `json:"feeBasisPoints"`
	Owner            string `json:"owner"`
}

// DefaultConfig 默认配置, 没有手续费
func DefaultConfig() *Config {
	return &Config{
		WindowSize:       DefaultWindowSize,
		CreditsPerNative: DefaultCreditsPerNative,
	}
}

// ParseConfig 在默认配置上解析 sub 配置
func ParseConfig(sub []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, cfg); err != nil {
			return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
		}
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check 检查配置
func (c *Config) Check() error {
	if c.WindowSize <= 0 {
		return errors.Wrapf(types.ErrInvalidParam, "windowSize %d", c.WindowSize)
	}
	if c.CreditsPerNative <= 0 {
		return errors.Wrapf(types.ErrInvalidParam, "creditsPerNative %d", c.CreditsPerNative)
	}
	if c.FeeBasisPoints < 0 || c.FeeBasisPoints > MaxFeeBasisPoints {
		return errors.Wrapf(types.ErrInvalidParam, "feeBasisPoints %d", c.FeeBasisPoints)
	}
	if c.Owner != "" {
		if err := address.CheckAddress(c.Owner); err != nil {
			return errors.Wrapf(types.ErrInvalidAddress, "owner %s", c.Owner)
		}
		//奖池地址不能收手续费
		if c.Owner == address.ExecAddress(RedVsBlueX) {
			return errors.Wrapf(types.ErrInvalidAddress, "owner %s is the pool address", c.Owner)
		}
	}
	return nil
}

// OwnerAddr 手续费接收地址
func (c *Config) OwnerAddr() string {
	if c.Owner != "" {
		return c.Owner
	}
	return address.ExecAddress(OwnerExecName)
}

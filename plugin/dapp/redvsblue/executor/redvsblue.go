// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 红蓝对战执行器
package executor

import (
	pty "github.com/33cn/redvsblue/plugin/dapp/redvsblue/types"
	drivers "github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.redvsblue")

var driverName = pty.RedVsBlueX

//初始化过程比较重量级，有很多reflact, 所以弄成全局的
var executorType = pty.NewType()

// Init 注册执行器, sub 为 [exec.sub.redvsblue], 配置错误时 panic
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	cfg, err := pty.ParseConfig(sub)
	if err != nil {
		panic(err)
	}
	rlog.Info("redvsblue init", "windowSize", cfg.WindowSize, "creditsPerNative", cfg.CreditsPerNative,
		"feeBasisPoints", cfg.FeeBasisPoints, "owner", cfg.OwnerAddr())
	drivers.Register(driverName, newRedVsBlue, 0)
}

// GetName 执行器名
func GetName() string {
	return newRedVsBlue().GetName()
}

// RedVsBlue 执行器
type RedVsBlue struct {
	drivers.DriverBase
	cfg *pty.Config
}

func newRedVsBlue() drivers.Driver {
	r := &RedVsBlue{}
	r.SetChild(r)
	r.SetExecutorType(executorType)
	return r
}

// GetDriverName 驱动名
func (r *RedVsBlue) GetDriverName() string {
	return driverName
}

// getConfig sub 配置, 第一次调用时解析
func (r *RedVsBlue) getConfig() (*pty.Config, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}
	cfg, err := pty.ParseConfig(r.GetSubConfig())
	if err != nil {
		rlog.Error("getConfig", "err", err)
		return nil, err
	}
	r.cfg = cfg
	return cfg, nil
}

// CheckTx 除了默认检查, from 不能是默认 owner 地址, 投票的 side 必须合法
func (r *RedVsBlue) CheckTx(tx *types.Transaction, index int) error {
	if err := r.DriverBase.CheckTx(tx, index); err != nil {
		return err
	}
	if tx.From == drivers.ExecAddress(pty.OwnerExecName) {
		return types.ErrFromAddr
	}
	action, err := executorType.DecodePayload(tx)
	if err != nil {
		return err
	}
	if vote := action.(*pty.RedVsBlueAction).GetCastVote(); vote != nil {
		if vote.Side != pty.SideRed && vote.Side != pty.SideBlue {
			return pty.ErrInvalidSide
		}
	}
	return nil
}

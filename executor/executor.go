// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 串行执行交易, 每笔交易打包一个区块
package executor

import (
	"context"
	"sync"
	"time"

	"github.com/33cn/redvsblue/common"
	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/system/dapp"
	"github.com/33cn/redvsblue/types"
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

const defaultStateCacheSize = 10240

// Executor 单节点执行器, 所有状态修改都在 mu 下串行进行
type Executor struct {
	mu            sync.RWMutex
	db            dbm.DB
	cache         *lru.Cache
	sub           map[string][]byte
	height        int64
	blockInterval time.Duration
	now           func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup

	txTimer    metrics.Timer
	blockMeter metrics.Meter
	heightG    metrics.Gauge
}

// New executor over db, sub is the raw json of [exec.sub.*]
func New(cfg *types.Exec, sub map[string][]byte, db dbm.DB) (*Executor, error) {
	if cfg == nil {
		cfg = &types.Exec{}
	}
	size := cfg.StateCacheSize
	if size <= 0 {
		size = defaultStateCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "state cache")
	}
	exec := &Executor{
		db:            db,
		cache:         cache,
		sub:           sub,
		blockInterval: time.Duration(cfg.BlockInterval) * time.Second,
		now:           time.Now,
		txTimer:       metrics.GetOrRegisterTimer("execs.tx", nil),
		blockMeter:    metrics.GetOrRegisterMeter("execs.block", nil),
		heightG:       metrics.GetOrRegisterGauge("execs.height", nil),
	}
	exec.height, err = loadHeight(db)
	if err != nil {
		return nil, err
	}
	exec.heightG.Update(exec.height)
	elog.Info("executor start", "height", exec.height)
	return exec, nil
}

func loadHeight(db dbm.DB) (int64, error) {
	value, err := db.Get([]byte(types.HeightKey))
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "load height")
	}
	height, err := types.DecodeInt64(value)
	if err != nil {
		return 0, errors.Wrap(types.ErrDataBaseDamage, "decode height")
	}
	return height, nil
}

// Start 启动定时出空块, blockInterval 为 0 时不启动
func (exec *Executor) Start(ctx context.Context) {
	if exec.blockInterval <= 0 {
		return
	}
	ctx, exec.cancel = context.WithCancel(ctx)
	exec.wg.Add(1)
	go func() {
		defer exec.wg.Done()
		ticker := time.NewTicker(exec.blockInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := exec.Mine(); err != nil {
					elog.Error("timed mine", "err", err)
				}
			}
		}
	}()
}

// Close 停止出块
func (exec *Executor) Close() {
	if exec.cancel != nil {
		exec.cancel()
	}
	exec.wg.Wait()
}

// Height 最新区块高度
func (exec *Executor) Height() int64 {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	return exec.height
}

func (exec *Executor) loadDriver(execer string, height int64) (dapp.Driver, error) {
	driver, err := dapp.LoadDriver(execer, height)
	if err != nil {
		return nil, err
	}
	driver.SetSubConfig(exec.sub[execer])
	return driver, nil
}

// CheckTx 格式, 执行器和 payload 检查, 不通过的交易不会出块
func (exec *Executor) CheckTx(tx *types.Transaction) (dapp.Driver, error) {
	if err := tx.Check(); err != nil {
		return nil, err
	}
	driver, err := exec.loadDriver(tx.Execer, -1)
	if err != nil {
		return nil, err
	}
	if err := driver.Allow(tx, 0); err != nil {
		return nil, err
	}
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	return driver, nil
}

// ExecTx 执行一笔交易并打包一个区块. 执行失败的交易同样出块, receipt 为 ExecErr
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.TxDetail, error) {
	driver, err := exec.CheckTx(tx)
	if err != nil {
		return nil, err
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()

	start := time.Now()
	height := exec.height + 1
	blocktime := exec.now().Unix()
	statedb := NewStateDB(exec.db, exec.cache)
	localdb := NewLocalDB(exec.db)
	driver.SetStateDB(statedb)
	driver.SetLocalDB(localdb)
	driver.SetEnv(height, blocktime)

	action := driver.GetActionName(tx)
	receipt := exec.execTx(driver, statedb, localdb, tx)

	hash := common.ToHex(tx.Hash())
	detail := &types.TxDetail{
		Tx:        tx,
		Hash:      hash,
		Height:    height,
		Blocktime: blocktime,
		Receipt:   receipt,
	}
	batch := exec.db.NewBatch(true)
	statedb.writeBatch(batch)
	localdb.writeBatch(batch)
	batch.Set(types.CalcTxKey(hash), types.Encode(detail))
	batch.Set([]byte(types.HeightKey), types.EncodeInt64(height))
	if err := batch.Write(); err != nil {
		elog.Error("ExecTx write block", "height", height, "err", err)
		return nil, errors.Wrap(err, "write block")
	}
	statedb.flushCache()
	exec.height = height

	exec.txTimer.UpdateSince(start)
	exec.blockMeter.Mark(1)
	exec.heightG.Update(height)
	result := "ok"
	if receipt.Ty != types.ExecOk {
		result = "err"
	}
	metrics.GetOrRegisterMeter("execs."+tx.Execer+"."+action+"."+result, nil).Mark(1)
	elog.Debug("ExecTx", "height", height, "hash", hash, "action", action, "ty", receipt.Ty)
	return detail, nil
}

func (exec *Executor) execTx(driver dapp.Driver, statedb *StateDB, localdb *LocalDB, tx *types.Transaction) *types.ReceiptData {
	statedb.Begin()
	receipt, err := driver.Exec(tx, 0)
	if err != nil {
		statedb.Rollback()
		elog.Error("exec tx error", "err", err, "exec", tx.Execer, "action", driver.GetActionName(tx))
		return types.NewErrReceipt(err)
	}
	if err := statedb.Commit(); err != nil {
		statedb.Rollback()
		return types.NewErrReceipt(err)
	}
	rdata := &types.ReceiptData{Ty: types.ExecOk}
	if receipt != nil {
		rdata.Ty = receipt.Ty
		rdata.Logs = receipt.Logs
	}

	localdb.Begin()
	set, err := driver.ExecLocal(tx, rdata, 0)
	if err != nil {
		localdb.Rollback()
		elog.Error("exec local error", "err", err, "exec", tx.Execer)
		return rdata
	}
	for _, kv := range set.KV {
		localdb.Set(kv.Key, kv.Value)
	}
	localdb.Commit()
	return rdata
}

// Mine 出一个空块
func (exec *Executor) Mine() (int64, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	height := exec.height + 1
	if err := exec.db.SetSync([]byte(types.HeightKey), types.EncodeInt64(height)); err != nil {
		return exec.height, errors.Wrap(err, "mine")
	}
	exec.height = height
	exec.blockMeter.Mark(1)
	exec.heightG.Update(height)
	elog.Debug("Mine", "height", height)
	return height, nil
}

// Query 在已提交的状态上调用执行器的 Query_<funcName>
func (exec *Executor) Query(execer, funcName string, param []byte) (types.Message, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	driver, err := exec.loadDriver(execer, exec.height)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(exec.db, exec.cache))
	driver.SetLocalDB(NewLocalDB(exec.db))
	driver.SetEnv(exec.height, exec.now().Unix())
	return driver.Query(funcName, param)
}

// QueryTransaction 根据交易哈希查询交易和回执
func (exec *Executor) QueryTransaction(hash string) (*types.TxDetail, error) {
	data, err := common.FromHex(hash)
	if err != nil || len(data) == 0 {
		return nil, types.ErrInvalidParam
	}
	value, err := exec.db.Get(types.CalcTxKey(common.ToHex(data)))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrTxNotFound
	}
	if err != nil {
		return nil, err
	}
	var detail types.TxDetail
	if err := types.Decode(value, &detail); err != nil {
		return nil, errors.Wrap(types.ErrDataBaseDamage, "decode tx detail")
	}
	return &detail, nil
}

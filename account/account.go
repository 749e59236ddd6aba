// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现 credit 账本的资产操作
*/
package account

//package for credit account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Deposit
//6. Withdraw
//7. credit supply

import (
	"fmt"
	"math"
	"strings"

	dbm "github.com/33cn/redvsblue/common/db"
	"github.com/33cn/redvsblue/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for credit account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	supplyKey        []byte
	execer           string
}

// NewCreditAccount credit ledger of execer, keys live under mavl-<execer>-
func NewCreditAccount(execer string, db dbm.KV) (*DB, error) {
	//如果execer 中存在 "-", 那么创建失败
	if execer == "" || strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	acc := &DB{
		accountKeyPerfix: []byte(CreditPrefix(execer)),
		supplyKey:        []byte(SupplyKey(execer)),
		execer:           execer,
	}
	acc.SetDB(db)
	return acc, nil
}

// SetDB set db
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 读取账户, 不存在时余额为 0
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	balance, err := types.DecodeInt64(value)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &types.Account{Addr: addr, Balance: balance}
}

// SaveAccount save
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 将账户数据转为数据库存储kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: types.EncodeInt64(acc1.Balance),
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// LoadSupply credit 总量
func (acc *DB) LoadSupply() int64 {
	value, err := acc.db.Get(acc.supplyKey)
	if err != nil {
		return 0
	}
	supply, err := types.DecodeInt64(value)
	if err != nil {
		panic(err)
	}
	return supply
}

func (acc *DB) supplyKV(supply int64) *types.KeyValue {
	return &types.KeyValue{Key: acc.supplyKey, Value: types.EncodeInt64(supply)}
}

// CheckTransfer check
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if amount <= 0 {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrInvalidAddress
	}
	if acc.LoadAccount(from).Balance < amount {
		return types.ErrInsufficientCredits
	}
	return nil
}

// Transfer 账户间转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	toBalance, err := safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance = toBalance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			types.NewLog(types.TyLogCreditTransfer, receiptBalanceFrom),
			types.NewLog(types.TyLogCreditTransfer, receiptBalanceTo),
		},
	}, nil
}

// Deposit 增加余额和总量
func (acc *DB) Deposit(addr string, amount int64) (*types.Receipt, error) {
	if amount <= 0 {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	balance, err := safeAdd(acc1.Balance, amount)
	if err != nil {
		return nil, err
	}
	supply, err := safeAdd(acc.LoadSupply(), amount)
	if err != nil {
		return nil, err
	}
	copyacc := *acc1
	acc1.Balance = balance
	return acc.balanceReceipt(types.TyLogCreditDeposit, &copyacc, acc1, supply)
}

// Withdraw 减少余额和总量
func (acc *DB) Withdraw(addr string, amount int64) (*types.Receipt, error) {
	if amount <= 0 {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Balance < amount {
		return nil, types.ErrInsufficientCredits
	}
	supply := acc.LoadSupply() - amount
	if supply < 0 {
		alog.Error("Withdraw supply below zero", "addr", addr, "amount", amount, "supply", supply+amount)
		return nil, types.ErrDataBaseDamage
	}
	copyacc := *acc1
	acc1.Balance -= amount
	return acc.balanceReceipt(types.TyLogCreditWithdraw, &copyacc, acc1, supply)
}

func (acc *DB) balanceReceipt(ty int32, prev, current *types.Account, supply int64) (*types.Receipt, error) {
	acc.SaveAccount(current)
	kvSupply := acc.supplyKV(supply)
	if err := acc.db.Set(kvSupply.Key, kvSupply.Value); err != nil {
		return nil, err
	}
	kv := acc.GetKVSet(current)
	kv = append(kv, kvSupply)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{types.NewLog(ty, &types.ReceiptAccountTransfer{Prev: prev, Current: current})},
	}, nil
}

// CreditPrefix key prefix of credit balances
func CreditPrefix(execer string) string {
	return fmt.Sprintf("%s%s-credit-", types.StatePrefix, execer)
}

// SupplyKey key of the credit supply counter
func SupplyKey(execer string) string {
	return fmt.Sprintf("%s%s-supply", types.StatePrefix, execer)
}

func safeAdd(balance, amount int64) (int64, error) {
	if amount > 0 && balance > math.MaxInt64-amount {
		return balance, types.ErrOverflow
	}
	return balance + amount, nil
}

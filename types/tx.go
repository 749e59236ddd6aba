// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/redvsblue/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
)

// CreateTx build a transaction with a fresh nonce
func CreateTx(execer, from string, action proto.Message) *Transaction {
	return &Transaction{
		Execer:  execer,
		From:    from,
		Payload: Encode(action),
		Nonce:   uuid.New().String(),
	}
}

// Hash sha256 of the protobuf encoding
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}

// Size encoded size
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Amount native value paid with the transaction, zero when empty
func (tx *Transaction) Amount() (decimal.Decimal, error) {
	if tx.Value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(tx.Value)
	if err != nil {
		return decimal.Zero, ErrAmount
	}
	return amount, nil
}

// Check basic format checks
func (tx *Transaction) Check() error {
	if tx == nil {
		return ErrEmptyTx
	}
	if tx.Execer == "" {
		return ErrExecNameNotAllow
	}
	if tx.Size() > MaxTxSize {
		return ErrTxTooBig
	}
	if _, err := tx.Amount(); err != nil {
		return err
	}
	return nil
}

// CalcTxKey db key of the TxDetail of hash
func CalcTxKey(hash string) []byte {
	return []byte(TxReceiptPrefix + hash)
}

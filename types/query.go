// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "encoding/json"

// Query rpc query of an executor
type Query struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// ReqNil empty request
type ReqNil struct{}

// ReqAddr address request
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqHash hash request
type ReqHash struct {
	Hash string `json:"hash"`
}

// ReplyHeight current height
type ReplyHeight struct {
	Height int64 `json:"height"`
}

// ReplyString string reply
type ReplyString struct {
	Data string `json:"data"`
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//go:generate protoc -I=proto --go_out=. --go_opt=paths=source_relative transaction.proto

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	if b == nil {
		b = []byte{}
	}
	return b
}

// Decode  解码
func Decode(data []byte, msg proto.Message) error {
	if err := proto.Unmarshal(data, msg); err != nil {
		return ErrDecode
	}
	return nil
}

// Size 编码后的长度
func Size(data proto.Message) int {
	return proto.Size(data)
}

// EncodeInt64 state encoding of an integer value
func EncodeInt64(v int64) []byte {
	return Encode(wrapperspb.Int64(v))
}

// DecodeInt64 decode EncodeInt64, empty data is zero
func DecodeInt64(data []byte) (int64, error) {
	var v wrapperspb.Int64Value
	if err := Decode(data, &v); err != nil {
		return 0, err
	}
	return v.GetValue(), nil
}

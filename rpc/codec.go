// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName grpc 使用 json 编码, content-type 为 application/grpc+json
const CodecName = "json"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec grpc json codec
type JSONCodec struct{}

// Marshal json
func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal json
func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name codec name
func (JSONCodec) Name() string {
	return CodecName
}

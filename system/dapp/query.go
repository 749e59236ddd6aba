// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/redvsblue/types"
)

// Query 调用 Query_<funcname>, params 是参数的json
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcmap := d.child.GetFuncMap()
	funcname = "Query_" + funcname
	if _, ok := funcmap[funcname]; !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := funcmap[funcname].Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrQueryNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(paramin.Elem())
	queryin := p.Interface()
	if len(params) > 0 {
		if err := json.Unmarshal(params, queryin); err != nil {
			return nil, types.ErrDecode
		}
	}
	return CallQueryFunc(d.childValue, funcmap[funcname], queryin)
}

// GetPrefixCount 本地数据库中前缀的数量
func (d *DriverBase) GetPrefixCount(prefix []byte) int64 {
	return d.GetLocalDB().PrefixCount(prefix)
}

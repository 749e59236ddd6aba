// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/33cn/redvsblue/types"
)

var (
	typeOfError = reflect.TypeOf((*error)(nil)).Elem()
	funcPrefix  = []string{"Exec_", "ExecLocal_", "Query_"}
	// reflect.Type -> map[string]reflect.Method
	methodCache sync.Map
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

func isDispatchName(name string) bool {
	for _, prefix := range funcPrefix {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return true
		}
	}
	return false
}

// ListMethod 列出 Exec_/ExecLocal_/Query_ 开头的导出方法, 每种类型只反射一次
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	if v, ok := methodCache.Load(typ); ok {
		return v.(map[string]reflect.Method)
	}
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		if isDispatchName(mname) {
			methods[mname] = method
		}
	}
	v, _ := methodCache.LoadOrStore(typ, methods)
	return v.(map[string]reflect.Method)
}

// IsOK 返回值个数正确且最后一个是 error
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	return list[n-1].Type() == typeOfError
}

// CallQueryFunc 调用 Query_ 方法
func CallQueryFunc(this reflect.Value, f reflect.Method, in interface{}) (reply types.Message, err error) {
	valueret := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if !IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		reply = r1
	}
	//参数2
	r2 := valueret[1].Interface()
	if r2 != nil {
		e, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		return nil, e
	}
	if reply == nil {
		return nil, types.ErrNotFound
	}
	return reply, nil
}

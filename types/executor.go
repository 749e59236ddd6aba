// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Message query reply
type Message interface{}

// ExecutorAction action envelope, Ty selects the oneof value
type ExecutorAction interface {
	proto.Message
	GetTy() int32
}

// LogInfo log payload type and name
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// ExecutorType codec of an executor's payloads and logs
type ExecutorType interface {
	GetName() string
	GetPayload() ExecutorAction
	GetTypeMap() map[string]int32
	GetLogMap() map[int32]*LogInfo
	ActionName(tx *Transaction) string
	DecodePayload(tx *Transaction) (ExecutorAction, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	CreateTx(from, action string, param json.RawMessage) (*Transaction, error)
	DecodeLog(ty int32, data []byte) (proto.Message, error)
}

var (
	executorMap  = make(map[string]ExecutorType)
	executorLock sync.RWMutex
)

// RegistorExecutor register executor type
func RegistorExecutor(exec string, util ExecutorType) {
	executorLock.Lock()
	defer executorLock.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorMap[exec] = util
}

// LoadExecutorType load executor type, nil when not registered
func LoadExecutorType(exec string) ExecutorType {
	executorLock.RLock()
	defer executorLock.RUnlock()
	return executorMap[exec]
}

// ExecTypeBase payload codec, embedded by executor types.
// action 名 X 对应 payload oneof 中的字段 x, 由 GetX 取值
type ExecTypeBase struct {
	child    ExecutorType
	payload  protoreflect.MessageType
	actionTy map[int32]string
}

// SetChild must be called by the embedding type's constructor
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.payload = child.GetPayload().ProtoReflect().Type()
	base.actionTy = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionTy[ty] = name
	}
}

// DecodePayload decode the action envelope
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (ExecutorAction, error) {
	p := base.payload.New().Interface().(ExecutorAction)
	if err := Decode(tx.Payload, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodePayloadValue action name and the value of the selected field
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	name, ok := base.actionTy[action.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	get := reflect.ValueOf(action).MethodByName("Get" + name)
	if !get.IsValid() || get.Type().NumIn() != 0 || get.Type().NumOut() != 1 {
		return "", nilValue, ErrActionNotSupport
	}
	v := get.Call(nil)[0]
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return "", nilValue, ErrActionNotSupport
	}
	return name, v, nil
}

// ActionName name of the action, "unknown" if the payload does not decode
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

// CreateTx build a transaction from an action name and its json parameters
func (base *ExecTypeBase) CreateTx(from, action string, param json.RawMessage) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok || action == "" {
		return nil, ErrActionNotSupport
	}
	envelope := base.payload.New()
	fields := envelope.Descriptor().Fields()
	fd := fields.ByName(protoreflect.Name(strings.ToLower(action[:1]) + action[1:]))
	tyfd := fields.ByName("ty")
	if fd == nil || fd.Message() == nil || fd.ContainingOneof() == nil || tyfd == nil {
		return nil, ErrActionNotSupport
	}
	value := envelope.NewField(fd)
	if len(param) > 0 {
		if err := json.Unmarshal(param, value.Message().Interface()); err != nil {
			return nil, ErrDecode
		}
	}
	envelope.Set(fd, value)
	envelope.Set(tyfd, protoreflect.ValueOfInt32(ty))
	return CreateTx(base.child.GetName(), from, envelope.Interface()), nil
}

// DecodeLog decode a log payload into its registered type
func (base *ExecTypeBase) DecodeLog(ty int32, data []byte) (proto.Message, error) {
	info, ok := base.child.GetLogMap()[ty]
	if !ok {
		return nil, ErrActionNotSupport
	}
	v, ok := reflect.New(info.Ty).Interface().(proto.Message)
	if !ok {
		return nil, ErrActionNotSupport
	}
	if err := Decode(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

var nilValue = reflect.ValueOf(nil)

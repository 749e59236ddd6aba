// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config toml config loading
package config

import (
	"encoding/json"

	"github.com/33cn/redvsblue/types"
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Init decode config file
func Init(path string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitString decode config string
func InitString(cfgstring string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config string")
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitCfg config and sub config from file, panic on error
func InitCfg(path string) (*types.Config, *types.ConfigSubModule) {
	cfg, err := Init(path)
	if err != nil {
		panic(err)
	}
	var sub subModule
	if _, err := tml.DecodeFile(path, &sub); err != nil {
		panic(err)
	}
	return cfg, sub.parse()
}

// InitCfgString config and sub config from string, panic on error
func InitCfgString(cfgstring string) (*types.Config, *types.ConfigSubModule) {
	cfg, err := InitString(cfgstring)
	if err != nil {
		panic(err)
	}
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		panic(err)
	}
	return cfg, sub.parse()
}

type subModule struct {
	Store map[string]interface{} `toml:"store"`
	Exec  map[string]interface{} `toml:"exec"`
}

func (s *subModule) parse() *types.ConfigSubModule {
	var subcfg types.ConfigSubModule
	subcfg.Store = parseItem(s.Store)
	subcfg.Exec = parseItem(s.Exec)
	return &subcfg
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	subcfg, ok := data["sub"].(map[string]interface{})
	if !ok {
		return subconfig
	}
	for k := range subcfg {
		subconfig[k], _ = json.Marshal(subcfg[k])
	}
	return subconfig
}

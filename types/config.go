// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
)

// Config node config
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Exec    *Exec    `toml:"exec"`
	RPC     *RPC     `toml:"rpc"`
	Metrics *Metrics `toml:"metrics"`
}

// ConfigSubModule raw json of the [xxx.sub.name] sections
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store db config
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec executor config
type Exec struct {
	// seconds between empty blocks, 0 disables the miner
	BlockInterval int64 `toml:"blockInterval"`
	// lru size of the committed state cache
	StateCacheSize int `toml:"stateCacheSize"`
}

// RPC rpc config
type RPC struct {
	JrpcBindAddr   string   `toml:"jrpcBindAddr"`
	GrpcBindAddr   string   `toml:"grpcBindAddr"`
	RestBindAddr   string   `toml:"restBindAddr"`
	Whitelist      []string `toml:"whitelist"`
	MaxConnections int      `toml:"maxConnections"`
	// requests per second per remote ip, 0 disables the limiter
	RateLimit float64 `toml:"rateLimit"`
	RateBurst int64   `toml:"rateBurst"`
}

// Metrics metrics config
type Metrics struct {
	Enable    bool   `toml:"enable"`
	Duration  int64  `toml:"duration"`
	InfluxURL string `toml:"influxURL"`
	Database  string `toml:"database"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Namespace string `toml:"namespace"`
}

// Check rejects values the node can not start with and fills empty sections
func (c *Config) Check() error {
	if c.Store == nil || c.Store.Driver == "" {
		return errors.Wrap(ErrInvalidParam, "store driver")
	}
	if c.Exec == nil {
		c.Exec = &Exec{}
	}
	if c.Exec.BlockInterval < 0 {
		return errors.Wrapf(ErrInvalidParam, "exec.blockInterval %d", c.Exec.BlockInterval)
	}
	if c.RPC != nil && (c.RPC.RateLimit < 0 || c.RPC.RateBurst < 0) {
		return errors.Wrap(ErrInvalidParam, "rpc rate limit")
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	return nil
}

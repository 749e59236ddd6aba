// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// DefaultCfgString config used by tests and by a node started without -f
var DefaultCfgString = `
Title="redvsblue"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "info"
# 日志文件名，为空时只输出到控制台
logFile = ""
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
name = "redvsblue"
# memdb, leveldb, badgerdb
driver = "memdb"
dbPath = "datadir"
dbCache = 64

[exec]
# 空块间隔(秒), 0 表示只在有交易时出块
blockInterval = 0
stateCacheSize = 10240

[exec.sub.redvsblue]
windowSize = 128
creditsPerNative = 1000
feeBasisPoints = 0
owner = ""

[rpc]
jrpcBindAddr = "localhost:8801"
grpcBindAddr = "localhost:8802"
restBindAddr = "localhost:8803"
whitelist = ["127.0.0.1"]
maxConnections = 1024
rateLimit = 0
rateBurst = 0

[metrics]
enable = false
duration = 10
influxURL = ""
database = "redvsblue"
username = ""
password = ""
namespace = "redvsblue"
`

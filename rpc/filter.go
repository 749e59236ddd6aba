// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"net/http"
	"strings"

	"github.com/33cn/redvsblue/types"
	"github.com/kevinms/leakybucket-go"
)

// filter ip 白名单和每个 ip 的请求速率限制
type filter struct {
	whitelist map[string]bool
	limiter   *leakybucket.Collector
}

func newFilter(cfg *types.RPC) *filter {
	f := &filter{whitelist: make(map[string]bool)}
	initIPWhitelist(f.whitelist, cfg.Whitelist)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = int64(cfg.RateLimit)
		}
		if burst <= 0 {
			burst = 1
		}
		f.limiter = leakybucket.NewCollector(cfg.RateLimit, burst, true)
	}
	return f
}

// initIPWhitelist 为空时只允许本机, "*" 允许所有地址
func initIPWhitelist(whitelist map[string]bool, addrs []string) {
	if len(addrs) == 0 {
		whitelist["127.0.0.1"] = true
		return
	}
	if len(addrs) == 1 && addrs[0] == "*" {
		whitelist["0.0.0.0"] = true
		return
	}
	for _, addr := range addrs {
		whitelist[addr] = true
	}
}

func (f *filter) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if _, ok := f.whitelist["0.0.0.0"]; ok {
		return true
	}
	if _, ok := f.whitelist[addr]; ok {
		return true
	}
	return false
}

func (f *filter) checkRate(ip string) bool {
	if f.limiter == nil {
		return true
	}
	if f.limiter.Remaining(ip) <= 0 {
		return false
	}
	f.limiter.Add(ip, 1)
	return true
}

// allow 白名单检查和速率限制
func (f *filter) allow(ip string) error {
	if !f.checkIPWhitelist(ip) {
		log.Debug("rpc reject ip", "ip", ip)
		return types.ErrNotAllowed
	}
	if !f.checkRate(ip) {
		log.Debug("rpc rate limited", "ip", ip)
		return types.ErrRateLimited
	}
	return nil
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

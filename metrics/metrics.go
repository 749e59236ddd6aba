// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 按配置把 go-metrics 的统计写入 influxdb 或者定时打印到日志
package metrics

import (
	"context"
	"time"

	"github.com/33cn/redvsblue/metrics/influxdb"
	"github.com/33cn/redvsblue/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

const defaultDuration = 10 * time.Second

// StartMetrics 根据配置文件相关参数启动, ctx 结束时停止上报
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	d := time.Duration(cfg.Duration) * time.Second
	if d <= 0 {
		d = defaultDuration
	}
	if cfg.InfluxURL == "" {
		mlog.Info("StartMetrics with log", "duration", d)
		go logMetrics(ctx, gometrics.DefaultRegistry, d)
		return
	}
	mlog.Info("StartMetrics with influxdb", "duration", d, "url", cfg.InfluxURL,
		"database", cfg.Database, "username", cfg.Username, "namespace", cfg.Namespace)
	go func() {
		err := influxdb.InfluxDB(ctx, gometrics.DefaultRegistry, d, cfg.InfluxURL,
			cfg.Database, cfg.Username, cfg.Password, cfg.Namespace)
		if err != nil {
			mlog.Error("StartMetrics influxdb", "err", err)
		}
	}()
}

func logMetrics(ctx context.Context, r gometrics.Registry, d time.Duration) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logOnce(r, mlog)
		}
	}
}

// logOnce 每个指标打印一行
func logOnce(r gometrics.Registry, l log.Logger) {
	r.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case gometrics.Counter:
			l.Info("counter", "name", name, "count", metric.Count())
		case gometrics.Gauge:
			l.Info("gauge", "name", name, "value", metric.Value())
		case gometrics.GaugeFloat64:
			l.Info("gauge", "name", name, "value", metric.Value())
		case gometrics.Meter:
			ms := metric.Snapshot()
			l.Info("meter", "name", name, "count", ms.Count(), "m1", ms.Rate1(), "mean", ms.RateMean())
		case gometrics.Timer:
			ms := metric.Snapshot()
			l.Info("timer", "name", name, "count", ms.Count(), "mean", time.Duration(ms.Mean()),
				"p99", time.Duration(ms.Percentile(0.99)), "m1", ms.Rate1())
		case gometrics.Histogram:
			ms := metric.Snapshot()
			l.Info("histogram", "name", name, "count", ms.Count(), "mean", ms.Mean(), "max", ms.Max())
		}
	})
}

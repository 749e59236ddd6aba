// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influxdb 把 go-metrics 的数据定时写入 influxdb
package influxdb

import (
	"context"
	"fmt"
	uurl "net/url"
	"strings"
	"time"

	"github.com/influxdata/influxdb/client"
	log "github.com/inconshreveable/log15"
	"github.com/rcrowley/go-metrics"
)

var ilog = log.New("module", "metrics.influxdb")

var percentiles = []float64{0.5, 0.75, 0.95, 0.99, 0.999, 0.9999}

type reporter struct {
	reg      metrics.Registry
	interval time.Duration

	url       uurl.URL
	database  string
	username  string
	password  string
	namespace string
	tags      map[string]string

	client *client.Client
}

// InfluxDB starts a InfluxDB reporter which will post the metrics from the given registry at each d interval.
// 阻塞直到 ctx 结束
func InfluxDB(ctx context.Context, r metrics.Registry, d time.Duration, url, database, username, password, namespace string) error {
	return InfluxDBWithTags(ctx, r, d, url, database, username, password, namespace, nil)
}

// InfluxDBWithTags 同 InfluxDB, 每个点带上 tags
func InfluxDBWithTags(ctx context.Context, r metrics.Registry, d time.Duration, url, database, username, password, namespace string, tags map[string]string) error {
	rep, err := newReporter(r, d, url, database, username, password, namespace, tags)
	if err != nil {
		return err
	}
	rep.run(ctx)
	return nil
}

func newReporter(r metrics.Registry, d time.Duration, url, database, username, password, namespace string, tags map[string]string) (*reporter, error) {
	u, err := uurl.Parse(url)
	if err != nil {
		ilog.Warn("Unable to parse InfluxDB", "url", url, "err", err)
		return nil, err
	}
	if namespace != "" && !strings.HasSuffix(namespace, ".") {
		namespace += "."
	}
	rep := &reporter{
		reg:       r,
		interval:  d,
		url:       *u,
		database:  database,
		username:  username,
		password:  password,
		namespace: namespace,
		tags:      tags,
	}
	if err := rep.makeClient(); err != nil {
		ilog.Warn("Unable to make InfluxDB client", "err", err)
		return nil, err
	}
	return rep, nil
}

func (r *reporter) makeClient() (err error) {
	r.client, err = client.NewClient(client.Config{
		URL:      r.url,
		Username: r.username,
		Password: r.password,
		Timeout:  10 * time.Second,
	})
	return
}

func (r *reporter) run(ctx context.Context) {
	intervalTicker := time.NewTicker(r.interval)
	pingTicker := time.NewTicker(time.Second * 5)
	defer intervalTicker.Stop()
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-intervalTicker.C:
			if err := r.send(); err != nil {
				ilog.Warn("Unable to send to InfluxDB", "err", err)
			}
		case <-pingTicker.C:
			_, _, err := r.client.Ping()
			if err != nil {
				ilog.Warn("Got error while sending a ping to InfluxDB, trying to recreate client", "err", err)
				if err = r.makeClient(); err != nil {
					ilog.Warn("Unable to make InfluxDB client", "err", err)
				}
			}
		}
	}
}

func (r *reporter) points(now time.Time) []client.Point {
	var pts []client.Point
	r.reg.Each(func(name string, i interface{}) {
		measurement := r.namespace + name
		switch metric := i.(type) {
		case metrics.Counter:
			ms := metric.Snapshot()
			pts = append(pts, r.point(measurement+".count", now, map[string]interface{}{
				"value": ms.Count(),
			}))
		case metrics.Gauge:
			ms := metric.Snapshot()
			pts = append(pts, r.point(measurement+".gauge", now, map[string]interface{}{
				"value": ms.Value(),
			}))
		case metrics.GaugeFloat64:
			ms := metric.Snapshot()
			pts = append(pts, r.point(measurement+".gauge", now, map[string]interface{}{
				"value": ms.Value(),
			}))
		case metrics.Histogram:
			ms := metric.Snapshot()
			ps := ms.Percentiles(percentiles)
			pts = append(pts, r.point(measurement+".histogram", now, map[string]interface{}{
				"count":    ms.Count(),
				"max":      ms.Max(),
				"mean":     ms.Mean(),
				"min":      ms.Min(),
				"stddev":   ms.StdDev(),
				"variance": ms.Variance(),
				"p50":      ps[0],
				"p75":      ps[1],
				"p95":      ps[2],
				"p99":      ps[3],
				"p999":     ps[4],
				"p9999":    ps[5],
			}))
		case metrics.Meter:
			ms := metric.Snapshot()
			pts = append(pts, r.point(measurement+".meter", now, map[string]interface{}{
				"count": ms.Count(),
				"m1":    ms.Rate1(),
				"m5":    ms.Rate5(),
				"m15":   ms.Rate15(),
				"mean":  ms.RateMean(),
			}))
		case metrics.Timer:
			ms := metric.Snapshot()
			ps := ms.Percentiles(percentiles)
			pts = append(pts, r.point(measurement+".timer", now, map[string]interface{}{
				"count":    ms.Count(),
				"max":      ms.Max(),
				"mean":     ms.Mean(),
				"min":      ms.Min(),
				"stddev":   ms.StdDev(),
				"variance": ms.Variance(),
				"p50":      ps[0],
				"p75":      ps[1],
				"p95":      ps[2],
				"p99":      ps[3],
				"p999":     ps[4],
				"p9999":    ps[5],
				"m1":       ms.Rate1(),
				"m5":       ms.Rate5(),
				"m15":      ms.Rate15(),
				"meanrate": ms.RateMean(),
			}))
		default:
			ilog.Debug("unsupported metric", "name", name, "type", fmt.Sprintf("%T", i))
		}
	})
	return pts
}

func (r *reporter) point(measurement string, now time.Time, fields map[string]interface{}) client.Point {
	return client.Point{
		Measurement: measurement,
		Tags:        r.tags,
		Fields:      fields,
		Time:        now,
	}
}

func (r *reporter) send() error {
	pts := r.points(time.Now())
	if len(pts) == 0 {
		return nil
	}
	bps := client.BatchPoints{
		Points:   pts,
		Database: r.database,
	}
	_, err := r.client.Write(bps)
	return err
}

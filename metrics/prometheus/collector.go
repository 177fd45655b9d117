// Package prometheus exports hermes operation metrics through client_golang.
package prometheus

import (
	"time"

	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/distance"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Collector implements hermes.MetricsCollector with Prometheus counters and histograms.
type Collector struct {
	evaluations  *prom.CounterVec
	evalLatency  *prom.HistogramVec
	transfers    *prom.CounterVec
	transferSize *prom.CounterVec
	opLatency    *prom.HistogramVec
	batchItems   *prom.CounterVec
}

var _ hermes.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prom.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		evaluations: prom.NewCounterVec(prom.CounterOpts{
			Name: "hermes_evaluations_total",
			Help: "Total distance evaluations",
		}, []string{"metric", "status"}),
		evalLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "hermes_evaluation_duration_seconds",
			Help:    "Latency of distance evaluations",
			Buckets: prom.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"metric"}),
		transfers: prom.NewCounterVec(prom.CounterOpts{
			Name: "hermes_archive_operations_total",
			Help: "Total archive saves and loads",
		}, []string{"op", "status"}),
		transferSize: prom.NewCounterVec(prom.CounterOpts{
			Name: "hermes_archive_bytes_total",
			Help: "Bytes written to or read from the archive",
		}, []string{"op"}),
		opLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "hermes_operation_latency_seconds",
			Help:    "Latency of archive and batch operations",
			Buckets: prom.DefBuckets,
		}, []string{"op"}),
		batchItems: prom.NewCounterVec(prom.CounterOpts{
			Name: "hermes_batch_items_total",
			Help: "Items processed by batch operations",
		}, []string{"op", "status"}),
	}

	for _, m := range []prom.Collector{c.evaluations, c.evalLatency, c.transfers, c.transferSize, c.opLatency, c.batchItems} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordEvaluate implements hermes.MetricsCollector.
func (c *Collector) RecordEvaluate(m distance.Metric, d time.Duration, err error) {
	c.evaluations.WithLabelValues(m.String(), status(err)).Inc()
	c.evalLatency.WithLabelValues(m.String()).Observe(d.Seconds())
}

// RecordSave implements hermes.MetricsCollector.
func (c *Collector) RecordSave(bytes int, d time.Duration, err error) {
	c.recordTransfer("save", bytes, d, err)
}

// RecordLoad implements hermes.MetricsCollector.
func (c *Collector) RecordLoad(bytes int, d time.Duration, err error) {
	c.recordTransfer("load", bytes, d, err)
}

func (c *Collector) recordTransfer(op string, bytes int, d time.Duration, err error) {
	c.transfers.WithLabelValues(op, status(err)).Inc()
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	if err == nil {
		c.transferSize.WithLabelValues(op).Add(float64(bytes))
	}
}

// RecordBatch implements hermes.MetricsCollector.
func (c *Collector) RecordBatch(op string, count, failed int, d time.Duration) {
	c.opLatency.WithLabelValues("batch_" + op).Observe(d.Seconds())
	c.batchItems.WithLabelValues(op, "success").Add(float64(count - failed))
	if failed > 0 {
		c.batchItems.WithLabelValues(op, "error").Add(float64(failed))
	}
}

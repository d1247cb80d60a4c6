// Package promcollector exports training metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := promcollector.New(reg)
//	tr, _ := kohonen.New(src, cells, 10000, 0.8, 20, kohonen.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/hupe1980/kohonen"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "kohonen"

var _ kohonen.MetricsCollector = (*Collector)(nil)

// Collector implements kohonen.MetricsCollector with Prometheus metrics.
// It is safe to share between trainers.
type Collector struct {
	stepLatency prometheus.Histogram
	steps       prometheus.Counter
	bmuDistance prometheus.Gauge
	runLatency  prometheus.Histogram
	runs        *prometheus.CounterVec
	runSteps    prometheus.Counter
}

// New creates a Collector and registers its metrics with reg.
// A nil reg skips registration. New panics if a metric is already
// registered with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		stepLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "step_duration_seconds",
			Help:      "Latency of a single training step",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Total training steps completed",
		}),
		bmuDistance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "bmu_distance",
			Help:      "Distance between the last sample and its best-matching unit",
		}),
		runLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of Run calls",
			Buckets:   prometheus.DefBuckets,
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Total Run calls by outcome",
		}, []string{"status"}),
		runSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "run_steps_total",
			Help:      "Total steps performed inside Run calls",
		}),
	}

	if reg != nil {
		reg.MustRegister(c.stepLatency, c.steps, c.bmuDistance, c.runLatency, c.runs, c.runSteps)
	}

	return c
}

// RecordStep implements kohonen.MetricsCollector.
func (c *Collector) RecordStep(d time.Duration, bmuDistance float64) {
	c.stepLatency.Observe(d.Seconds())
	c.steps.Inc()
	c.bmuDistance.Set(bmuDistance)
}

// RecordRun implements kohonen.MetricsCollector.
func (c *Collector) RecordRun(steps int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.runLatency.Observe(d.Seconds())
	c.runs.WithLabelValues(status).Inc()
	c.runSteps.Add(float64(steps))
}

package kohonen

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting training metrics.
// Implement this interface to integrate with monitoring systems; package
// promcollector provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordStep is called after each completed training step.
	// bmuDistance is the vector-space distance between the sample and its
	// best-matching unit before the update.
	RecordStep(duration time.Duration, bmuDistance float64)

	// RecordRun is called when Run returns. steps is the number of steps
	// Run performed, err is nil if it drained every iteration.
	RecordRun(steps int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(time.Duration, float64)   {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunSteps       atomic.Int64
	RunTotalNanos  atomic.Int64

	lastBMUDistance atomic.Uint64 // float64 bits
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, bmuDistance float64) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	b.lastBMUDistance.Store(math.Float64bits(bmuDistance))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(steps int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunSteps.Add(int64(steps))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:       b.StepCount.Load(),
		StepAvgNanos:    avg(b.StepTotalNanos.Load(), b.StepCount.Load()),
		LastBMUDistance: math.Float64frombits(b.lastBMUDistance.Load()),
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunSteps:        b.RunSteps.Load(),
		RunAvgNanos:     avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount       int64
	StepAvgNanos    int64
	LastBMUDistance float64
	RunCount        int64
	RunErrors       int64
	RunSteps        int64
	RunAvgNanos     int64
}

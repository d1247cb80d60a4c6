package kohonen

import (
	"log/slog"
	"time"
)

// Sampling selects how a trainer picks the sample for each step.
type Sampling int

const (
	// SamplingRandom draws the sample index uniformly from [0, N) with the
	// trainer's private generator.
	SamplingRandom Sampling = iota
	// SamplingSequential uses sample t mod N at iteration t.
	SamplingSequential
)

func (s Sampling) String() string {
	switch s {
	case SamplingRandom:
		return "random"
	case SamplingSequential:
		return "sequential"
	default:
		return "unknown"
	}
}

type options struct {
	seed             int64
	seeded           bool
	sampling         Sampling
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		sampling:         SamplingRandom,
		workers:          1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		progressInterval: 5 * time.Second,
	}
}

// Option configures a Trainer.
type Option func(*options)

// WithSeed makes the trainer's random generator deterministic.
// Without it the generator is seeded from crypto/rand, so concurrently
// created trainers never share a sampling sequence.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSampling selects random (default) or sequential sampling.
func WithSampling(s Sampling) Option {
	return func(o *options) {
		o.sampling = s
	}
}

// WithWorkers sets how many goroutines share the best-matching-unit search
// and the weight update inside one step. Steps themselves always run one
// after another. The default of 1 keeps each step on the calling goroutine.
//
// Values below 1 make New fail with ErrInvalidParameters.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for training.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kohonen.NewJSONLogger(slog.LevelInfo)
//	tr, _ := kohonen.New(src, cells, 10000, 0.8, 20, kohonen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for training.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kohonen.BasicMetricsCollector{}
//	tr, _ := kohonen.New(src, cells, 10000, 0.8, 20, kohonen.WithMetricsCollector(metrics))
//	_ = tr.Run(ctx)
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithProgressInterval sets how often Run logs progress at info level.
// Zero or negative disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

package sweep

import (
	"runtime"

	"github.com/hupe1980/kohonen"
)

type options struct {
	maxIterate  int
	repeat      int
	parallelism int
	seed        int64
	trainerOpts []kohonen.Option
	logger      *kohonen.Logger
	onTrial     func(Config, Trial)
}

func defaultOptions() options {
	return options{
		maxIterate:  10000,
		repeat:      1,
		parallelism: runtime.GOMAXPROCS(0),
		logger:      kohonen.NoopLogger(),
	}
}

// Option configures Run.
type Option func(*options)

// WithMaxIterate sets the iteration count of every trainer (default 10000).
func WithMaxIterate(n int) Option {
	return func(o *options) {
		o.maxIterate = n
	}
}

// WithRepeat sets how many independently seeded trainers run per
// configuration (default 1).
func WithRepeat(n int) Option {
	return func(o *options) {
		o.repeat = n
	}
}

// WithParallelism bounds how many trainers run at once
// (default GOMAXPROCS).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithSeed sets the base seed from which every trial seed is derived
// (default 0). Equal base seeds give equal sweeps.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithTrainerOptions passes options to every trainer. A per-trial
// kohonen.WithSeed is always applied last.
func WithTrainerOptions(opts ...kohonen.Option) Option {
	return func(o *options) {
		o.trainerOpts = append(o.trainerOpts, opts...)
	}
}

// WithLogger logs one line per finished configuration at info level.
// Pass nil to disable logging.
func WithLogger(logger *kohonen.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = kohonen.NoopLogger()
		}
		o.logger = logger
	}
}

// WithOnTrial registers a callback invoked after every finished trial.
// It may be called from several goroutines at once.
func WithOnTrial(fn func(Config, Trial)) Option {
	return func(o *options) {
		o.onTrial = fn
	}
}

// Package sweep compares training parameters.
//
// Run trains one map per (configuration, repeat) from the same source set
// and initial lattice, times each training run and scores the result with
// evaluate.QuantizationError. Results report mean time and the mean,
// minimum, maximum and standard deviation of the score per configuration.
//
//	cfgs := sweep.Grid(sweep.Alpha0Range(0.1, 1.0), []float64{20})
//	results, err := sweep.Run(ctx, src, cells, cfgs, sweep.WithRepeat(20))
package sweep

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/evaluate"
	"github.com/hupe1980/kohonen/lattice"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/vector"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Config is one candidate pair of initial training parameters.
type Config struct {
	Alpha0 float64
	Sigma0 float64
}

func (c Config) String() string {
	return fmt.Sprintf("alpha0=%g sigma0=%g", c.Alpha0, c.Sigma0)
}

// Trial is one trained and scored map.
type Trial struct {
	Repeat   int
	Seed     int64
	Duration time.Duration
	Score    evaluate.Score
}

// Result aggregates the trials of one configuration.
type Result struct {
	Config Config
	Trials []Trial

	MeanDuration time.Duration
	MeanScore    float64
	MinScore     float64
	MaxScore     float64
	StdDevScore  float64
}

// Grid returns the cross product of alphas and sigmas, alpha-major.
func Grid(alphas, sigmas []float64) []Config {
	out := make([]Config, 0, len(alphas)*len(sigmas))
	for _, a := range alphas {
		for _, s := range sigmas {
			out = append(out, Config{Alpha0: a, Sigma0: s})
		}
	}
	return out
}

// Alpha0Range returns step, 2·step, ... up to and including maxAlpha0.
func Alpha0Range(step, maxAlpha0 float64) []float64 {
	if step <= 0 || maxAlpha0 < step {
		return nil
	}
	n := int(math.Floor(maxAlpha0/step + 1e-9))
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) * step
	}
	return out
}

// Sigma0Range returns start, start-step, ... while the value stays positive.
// A radius of zero is not a valid training parameter and is never included.
func Sigma0Range(start, step float64) []float64 {
	if step <= 0 || start <= 0 {
		return nil
	}
	var out []float64
	for i := 0; ; i++ {
		s := start - float64(i)*step
		if s <= 1e-9 {
			break
		}
		out = append(out, s)
	}
	return out
}

// splitmix64 derives well-mixed trial seeds from a base seed and an index.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func trialSeed(base int64, i int) int64 {
	return int64(splitmix64(uint64(base) + uint64(i))) //nolint:gosec
}

// Run trains and scores every configuration. Trainers run concurrently,
// at most WithParallelism at a time, each with its own seed. The first
// error cancels the remaining trials and is returned. Results are in the
// order of configs.
func Run[T vector.Number](ctx context.Context, source []vector.Vector[T], cells [][]vector.Vector[T], configs []Config, optFns ...Option) ([]Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.repeat < 1 {
		return nil, somerr.Parameters("repeat must be at least 1, got %d", opts.repeat)
	}
	if opts.parallelism < 1 {
		return nil, somerr.Parameters("parallelism must be at least 1, got %d", opts.parallelism)
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("configs: %w", somerr.ErrEmpty)
	}
	if err := lattice.Validate(cells); err != nil {
		return nil, err
	}

	trials := make([][]Trial, len(configs))
	for i := range trials {
		trials[i] = make([]Trial, opts.repeat)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism)

	for ci, cfg := range configs {
		for r := range opts.repeat {
			seed := trialSeed(opts.seed, ci*opts.repeat+r)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				trial, err := runTrial(gctx, source, cells, cfg, opts, r, seed)
				if err != nil {
					return fmt.Errorf("%v repeat %d: %w", cfg, r, err)
				}
				trials[ci][r] = trial
				if opts.onTrial != nil {
					opts.onTrial(cfg, trial)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(configs))
	for ci, cfg := range configs {
		results[ci] = aggregate(cfg, trials[ci])
		logResult(ctx, opts.logger, results[ci])
	}

	return results, nil
}

func runTrial[T vector.Number](ctx context.Context, source []vector.Vector[T], cells [][]vector.Vector[T], cfg Config, opts options, repeat int, seed int64) (Trial, error) {
	trOpts := append(append([]kohonen.Option(nil), opts.trainerOpts...), kohonen.WithSeed(seed))

	tr, err := kohonen.New(source, cells, opts.maxIterate, cfg.Alpha0, cfg.Sigma0, trOpts...)
	if err != nil {
		return Trial{}, err
	}

	start := time.Now()
	if err := tr.Run(ctx); err != nil {
		return Trial{}, err
	}
	elapsed := time.Since(start)

	score, err := evaluate.QuantizationError(source, tr.Lattice().Cells())
	if err != nil {
		return Trial{}, err
	}

	return Trial{Repeat: repeat, Seed: seed, Duration: elapsed, Score: score}, nil
}

func aggregate(cfg Config, trials []Trial) Result {
	scores := make([]float64, len(trials))
	durations := make([]float64, len(trials))
	for i, t := range trials {
		scores[i] = t.Score.Sum
		durations[i] = float64(t.Duration)
	}

	res := Result{
		Config:       cfg,
		Trials:       trials,
		MeanDuration: time.Duration(floats.Sum(durations) / float64(len(durations))),
		MeanScore:    floats.Sum(scores) / float64(len(scores)),
		MinScore:     floats.Min(scores),
		MaxScore:     floats.Max(scores),
	}
	if len(scores) > 1 {
		res.StdDevScore = stat.StdDev(scores, nil)
	}

	return res
}

func logResult(ctx context.Context, logger *kohonen.Logger, r Result) {
	logger.InfoContext(ctx, "sweep config completed",
		"alpha0", r.Config.Alpha0,
		"sigma0", r.Config.Sigma0,
		"repeat", len(r.Trials),
		"mean_duration", r.MeanDuration,
		"mean_score", r.MeanScore,
	)
}

// Best returns the result with the lowest mean score.
// It returns false for an empty slice.
func Best(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.MeanScore < best.MeanScore {
			best = r
		}
	}
	return best, true
}

package kohonen

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/kohonen/lattice"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/vector"
	"golang.org/x/time/rate"
)

// Trainer runs the self-organizing map learning algorithm over a lattice it
// owns exclusively. The source set is cloned at construction and never
// mutated.
//
// A Trainer is Active while Iteration() < MaxIterate() and Done afterwards.
// All methods are safe for concurrent use; steps are serialized, so step
// t+1 never starts before step t has finished updating the lattice.
type Trainer[T vector.Number] struct {
	mu sync.Mutex

	source  []vector.Vector[T]
	lattice *lattice.Lattice[T]

	maxIterate int
	alpha0     float64
	sigma0     float64
	t          int

	seed     int64
	rng      *rand.Rand
	sampling Sampling
	workers  int

	logger   *Logger
	metrics  MetricsCollector
	progress *rate.Sometimes // nil disables progress logs
}

// New validates its inputs and returns a trainer at iteration 0.
//
// It fails with ErrInvalidParameters when maxIterate is not positive,
// alpha0 or sigma0 is not a positive finite number, or WithWorkers was
// given a value below 1. It fails with ErrEmpty, ErrRaggedLattice or a
// *DimensionError when the source set or lattice cells are malformed.
// On error no trainer is returned.
func New[T vector.Number](source []vector.Vector[T], cells [][]vector.Vector[T], maxIterate int, alpha0, sigma0 float64, optFns ...Option) (*Trainer[T], error) {
	if maxIterate <= 0 {
		return nil, somerr.Parameters("maxIterate must be positive, got %d", maxIterate)
	}
	if !positiveFinite(alpha0) {
		return nil, somerr.Parameters("alpha0 must be positive and finite, got %v", alpha0)
	}
	if !positiveFinite(sigma0) {
		return nil, somerr.Parameters("sigma0 must be positive and finite, got %v", sigma0)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.workers < 1 {
		return nil, somerr.Parameters("workers must be at least 1, got %d", opts.workers)
	}

	if len(source) == 0 {
		return nil, fmt.Errorf("source: %w", somerr.ErrEmpty)
	}
	lat, err := lattice.New(cells)
	if err != nil {
		return nil, err
	}
	src := make([]vector.Vector[T], len(source))
	for i, v := range source {
		if err := somerr.Dimension(lat.Dim(), v.Dim()); err != nil {
			return nil, fmt.Errorf("source[%d]: %w", i, err)
		}
		src[i] = v.Clone()
	}

	seed := opts.seed
	if !opts.seeded {
		seed = entropySeed()
	}

	tr := &Trainer[T]{
		source:     src,
		lattice:    lat,
		maxIterate: maxIterate,
		alpha0:     alpha0,
		sigma0:     sigma0,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)), // nolint gosec
		sampling:   opts.sampling,
		workers:    opts.workers,
		logger: opts.logger.
			WithGrid(lat.Rows(), lat.Cols()).
			WithDimension(lat.Dim()).
			WithRun(maxIterate, alpha0, sigma0),
		metrics: opts.metricsCollector,
	}
	if opts.progressInterval > 0 {
		tr.progress = &rate.Sometimes{Interval: opts.progressInterval}
	}

	return tr, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// decay returns v0 * exp(-t / maxIterate).
func decay(v0 float64, t, maxIterate int) float64 {
	return v0 * math.Exp(-float64(t)/float64(maxIterate))
}

// Step performs one training iteration and reports whether it did.
// Once the trainer is Done, Step returns false without side effects.
func (tr *Trainer[T]) Step() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	// A step is never interrupted half way; cancellation is only observed
	// between steps by Run.
	return tr.stepLocked(context.Background())
}

func (tr *Trainer[T]) stepLocked(ctx context.Context) bool {
	if tr.t >= tr.maxIterate {
		return false
	}

	start := time.Now()

	idx := tr.nextIndex()
	sample := tr.source[idx]

	bmu, err := tr.bestMatch(ctx, sample)
	if err != nil {
		panic(fmt.Sprintf("kohonen: best match on validated lattice: %v", err))
	}

	alpha := decay(tr.alpha0, tr.t, tr.maxIterate)
	sigma := decay(tr.sigma0, tr.t, tr.maxIterate)
	twoSigmaSq := 2 * sigma * sigma

	err = tr.lattice.Update(ctx, tr.workers, func(pos lattice.Position, cell *vector.Vector[T]) {
		d := lattice.GridDistance(pos, bmu.Position)
		h := math.Exp(-(d * d) / twoSigmaSq)
		if err := cell.Lerp(sample, h*alpha); err != nil {
			panic(fmt.Sprintf("kohonen: update cell %v: %v", pos, err))
		}
	})
	if err != nil {
		panic(fmt.Sprintf("kohonen: update lattice: %v", err))
	}

	tr.t++

	tr.metrics.RecordStep(time.Since(start), bmu.Distance)
	if tr.logger.Enabled(ctx, slog.LevelDebug) {
		tr.logger.LogStep(ctx, tr.t, idx, bmu, alpha, sigma)
	}

	return true
}

func (tr *Trainer[T]) nextIndex() int {
	if tr.sampling == SamplingSequential {
		return tr.t % len(tr.source)
	}
	return tr.rng.Intn(len(tr.source))
}

func (tr *Trainer[T]) bestMatch(ctx context.Context, sample vector.Vector[T]) (lattice.Match, error) {
	if tr.workers > 1 {
		return tr.lattice.BestMatchParallel(ctx, sample, tr.workers)
	}
	return tr.lattice.BestMatch(sample)
}

// Run calls Step until the trainer is Done. It checks ctx between steps
// and returns ctx.Err() if the context ends first; the lattice then holds
// the result of the last completed step.
func (tr *Trainer[T]) Run(ctx context.Context) error {
	start := time.Now()
	steps := 0

	var err error
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		if !tr.Step() {
			break
		}
		steps++

		if tr.progress != nil {
			tr.progress.Do(func() {
				tr.logger.LogProgress(ctx, tr.Iteration(), tr.maxIterate)
			})
		}
	}

	elapsed := time.Since(start)
	tr.metrics.RecordRun(steps, elapsed, err)
	tr.logger.LogRun(ctx, steps, elapsed, err)

	return err
}

// Iteration returns the number of completed steps.
func (tr *Trainer[T]) Iteration() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.t
}

// MaxIterate returns the total number of steps the trainer performs.
func (tr *Trainer[T]) MaxIterate() int { return tr.maxIterate }

// Done reports whether every iteration has been performed.
func (tr *Trainer[T]) Done() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.t >= tr.maxIterate
}

// LearningRate returns alpha for the next step: alpha0 * exp(-t / maxIterate).
func (tr *Trainer[T]) LearningRate() float64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return decay(tr.alpha0, tr.t, tr.maxIterate)
}

// Radius returns sigma for the next step: sigma0 * exp(-t / maxIterate).
func (tr *Trainer[T]) Radius() float64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return decay(tr.sigma0, tr.t, tr.maxIterate)
}

// Seed returns the seed of the trainer's random generator.
func (tr *Trainer[T]) Seed() int64 { return tr.seed }

// Sampling returns the sampling mode.
func (tr *Trainer[T]) Sampling() Sampling { return tr.sampling }

// Lattice returns an independent snapshot of the current lattice.
// Mutating the snapshot never affects the trainer.
func (tr *Trainer[T]) Lattice() *lattice.Lattice[T] {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.lattice.Snapshot()
}

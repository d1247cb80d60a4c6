// Package kohonen trains self-organizing maps (SOM).
//
// A self-organizing map is a rectangular lattice of weight vectors that is
// pulled, one sample at a time, toward the distribution of a source set
// while neighboring cells stay similar to each other.
//
// # Quick Start
//
//	src := []vector.Vector[float64]{vector.Of(0.1, 0.9), vector.Of(0.8, 0.2) /* ... */}
//	cells := [][]vector.Vector[float64]{ /* rows × cols initial weights */ }
//
//	tr, err := kohonen.New(src, cells, 10000, 0.8, 20,
//	    kohonen.WithSeed(42),
//	    kohonen.WithWorkers(runtime.GOMAXPROCS(0)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tr.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	score, _ := evaluate.QuantizationError(src, tr.Lattice().Cells())
//
// # Algorithm
//
// Each Step picks a sample (uniformly at random, or t mod N with
// SamplingSequential), finds its best-matching unit (BMU) by a row-major
// scan where the first closest cell wins, and moves every cell toward the
// sample by
//
//	h     = exp(-d² / (2·sigma(t)²))   d: grid distance to the BMU
//	cell += h · alpha(t) · (sample − cell)
//
// with alpha(t) = alpha0·exp(-t/maxIterate) and sigma(t) = sigma0·exp(-t/maxIterate).
// For integer element types the increment is truncated toward zero.
//
// # Concurrency
//
// WithWorkers fans the BMU search and the weight update of a single step
// out over several goroutines. The parallel BMU search merges contiguous
// row-major chunks in order, so it selects the same cell as the sequential
// scan. Steps never overlap. Run observes context cancellation only between
// steps.
//
// # Errors
//
// Every error matches one of ErrValidation, ErrArithmetic or
// ErrInvalidParameters via errors.Is. Constructors validate everything
// before allocating and return nil on error.
package kohonen

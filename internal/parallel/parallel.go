// Package parallel fans index ranges out over a bounded set of goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NumChunks returns how many contiguous chunks Chunks splits n items into.
func NumChunks(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	if n < workers {
		return n
	}
	return workers
}

// Bounds returns the half-open range [lo, hi) of chunk i out of k over n items.
// Chunks are contiguous, ordered and cover [0, n) exactly.
func Bounds(i, k, n int) (lo, hi int) {
	return i * n / k, (i + 1) * n / k
}

// Chunks splits [0, n) into at most workers contiguous chunks and calls fn
// once per chunk. With a single chunk fn runs on the calling goroutine.
// The first error returned by fn cancels the remaining chunks and is returned.
func Chunks(ctx context.Context, n, workers int, fn func(ctx context.Context, chunk, lo, hi int) error) error {
	k := NumChunks(n, workers)
	if k == 0 {
		return nil
	}
	if k == 1 {
		return fn(ctx, 0, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(k)

	for chunk := range k {
		lo, hi := Bounds(chunk, k, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, chunk, lo, hi)
		})
	}

	return g.Wait()
}

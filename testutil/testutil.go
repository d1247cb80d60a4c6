package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kohonen/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
func (r *RNG) UniformVectors(num, dim int) []vector.Vector[float64] {
	return r.UniformRangeVectors(num, dim, 0, 1)
}

// UniformRangeVectors generates random vectors with values in range [minVal, maxVal).
func (r *RNG) UniformRangeVectors(num, dim int, minVal, maxVal float64) []vector.Vector[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([]vector.Vector[float64], num)
	buf := make([]float64, dim)
	for i := range num {
		for j := range buf {
			buf[j] = minVal + r.rand.Float64()*span
		}
		out[i] = vector.Of(buf...)
	}

	return out
}

// ColorVectors generates 3-dimensional integer vectors with components in
// [0, 256), one RGB color per vector.
func (r *RNG) ColorVectors(num int) []vector.Vector[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector[int], num)
	for i := range num {
		out[i] = vector.Of(r.rand.Intn(256), r.rand.Intn(256), r.rand.Intn(256))
	}

	return out
}

// ClusteredVectors generates vectors around clusters centroids drawn
// uniformly from [0, 1). Vector i belongs to cluster i mod clusters and
// deviates from its centroid by Gaussian noise scaled by spread.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) []vector.Vector[float64] {
	centroids := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector[float64], num)
	buf := make([]float64, dim)
	for i := range num {
		c := centroids[i%clusters].Values()
		for j := range buf {
			buf[j] = c[j] + r.rand.NormFloat64()*spread
		}
		out[i] = vector.Of(buf...)
	}

	return out
}

// SampleLattice returns rows × cols cells, each an independent copy of a
// source vector chosen uniformly at random.
func SampleLattice[T vector.Number](r *RNG, source []vector.Vector[T], rows, cols int) [][]vector.Vector[T] {
	cells := make([][]vector.Vector[T], rows)
	for i := range cells {
		cells[i] = make([]vector.Vector[T], cols)
		for j := range cells[i] {
			cells[i][j] = source[r.Intn(len(source))].Clone()
		}
	}
	return cells
}

// ConstantLattice returns rows × cols independent copies of v.
func ConstantLattice[T vector.Number](v vector.Vector[T], rows, cols int) [][]vector.Vector[T] {
	cells := make([][]vector.Vector[T], rows)
	for i := range cells {
		cells[i] = make([]vector.Vector[T], cols)
		for j := range cells[i] {
			cells[i][j] = v.Clone()
		}
	}
	return cells
}

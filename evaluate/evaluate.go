// Package evaluate scores trained self-organizing maps.
//
// Every function is read-only and validates its inputs completely before
// accumulating anything, so an error never comes with a partial result.
// The best-matching unit is found with lattice.BestMatch, the same
// first-closest-cell rule the trainer uses.
package evaluate

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kohonen/internal/conv"
	"github.com/hupe1980/kohonen/lattice"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/vector"
)

// Score is an accumulated distance.
type Score struct {
	// Sum is the total distance.
	Sum float64
	// Mean is Sum / Samples, or 0 when Samples is 0.
	Mean float64
	// Samples is the number of accumulated distances.
	Samples int
}

func newScore(sum float64, n int) Score {
	s := Score{Sum: sum, Samples: n}
	if n > 0 {
		s.Mean = sum / float64(n)
	}
	return s
}

// prepare validates the lattice and the source set against it.
func prepare[T vector.Number](source []vector.Vector[T], cells [][]vector.Vector[T]) (*lattice.Lattice[T], error) {
	l, err := lattice.New(cells)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("source: %w", somerr.ErrEmpty)
	}
	for i, v := range source {
		if err := somerr.Dimension(l.Dim(), v.Dim()); err != nil {
			return nil, fmt.Errorf("source[%d]: %w", i, err)
		}
	}
	return l, nil
}

// QuantizationError sums, over every source sample, the distance between
// the sample and its best-matching unit. Lower is better.
func QuantizationError[T vector.Number](source []vector.Vector[T], cells [][]vector.Vector[T]) (Score, error) {
	l, err := prepare(source, cells)
	if err != nil {
		return Score{}, err
	}

	var sum float64
	for _, s := range source {
		m, err := l.BestMatch(s)
		if err != nil {
			return Score{}, err
		}
		sum += m.Distance
	}

	return newScore(sum, len(source)), nil
}

// TopologicalError sums the distance between every pair of horizontally or
// vertically adjacent cells. Samples is the number of pairs. Lower values
// mean smoother transitions between neighbors.
//
// The source set takes no part in the sum but is validated against the
// lattice like in QuantizationError.
func TopologicalError[T vector.Number](source []vector.Vector[T], cells [][]vector.Vector[T]) (Score, error) {
	l, err := prepare(source, cells)
	if err != nil {
		return Score{}, err
	}

	var (
		sum   float64
		pairs int
	)
	for i := range l.Len() {
		p := l.Position(i)
		a, _ := l.At(p.Row, p.Col)
		for _, q := range l.ForwardNeighbors(p) {
			b, _ := l.At(q.Row, q.Col)
			d, err := a.Distance(b)
			if err != nil {
				return Score{}, err
			}
			sum += d
			pairs++
		}
	}

	return newScore(sum, pairs), nil
}

// UMatrix returns, for every cell, the mean distance to its up, down, left
// and right neighbors. A 1×1 lattice yields [[0]].
func UMatrix[T vector.Number](cells [][]vector.Vector[T]) ([][]float64, error) {
	l, err := lattice.New(cells)
	if err != nil {
		return nil, err
	}

	rows, cols := l.Rows(), l.Cols()
	sum := make([][]float64, rows)
	n := make([][]int, rows)
	for r := range rows {
		sum[r] = make([]float64, cols)
		n[r] = make([]int, cols)
	}

	for i := range l.Len() {
		p := l.Position(i)
		a, _ := l.At(p.Row, p.Col)
		for _, q := range l.ForwardNeighbors(p) {
			b, _ := l.At(q.Row, q.Col)
			d, err := a.Distance(b)
			if err != nil {
				return nil, err
			}
			sum[p.Row][p.Col] += d
			sum[q.Row][q.Col] += d
			n[p.Row][p.Col]++
			n[q.Row][q.Col]++
		}
	}

	for r := range rows {
		for c := range cols {
			if n[r][c] > 0 {
				sum[r][c] /= float64(n[r][c])
			}
		}
	}

	return sum, nil
}

// Hits records how often each cell is the best-matching unit of a source
// sample.
type Hits struct {
	rows, cols int
	counts     []int
	used       *roaring.Bitmap
}

// Utilization maps every source sample to its best-matching unit and
// counts the wins per cell.
func Utilization[T vector.Number](source []vector.Vector[T], cells [][]vector.Vector[T]) (*Hits, error) {
	l, err := prepare(source, cells)
	if err != nil {
		return nil, err
	}

	h := &Hits{
		rows:   l.Rows(),
		cols:   l.Cols(),
		counts: make([]int, l.Len()),
		used:   roaring.New(),
	}
	for _, s := range source {
		m, err := l.BestMatch(s)
		if err != nil {
			return nil, err
		}
		i, _ := l.Index(m.Position)
		key, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		h.counts[i]++
		h.used.Add(key)
	}

	return h, nil
}

// Count returns how many samples chose p as their best-matching unit.
func (h *Hits) Count(p lattice.Position) int {
	if p.Row < 0 || p.Row >= h.rows || p.Col < 0 || p.Col >= h.cols {
		return 0
	}
	return h.counts[p.Row*h.cols+p.Col]
}

// Counts returns the hit counts as a rows × cols grid.
func (h *Hits) Counts() [][]int {
	out := make([][]int, h.rows)
	for r := range h.rows {
		out[r] = append([]int(nil), h.counts[r*h.cols:(r+1)*h.cols]...)
	}
	return out
}

// Used returns a copy of the bitmap of row-major cell indices that won at
// least once.
func (h *Hits) Used() *roaring.Bitmap {
	return h.used.Clone()
}

// UsedUnits returns the number of cells that won at least once.
func (h *Hits) UsedUnits() int {
	return int(h.used.GetCardinality())
}

// Rate returns the fraction of cells that won at least once.
func (h *Hits) Rate() float64 {
	return float64(h.UsedUnits()) / float64(len(h.counts))
}

// DeadUnits returns, in row-major order, the cells that never won.
func (h *Hits) DeadUnits() []lattice.Position {
	dead := roaring.Flip(h.used, 0, uint64(len(h.counts)))

	out := make([]lattice.Position, 0, dead.GetCardinality())
	it := dead.Iterator()
	for it.HasNext() {
		i, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			continue
		}
		out = append(out, lattice.Position{Row: i / h.cols, Col: i % h.cols})
	}
	return out
}

// Package lattice provides the rectangular 2-D grid of weight vectors that a
// self-organizing map trains.
//
// Cells are stored flat in row-major order. Every cell shares the dimension
// of the first cell. A Lattice never hands out its own cell storage to
// callers: At, Cells and Snapshot return deep copies.
package lattice

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/kohonen/distance"
	"github.com/hupe1980/kohonen/internal/parallel"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/vector"
)

// Position is the grid coordinate of a cell.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// GridDistance returns the Euclidean distance between two grid positions.
func GridDistance(a, b Position) float64 {
	return distance.Grid(a.Row, a.Col, b.Row, b.Col)
}

// Lattice is a rows × cols grid of equally sized vectors.
type Lattice[T vector.Number] struct {
	rows  int
	cols  int
	dim   int
	cells []vector.Vector[T]
}

// Validate checks that cells form a non-empty rectangular grid of vectors of
// one dimension. It returns ErrEmpty, ErrRaggedLattice or a *DimensionError.
func Validate[T vector.Number](cells [][]vector.Vector[T]) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return fmt.Errorf("lattice: %w", somerr.ErrEmpty)
	}

	cols := len(cells[0])
	dim := cells[0][0].Dim()
	for r, row := range cells {
		if len(row) != cols {
			return fmt.Errorf("lattice: row %d has %d cells, want %d: %w", r, len(row), cols, somerr.ErrRaggedLattice)
		}
		for c, cell := range row {
			if err := somerr.Dimension(dim, cell.Dim()); err != nil {
				return fmt.Errorf("lattice: cell %v: %w", Position{r, c}, err)
			}
		}
	}

	return nil
}

// New validates cells and returns a lattice holding deep copies of them.
func New[T vector.Number](cells [][]vector.Vector[T]) (*Lattice[T], error) {
	if err := Validate(cells); err != nil {
		return nil, err
	}

	rows, cols := len(cells), len(cells[0])
	l := &Lattice[T]{
		rows:  rows,
		cols:  cols,
		dim:   cells[0][0].Dim(),
		cells: make([]vector.Vector[T], 0, rows*cols),
	}
	for _, row := range cells {
		for _, cell := range row {
			l.cells = append(l.cells, cell.Clone())
		}
	}

	return l, nil
}

// Rows returns the number of rows.
func (l *Lattice[T]) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Lattice[T]) Cols() int { return l.cols }

// Dim returns the dimension shared by every cell.
func (l *Lattice[T]) Dim() int { return l.dim }

// Len returns the number of cells.
func (l *Lattice[T]) Len() int { return len(l.cells) }

// Position converts a row-major cell index into a grid position.
func (l *Lattice[T]) Position(i int) Position {
	return Position{Row: i / l.cols, Col: i % l.cols}
}

// Index converts a grid position into a row-major cell index.
func (l *Lattice[T]) Index(p Position) (int, error) {
	if err := somerr.Index(p.Row, l.rows); err != nil {
		return 0, fmt.Errorf("row: %w", err)
	}
	if err := somerr.Index(p.Col, l.cols); err != nil {
		return 0, fmt.Errorf("col: %w", err)
	}
	return p.Row*l.cols + p.Col, nil
}

// At returns a copy of the cell at (row, col).
func (l *Lattice[T]) At(row, col int) (vector.Vector[T], error) {
	i, err := l.Index(Position{row, col})
	if err != nil {
		return vector.Vector[T]{}, err
	}
	return l.cells[i].Clone(), nil
}

// Set replaces the cell at (row, col) with a copy of v.
func (l *Lattice[T]) Set(row, col int, v vector.Vector[T]) error {
	i, err := l.Index(Position{row, col})
	if err != nil {
		return err
	}
	if err := somerr.Dimension(l.dim, v.Dim()); err != nil {
		return err
	}
	l.cells[i] = v.Clone()
	return nil
}

// Snapshot returns an independent deep copy of the lattice.
func (l *Lattice[T]) Snapshot() *Lattice[T] {
	cp := &Lattice[T]{
		rows:  l.rows,
		cols:  l.cols,
		dim:   l.dim,
		cells: make([]vector.Vector[T], len(l.cells)),
	}
	for i, cell := range l.cells {
		cp.cells[i] = cell.Clone()
	}
	return cp
}

// Cells returns a deep copy of the grid as rows of vectors.
func (l *Lattice[T]) Cells() [][]vector.Vector[T] {
	out := make([][]vector.Vector[T], l.rows)
	for r := range out {
		row := make([]vector.Vector[T], l.cols)
		for c := range row {
			row[c] = l.cells[r*l.cols+c].Clone()
		}
		out[r] = row
	}
	return out
}

// Equal reports whether both lattices have the same shape and cell values.
func (l *Lattice[T]) Equal(o *Lattice[T]) bool {
	if l.rows != o.rows || l.cols != o.cols || l.dim != o.dim {
		return false
	}
	for i := range l.cells {
		if !l.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Match is the result of a best-matching-unit search.
type Match struct {
	Position Position
	Distance float64
}

// BestMatch scans every cell in row-major order and returns the cell closest
// to sample. Ties go to the first cell encountered.
func (l *Lattice[T]) BestMatch(sample vector.Vector[T]) (Match, error) {
	if err := somerr.Dimension(l.dim, sample.Dim()); err != nil {
		return Match{}, err
	}
	i, d := l.scan(sample, 0, len(l.cells))
	return Match{Position: l.Position(i), Distance: d}, nil
}

// BestMatchParallel is BestMatch with the scan split into contiguous
// row-major chunks searched by up to workers goroutines. Each chunk keeps
// its own first-wins minimum and the chunk results are merged in chunk
// order, so the winner is always the same cell BestMatch returns.
func (l *Lattice[T]) BestMatchParallel(ctx context.Context, sample vector.Vector[T], workers int) (Match, error) {
	if err := somerr.Dimension(l.dim, sample.Dim()); err != nil {
		return Match{}, err
	}

	n := len(l.cells)
	k := parallel.NumChunks(n, workers)
	idx := make([]int, k)
	dist := make([]float64, k)

	err := parallel.Chunks(ctx, n, workers, func(_ context.Context, chunk, lo, hi int) error {
		idx[chunk], dist[chunk] = l.scan(sample, lo, hi)
		return nil
	})
	if err != nil {
		return Match{}, err
	}

	best := 0
	for chunk := 1; chunk < k; chunk++ {
		if dist[chunk] < dist[best] {
			best = chunk
		}
	}

	return Match{Position: l.Position(idx[best]), Distance: dist[best]}, nil
}

// scan returns the first index in [lo, hi) with the minimum distance to sample.
func (l *Lattice[T]) scan(sample vector.Vector[T], lo, hi int) (int, float64) {
	best, minDist := lo, math.MaxFloat64
	for i := lo; i < hi; i++ {
		// Dimensions were validated by the caller.
		d, _ := l.cells[i].Distance(sample)
		if d < minDist {
			best, minDist = i, d
		}
	}
	return best, minDist
}

// UpdateFunc mutates one cell in place. It must only touch the cell it is given.
type UpdateFunc[T vector.Number] func(pos Position, cell *vector.Vector[T])

// Update calls fn once for every cell, fanning the cells out over up to
// workers goroutines. It returns after every call has completed.
func (l *Lattice[T]) Update(ctx context.Context, workers int, fn UpdateFunc[T]) error {
	return parallel.Chunks(ctx, len(l.cells), workers, func(_ context.Context, _, lo, hi int) error {
		for i := lo; i < hi; i++ {
			fn(l.Position(i), &l.cells[i])
		}
		return nil
	})
}

// ForwardNeighbors returns the positions directly right of and below p that lie
// inside the grid.
func (l *Lattice[T]) ForwardNeighbors(p Position) []Position {
	out := make([]Position, 0, 2)
	if p.Col+1 < l.cols {
		out = append(out, Position{p.Row, p.Col + 1})
	}
	if p.Row+1 < l.rows {
		out = append(out, Position{p.Row + 1, p.Col})
	}
	return out
}

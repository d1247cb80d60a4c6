package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/kohonen/evaluate"
	"github.com/hupe1980/kohonen/somerr"
	"github.com/hupe1980/kohonen/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUMatrixGrid(t *testing.T) {
	g := umatrixGrid{{1, 2, 3}, {4, 5, 6}}

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	// Plot row 0 is the bottom lattice row.
	assert.Equal(t, 4.0, g.Z(0, 0))
	assert.Equal(t, 3.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 1.0, g.Y(1))
}

func TestUMatrixPlot(t *testing.T) {
	p, err := UMatrixPlot([][]float64{{0.1, 0.5}, {0.9, 0.3}})
	require.NoError(t, err)
	assert.Equal(t, "U-matrix", p.Title.Text)

	path := filepath.Join(t.TempDir(), "umatrix.png")
	require.NoError(t, SavePlot(p, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestUMatrixPlotInvalid(t *testing.T) {
	_, err := UMatrixPlot(nil)
	assert.ErrorIs(t, err, somerr.ErrEmpty)

	_, err = UMatrixPlot([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, somerr.ErrRaggedLattice)
}

func TestSweepPlot(t *testing.T) {
	results := []sweep.Result{
		{
			Config:       sweep.Config{Alpha0: 0.1, Sigma0: 20},
			MeanScore:    3,
			MeanDuration: time.Millisecond,
			Trials: []sweep.Trial{
				{Score: evaluate.Score{Sum: 2}},
				{Score: evaluate.Score{Sum: 4}},
			},
		},
		{
			Config:    sweep.Config{Alpha0: 0.2, Sigma0: 20},
			MeanScore: 1,
			Trials:    []sweep.Trial{{Score: evaluate.Score{Sum: 1}}},
		},
	}

	p, err := SweepPlot(results, Alpha0, "alpha0")
	require.NoError(t, err)
	assert.Equal(t, "alpha0", p.X.Label.Text)

	path := filepath.Join(t.TempDir(), "sweep.svg")
	require.NoError(t, SavePlot(p, path))

	_, err = SweepPlot(nil, Sigma0, "sigma0")
	assert.ErrorIs(t, err, somerr.ErrEmpty)
}

func TestAxisSelectors(t *testing.T) {
	c := sweep.Config{Alpha0: 0.3, Sigma0: 7}
	assert.Equal(t, 0.3, Alpha0(c))
	assert.Equal(t, 7.0, Sigma0(c))
}

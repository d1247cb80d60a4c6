package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestL2(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		assert.Equal(t, 5.0, L2([]float64{0, 0}, []float64{3, 4}))
		assert.Equal(t, 0.0, L2([]float64{7}, []float64{7}))
	})

	t.Run("Int", func(t *testing.T) {
		assert.Equal(t, 1.0, L2([]int{0}, []int{1}))
		assert.Equal(t, math.Sqrt(27), L2([]int{1, 2, 3}, []int{4, 5, 6}))
	})

	t.Run("Uint8NoWrap", func(t *testing.T) {
		// 0 - 255 in uint8 arithmetic would wrap to 1.
		assert.Equal(t, 255.0, L2([]uint8{0}, []uint8{255}))
	})

	t.Run("Float32", func(t *testing.T) {
		assert.InDelta(t, 5.0, L2([]float32{0, 0}, []float32{3, 4}), 1e-6)
	})
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name                   string
		row1, col1, row2, col2 int
		expected               float64
	}{
		{"Same", 1, 1, 1, 1, 0},
		{"Horizontal", 0, 0, 0, 3, 3},
		{"Vertical", 4, 2, 1, 2, 3},
		{"Diagonal", 0, 0, 1, 1, math.Sqrt2},
		{"Pythagorean", 0, 0, 3, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Grid(tt.row1, tt.col1, tt.row2, tt.col2), 1e-12)
			// Symmetric.
			assert.Equal(t, Grid(tt.row1, tt.col1, tt.row2, tt.col2), Grid(tt.row2, tt.col2, tt.row1, tt.col1))
		})
	}
}

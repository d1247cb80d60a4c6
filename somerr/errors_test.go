package somerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"DimensionMismatch", ErrDimensionMismatch, ErrValidation},
		{"RaggedLattice", ErrRaggedLattice, ErrValidation},
		{"Empty", ErrEmpty, ErrValidation},
		{"DivisionByZero", ErrDivisionByZero, ErrArithmetic},
		{"IndexOutOfRange", ErrIndexOutOfRange, ErrArithmetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.NotErrorIs(t, tt.err, ErrInvalidParameters)
		})
	}
}

func TestDimension(t *testing.T) {
	require.NoError(t, Dimension(3, 3))

	err := Dimension(3, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "dimension mismatch: expected 3, got 2", err.Error())

	// Still matchable after wrapping at an outer boundary.
	wrapped := fmt.Errorf("source[1]: %w", err)
	var de *DimensionError
	require.True(t, errors.As(wrapped, &de))
	assert.Equal(t, 3, de.Expected)
	assert.Equal(t, 2, de.Actual)
}

func TestIndex(t *testing.T) {
	require.NoError(t, Index(0, 1))

	for _, i := range []int{-1, 3, 4} {
		err := Index(i, 3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, err, ErrArithmetic)
	}

	var ie *IndexError
	require.True(t, errors.As(Index(5, 2), &ie))
	assert.Equal(t, 5, ie.Index)
	assert.Equal(t, 2, ie.Len)
}

func TestParameters(t *testing.T) {
	err := Parameters("maxIterate must be positive, got %d", 0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "got 0")
}

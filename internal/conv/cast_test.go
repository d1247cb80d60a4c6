//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/hupe1980/kohonen/somerr"
	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(1599)
		assert.NoError(t, err)
		assert.Equal(t, uint32(1599), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, somerr.ErrIndexOutOfRange)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, somerr.ErrIndexOutOfRange)
	})
}

func TestUint32ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint32ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Uint32ToInt(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxUint32, got)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, v := range []int{0, 1, 39, 1600} {
			u, err := IntToUint32(v)
			assert.NoError(t, err)
			back, err := Uint32ToInt(u)
			assert.NoError(t, err)
			assert.Equal(t, v, back)
		}
	})
}

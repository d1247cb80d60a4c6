package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/kohonen/somerr"
)

// IntToUint32 converts a cell index to a bitmap key.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", somerr.ErrIndexOutOfRange, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", somerr.ErrIndexOutOfRange, v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts a bitmap key back to a cell index.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", somerr.ErrIndexOutOfRange, v)
	}
	return int(v), nil
}

// Package conv provides checked conversions between lattice cell indices
// and the uint32 keys used by roaring bitmaps.
//
// A lattice is addressed by int row-major indices, while bitmap keys are
// uint32. Conversions fail with somerr.ErrIndexOutOfRange instead of
// silently wrapping.
package conv

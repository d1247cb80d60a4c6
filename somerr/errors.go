// Package somerr defines the error kinds shared by every kohonen package.
//
// Errors fall into three kinds. Match a kind or a specific error with
// errors.Is, and recover details from typed errors with errors.As:
//
//	if errors.Is(err, somerr.ErrValidation) { ... }
//
//	var de *somerr.DimensionError
//	if errors.As(err, &de) {
//	    fmt.Println(de.Expected, de.Actual)
//	}
package somerr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the kind of every input-shape error: dimension
	// mismatch, ragged lattice rows and empty inputs.
	ErrValidation = errors.New("validation error")

	// ErrArithmetic is the kind of vector arithmetic and indexing errors.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrInvalidParameters is returned for training parameters outside
	// their domain (non-positive maxIterate, alpha0, sigma0 or workers).
	ErrInvalidParameters = errors.New("invalid parameters")
)

var (
	// ErrDimensionMismatch indicates operands or cells of different dimension.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrValidation)

	// ErrRaggedLattice indicates lattice rows of different length.
	ErrRaggedLattice = fmt.Errorf("%w: ragged lattice", ErrValidation)

	// ErrEmpty indicates an empty source set or lattice.
	ErrEmpty = fmt.Errorf("%w: empty input", ErrValidation)

	// ErrDivisionByZero indicates a zero divisor component or scalar.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

	// ErrIndexOutOfRange indicates an index outside [0, dimension).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrArithmetic)
)

// DimensionError indicates a vector dimensionality mismatch.
//
// It matches ErrDimensionMismatch and ErrValidation via errors.Is.
type DimensionError struct {
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError indicates an out-of-range component or cell index.
//
// It matches ErrIndexOutOfRange and ErrArithmetic via errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Dimension returns a *DimensionError when expected and actual differ,
// nil otherwise.
func Dimension(expected, actual int) error {
	if expected == actual {
		return nil
	}
	return &DimensionError{Expected: expected, Actual: actual}
}

// Index returns an *IndexError when i is outside [0, n), nil otherwise.
func Index(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

// Parameters wraps ErrInvalidParameters with a description of the offending value.
func Parameters(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}

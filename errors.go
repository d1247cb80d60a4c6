package kohonen

import "github.com/hupe1980/kohonen/somerr"

// Error kinds. Match with errors.Is.
var (
	// ErrValidation is the kind of dimension mismatch, ragged lattice and
	// empty input errors.
	ErrValidation = somerr.ErrValidation

	// ErrArithmetic is the kind of division by zero and index errors.
	ErrArithmetic = somerr.ErrArithmetic

	// ErrInvalidParameters is returned for maxIterate, alpha0, sigma0 or
	// worker counts outside their domain.
	ErrInvalidParameters = somerr.ErrInvalidParameters
)

// Named errors. Each one also matches its kind.
var (
	ErrDimensionMismatch = somerr.ErrDimensionMismatch
	ErrRaggedLattice     = somerr.ErrRaggedLattice
	ErrEmpty             = somerr.ErrEmpty
	ErrDivisionByZero    = somerr.ErrDivisionByZero
	ErrIndexOutOfRange   = somerr.ErrIndexOutOfRange
)

// DimensionError indicates a vector dimensionality mismatch.
//
// Details can be recovered with errors.As.
type DimensionError = somerr.DimensionError

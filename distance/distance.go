package distance

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a vector may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// Components are widened to float64 before subtraction, so unsigned element
// types never wrap around.
func SquaredL2[T Number](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors: the square root
// of the sum of squared per-component differences.
// Assumes vectors are the same length (caller's responsibility).
func L2[T Number](a, b []T) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Grid calculates the Euclidean distance between two lattice coordinates.
// It goes through L2 so that vector-space and grid distances share one routine.
func Grid(row1, col1, row2, col2 int) float64 {
	return L2([]int{row1, col1}, []int{row2, col2})
}

// Package vector provides a fixed-dimension numeric vector used both as a
// training sample and as a lattice weight.
//
// A Vector owns a single contiguous buffer. Its dimension is fixed at
// construction. Binary operations between vectors require equal dimension
// and fail with a *somerr.DimensionError otherwise.
//
// Plain assignment copies the slice header, so two Vector values produced by
// assignment share storage. Use Clone whenever an independent value is
// needed; every container in kohonen stores clones.
package vector

import (
	"fmt"
	"strings"

	"github.com/hupe1980/kohonen/distance"
	"github.com/hupe1980/kohonen/somerr"
)

// Number is the set of element types a Vector may hold.
type Number = distance.Number

// Vector is a fixed-length numeric vector.
type Vector[T Number] struct {
	data []T
}

// New returns a zero vector of the given dimension.
// It panics if dim is negative.
func New[T Number](dim int) Vector[T] {
	return Vector[T]{data: make([]T, dim)}
}

// Of returns a vector holding a copy of values.
func Of[T Number](values ...T) Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return Vector[T]{data: data}
}

// Dim returns the dimension.
func (v Vector[T]) Dim() int { return len(v.data) }

// At returns the i-th component.
func (v Vector[T]) At(i int) (T, error) {
	if err := somerr.Index(i, len(v.data)); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set writes the i-th component.
func (v *Vector[T]) Set(i int, val T) error {
	if err := somerr.Index(i, len(v.data)); err != nil {
		return err
	}
	v.data[i] = val
	return nil
}

// Values returns a copy of the components.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns an independent copy (unary plus).
func (v Vector[T]) Clone() Vector[T] {
	return Of(v.data...)
}

// Neg returns the elementwise negation (unary minus).
func (v Vector[T]) Neg() Vector[T] {
	out := New[T](len(v.data))
	for i, x := range v.data {
		out.data[i] = -x
	}
	return out
}

// Equal reports whether v and o have the same dimension and components.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between v and o.
func (v Vector[T]) Distance(o Vector[T]) (float64, error) {
	if err := somerr.Dimension(len(v.data), len(o.data)); err != nil {
		return 0, err
	}
	return distance.L2(v.data, o.data), nil
}

func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Add returns v + o elementwise.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	out := v.Clone()
	if err := out.AddInPlace(o); err != nil {
		return Vector[T]{}, err
	}
	return out, nil
}

// Sub returns v - o elementwise.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	out := v.Clone()
	if err := out.SubInPlace(o); err != nil {
		return Vector[T]{}, err
	}
	return out, nil
}

// Mul returns v * o elementwise.
func (v Vector[T]) Mul(o Vector[T]) (Vector[T], error) {
	out := v.Clone()
	if err := out.MulInPlace(o); err != nil {
		return Vector[T]{}, err
	}
	return out, nil
}

// Div returns v / o elementwise. It fails with ErrDivisionByZero if any
// component of o is zero.
func (v Vector[T]) Div(o Vector[T]) (Vector[T], error) {
	out := v.Clone()
	if err := out.DivInPlace(o); err != nil {
		return Vector[T]{}, err
	}
	return out, nil
}

// AddScalar returns v with s added to every component.
func (v Vector[T]) AddScalar(s T) Vector[T] {
	out := v.Clone()
	out.AddScalarInPlace(s)
	return out
}

// SubScalar returns v with s subtracted from every component.
func (v Vector[T]) SubScalar(s T) Vector[T] {
	out := v.Clone()
	out.SubScalarInPlace(s)
	return out
}

// MulScalar returns v with every component multiplied by s.
func (v Vector[T]) MulScalar(s T) Vector[T] {
	out := v.Clone()
	out.MulScalarInPlace(s)
	return out
}

// DivScalar returns v with every component divided by s.
func (v Vector[T]) DivScalar(s T) (Vector[T], error) {
	out := v.Clone()
	if err := out.DivScalarInPlace(s); err != nil {
		return Vector[T]{}, err
	}
	return out, nil
}

// AddInPlace adds o to v elementwise.
func (v *Vector[T]) AddInPlace(o Vector[T]) error {
	if err := somerr.Dimension(len(v.data), len(o.data)); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] += o.data[i]
	}
	return nil
}

// SubInPlace subtracts o from v elementwise.
func (v *Vector[T]) SubInPlace(o Vector[T]) error {
	if err := somerr.Dimension(len(v.data), len(o.data)); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] -= o.data[i]
	}
	return nil
}

// MulInPlace multiplies v by o elementwise.
func (v *Vector[T]) MulInPlace(o Vector[T]) error {
	if err := somerr.Dimension(len(v.data), len(o.data)); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] *= o.data[i]
	}
	return nil
}

// DivInPlace divides v by o elementwise. Divisors are checked before any
// component is written, so v is unchanged on error.
func (v *Vector[T]) DivInPlace(o Vector[T]) error {
	if err := somerr.Dimension(len(v.data), len(o.data)); err != nil {
		return err
	}
	for i, d := range o.data {
		if d == 0 {
			return fmt.Errorf("component %d: %w", i, somerr.ErrDivisionByZero)
		}
	}
	for i := range v.data {
		v.data[i] /= o.data[i]
	}
	return nil
}

// AddScalarInPlace adds s to every component.
func (v *Vector[T]) AddScalarInPlace(s T) {
	for i := range v.data {
		v.data[i] += s
	}
}

// SubScalarInPlace subtracts s from every component.
func (v *Vector[T]) SubScalarInPlace(s T) {
	for i := range v.data {
		v.data[i] -= s
	}
}

// MulScalarInPlace multiplies every component by s.
func (v *Vector[T]) MulScalarInPlace(s T) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// DivScalarInPlace divides every component by s.
func (v *Vector[T]) DivScalarInPlace(s T) error {
	if s == 0 {
		return somerr.ErrDivisionByZero
	}
	for i := range v.data {
		v.data[i] /= s
	}
	return nil
}

// Lerp moves every component of v toward target by rate:
// v[i] += T(rate * (target[i] - v[i])).
// The increment is computed in float64 and converted to T, so integer
// element types truncate the fractional part toward zero.
func (v *Vector[T]) Lerp(target Vector[T], rate float64) error {
	if err := somerr.Dimension(len(v.data), len(target.data)); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] += T(rate * (float64(target.data[i]) - float64(v.data[i])))
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package vector - arithmetic and geometric operations.
//
// Purpose:
//   - Provide value-returning operations (Dot, Cross, Scale, Add, Negate, Sub).
//   - Validate every operand before allocating the result; inputs are never mutated.
//
// Notes:
//   - Errors are wrapped once with an operation tag, e.g. "Dot: vector: dimension mismatch".

package vector

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opDot   = "Dot"
	opCross = "Cross"
	opAdd   = "Add"
	opSub   = "Sub"
	opAngle = "Angle"
)

// crossDim is the only dimension for which the cross product is defined.
const crossDim = 3

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateBinary checks both operands are non-nil and of equal length.
// Returns plain sentinels; callers wrap.
func validateBinary(a, b *Vector) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.comps) != len(b.comps) {
		return ErrDimensionMismatch
	}

	return nil
}

// dot is the unchecked kernel shared by Dot, Magnitude and Angle.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Dot returns the dot product a·b (sum of elementwise products).
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b *Vector) (float64, error) {
	if err := validateBinary(a, b); err != nil {
		return 0, opErrorf(opDot, err)
	}

	return dot(a.comps, b.comps), nil
}

// Cross returns the cross product a×b of two 3-dimensional vectors.
// MAIN DESCRIPTION:
//   - Determinant expansion:
//     (a1·b2 − a2·b1, a2·b0 − a0·b2, a0·b1 − a1·b0).
//
// Behavior highlights:
//   - Anti-symmetric: Cross(a, b) == Negate(Cross(b, a)).
//
// Errors:
//   - ErrNilVector; ErrDimensionMismatch unless both operands have length 3.
//
// Complexity:
//   - Time O(1), Space O(1).
func Cross(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opCross, ErrNilVector)
	}
	if len(a.comps) != crossDim || len(b.comps) != crossDim {
		return nil, opErrorf(opCross, ErrDimensionMismatch)
	}
	x, y := a.comps, b.comps

	return Of(
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	), nil
}

// Scale returns k·v. It always succeeds; Scale(v, k) is the same value as
// scaling from the left, so there is only one entry point.
// v must be non-nil (a nil operand is a programmer error and panics).
// Complexity: O(n).
func Scale(v *Vector, k float64) *Vector {
	out := make([]float64, len(v.comps))
	for i, x := range v.comps {
		out[i] = x * k
	}

	return &Vector{comps: out}
}

// Negate returns −v. Always succeeds. Complexity: O(n).
func Negate(v *Vector) *Vector {
	return Scale(v, -1)
}

// Add returns the elementwise sum a + b.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(n).
func Add(a, b *Vector) (*Vector, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	out := make([]float64, len(a.comps))
	for i := range out {
		out[i] = a.comps[i] + b.comps[i]
	}

	return &Vector{comps: out}, nil
}

// Sub returns a − b, defined as Add(a, Negate(b)).
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func Sub(a, b *Vector) (*Vector, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	out, err := Add(a, Negate(b))
	if err != nil {
		return nil, opErrorf(opSub, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package vector - storage, safe accessors and rendering.
//
// Purpose:
//   - Own a private []float64 so that no two vectors ever alias each other.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Render a stable "( a, b, c )" form used by snapshot tests and by matrix.String.

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxNew = "New"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "( "
	_fmtClose = " )"
	_fmtSep   = ", "

	// _fmtPrecision is the number of significant digits used by String.
	_fmtPrecision = 6
)

// vectorErrorf wraps err with the method tag and the offending index.
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}

// Vector is a fixed-length tuple of float64 values (zero-origin).
// The zero value is a legal empty vector.
type Vector struct {
	comps []float64 // exclusively owned; len never changes after construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New creates a zero-filled vector of length n.
// MAIN DESCRIPTION:
//   - Public constructor with explicit size; validates before allocating.
//
// Inputs:
//   - n: number of components (n >= 0).
//
// Returns:
//   - *Vector of length n, all components 0.
//
// Errors:
//   - ErrInvalidLength when n < 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(n int) (*Vector, error) {
	if n < 0 {
		return nil, vectorErrorf(ctxNew, n, ErrInvalidLength)
	}

	return &Vector{comps: make([]float64, n)}, nil
}

// Of builds a vector from a literal list of components.
// The arguments are copied, so the caller may reuse its slice.
func Of(values ...float64) *Vector {
	return FromSlice(values)
}

// FromSlice builds a vector holding a copy of values.
// Complexity: O(len(values)).
func FromSlice(values []float64) *Vector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return &Vector{comps: cp}
}

// Len returns the dimension of the vector. Complexity: O(1).
func (v *Vector) Len() int { return len(v.comps) }

// indexOf bounds-checks i against [0, Len()).
func (v *Vector) indexOf(i int) error {
	if i < 0 || i >= len(v.comps) {
		return ErrOutOfRange
	}

	return nil
}

// At returns the component at index i.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if err := v.indexOf(i); err != nil {
		return 0, vectorErrorf(ctxAt, i, err)
	}

	return v.comps[i], nil
}

// Set stores x at index i.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= Len(); the vector is left unchanged.
//
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if err := v.indexOf(i); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.comps[i] = x

	return nil
}

// Values returns a copy of the components.
func (v *Vector) Values() []float64 {
	cp := make([]float64, len(v.comps))
	copy(cp, v.comps)

	return cp
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return FromSlice(v.comps)
}

// Magnitude returns the Euclidean norm sqrt(v·v). It never fails and is
// always >= 0; the empty vector has magnitude 0.
// Complexity: O(n).
func (v *Vector) Magnitude() float64 {
	return math.Sqrt(dot(v.comps, v.comps))
}

// Angle returns the angle between v and other, in radians, within [0, π].
// MAIN DESCRIPTION:
//   - acos( v·other / (|v|·|other|) ).
//
// Implementation:
//   - Stage 1: validate operand and equal lengths.
//   - Stage 2: reject zero magnitudes (the quotient would be undefined).
//   - Stage 3: clamp the cosine into [-1, 1] so rounding on (anti)parallel
//     vectors cannot push acos out of its domain.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrZeroMagnitude.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector) Angle(other *Vector) (float64, error) {
	if err := validateBinary(v, other); err != nil {
		return 0, opErrorf(opAngle, err)
	}
	mags := v.Magnitude() * other.Magnitude()
	if mags == 0 {
		return 0, opErrorf(opAngle, ErrZeroMagnitude)
	}
	cos := dot(v.comps, other.comps) / mags
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}

// Equal reports whether v and other have the same length and identical
// components. A nil vector is only equal to another nil vector.
func (v *Vector) Equal(other *Vector) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.comps) != len(other.comps) {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != other.comps[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether v and other have the same length and every
// pair of components differs by at most eps.
func (v *Vector) ApproxEqual(other *Vector, eps float64) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.comps) != len(other.comps) {
		return false
	}
	for i := range v.comps {
		if math.Abs(v.comps[i]-other.comps[i]) > eps {
			return false
		}
	}

	return true
}

// String renders the vector as "( v0, v1, ..., vn-1 )".
// Components use %g style with 6 significant digits, so 1.0 prints as "1"
// and 1e6 as "1e+06". NaN and infinities print as "nan", "inf", "-inf".
// Complexity: O(n).
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.comps {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatComponent(x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// formatComponent formats a single value for String. Non-finite values
// print as "nan", "inf" and "-inf".
func formatComponent(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	return strconv.FormatFloat(x, 'g', _fmtPrecision, 64)
}

// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag via %w); callers match them with errors.Is. Functions taking two
// vectors report a nil operand as ErrNilVector. Single-operand functions
// (Scale, Negate) and methods require a non-nil vector and panic otherwise,
// like any method call on a nil pointer.

package vector

import "errors"

var (
	// ErrInvalidLength is returned when a requested vector length is negative.
	ErrInvalidLength = errors.New("vector: invalid length")

	// ErrDimensionMismatch indicates operands of different lengths, or a
	// Cross call on operands that are not 3-dimensional.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates that an element index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrZeroMagnitude is the domain error reported by Angle when either
	// operand has zero magnitude and the angle is undefined.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

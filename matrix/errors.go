// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (wrapped with an
// operation tag via %w) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Conditions that
// can be detected either here or inside package vector (dimension mismatch,
// index out of range, nil vector) reuse the vector sentinels, so a single
// errors.Is check matches regardless of which layer caught the problem.
// Matrix-level index errors add the "matrix: row 3 of 2" context on top.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> squareness -> range -> index -> dimension mismatch.

var (
	// ErrInvalidShape is returned when requested dimensions are non-positive or
	// when nested input rows are empty or of unequal length.
	// Constructors validate before allocating.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrNotSquare signals that a square matrix was required but the source
	// has Rows != Cols.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidRange indicates an inclusive sub-range [start, end] with
	// start > end, start < 0 or end >= bound.
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrNegativeExponent is returned by Power for exponents below zero
	// (inverses are not supported).
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNilMatrix indicates that a nil *Matrix or *Square was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Shared with package vector.
var (
	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g. Add
	// on different shapes, Mul with a.Cols != b.Rows, or SetRow with a vector
	// whose length differs from Cols.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrOutOfRange indicates that a row or column index is outside its bound.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrNilVector indicates that a nil *vector.Vector was passed in.
	ErrNilVector = vector.ErrNilVector
)

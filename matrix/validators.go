// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and operations minimal by delegating nil/shape/index/range checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing (except ValidateRows, which only reads).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → SameShape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSize ensures both dimensions are strictly positive.
// Complexity: O(1).
func ValidateSize(s Size) error {
	if !s.Validate() {
		return validatorErrorf("ValidateSize", fmt.Errorf("%s: %w", s, ErrInvalidShape))
	}

	return nil
}

// ValidateRows ensures a nested literal is non-empty and rectangular with
// positive row length.
//
// Returns the inferred Size on success.
// Errors: ErrInvalidShape.
// Complexity: O(rows).
func ValidateRows(data [][]float64) (Size, error) {
	if len(data) == 0 {
		return Size{}, validatorErrorf("ValidateRows", ErrInvalidShape)
	}
	cols := len(data[0])
	for i := range data {
		if len(data[i]) != cols {
			return Size{}, validatorErrorf("ValidateRows", fmt.Errorf("row %d has %d elements, want %d: %w", i, len(data[i]), cols, ErrInvalidShape))
		}
	}
	s := Size{Rows: len(data), Cols: cols}
	if err := ValidateSize(s); err != nil {
		return Size{}, validatorErrorf("ValidateRows", err)
	}

	return s, nil
}

// ValidateVectors ensures a slice of vectors is non-empty, nil-free and of
// uniform positive dimension.
//
// Errors: ErrNilVector, ErrInvalidShape.
// Complexity: O(rows).
func ValidateVectors(rows []*vector.Vector) (Size, error) {
	if len(rows) == 0 {
		return Size{}, validatorErrorf("ValidateVectors", ErrInvalidShape)
	}
	for i, r := range rows {
		if r == nil {
			return Size{}, validatorErrorf("ValidateVectors", fmt.Errorf("row %d: %w", i, ErrNilVector))
		}
	}
	cols := rows[0].Len()
	for i, r := range rows {
		if r.Len() != cols {
			return Size{}, validatorErrorf("ValidateVectors", fmt.Errorf("row %d has dimension %d, want %d: %w", i, r.Len(), cols, ErrInvalidShape))
		}
	}
	s := Size{Rows: len(rows), Cols: cols}
	if err := ValidateSize(s); err != nil {
		return Size{}, validatorErrorf("ValidateVectors", err)
	}

	return s, nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.size.Rows != b.size.Rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.size.Cols != b.size.Cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNotSquare if not square.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.size.IsSquare() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%s: %w", m.size, ErrNotSquare))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.size.Cols != b.size.Rows {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%s × %s: %w", a.size, b.size, ErrDimensionMismatch))
	}

	return nil
}

// validateIndex checks 0 <= idx < bound. The error names the axis
// ("row" or "column") and wraps ErrOutOfRange; callers add the method tag.
func validateIndex(axis string, idx, bound int) error {
	if idx < 0 || idx >= bound {
		return fmt.Errorf("matrix: %s %d of %d: %w", axis, idx, bound, ErrOutOfRange)
	}

	return nil
}

// validateRange checks the inclusive range 0 <= start <= end < bound.
func validateRange(start, end, bound int) error {
	if start < 0 || start > end || end >= bound {
		return ErrInvalidRange
	}

	return nil
}

// validateSpan checks that n elements fit in [start, bound), i.e.
// n <= bound-start. A negative start is an index error; any other
// overflow, including start >= bound with n > 0, is a dimension mismatch.
func validateSpan(start, n, bound int) error {
	if start < 0 {
		return fmt.Errorf("matrix: offset %d: %w", start, ErrOutOfRange)
	}
	if n > bound-start {
		return fmt.Errorf("matrix: %d element(s) from offset %d exceed bound %d: %w", n, start, bound, ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Square: a Matrix validated to have Rows == Cols.
//
// Purpose:
//   - Check squareness once, at every construction path (ErrNotSquare).
//   - Expose every Matrix method through embedding; none of them changes shape,
//     so the invariant can never be broken after construction.
//   - Add square-only operations: TransposeInPlace, Identity, Power, and
//     square-returning MulSquare/AddSquare/ScaleSquare.
//
// Design:
//   - Composition, not inheritance: Square embeds *Matrix under the unexported
//     name dense, so the matrix methods are promoted but a Square cannot be
//     assembled outside this package. Matrix() exposes the underlying matrix.
//   - Square-returning operations unwrap to *Matrix, call the general kernel,
//     and re-validate via wrapSquare. MulSquare calls Mul, never itself.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// Operation and constructor tags.
const (
	opMulSquare   = "MulSquare"
	opAddSquare   = "AddSquare"
	opScaleSquare = "ScaleSquare"
	opPower       = "Power"
	ctxSquare     = "Square"
	ctxIdentity   = "Identity"
)

// dense names the embedded matrix of a Square.
type dense = Matrix

// Square is an n×n Matrix. The zero value holds no matrix and is rejected
// by every operation that takes a *Square.
type Square struct {
	*dense
}

// Matrix returns the underlying matrix. It shares storage with s; no Matrix
// method changes the shape, so s stays square.
func (s *Square) Matrix() *Matrix { return s.dense }

// wrapSquare validates m and wraps it without copying. m must be owned by
// the caller (freshly built) since the Square takes it over.
func wrapSquare(m *Matrix) (*Square, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return &Square{dense: m}, nil
}

// validateSquareOperand rejects nil *Square values and zero Squares, and
// re-checks the order.
func validateSquareOperand(s *Square) error {
	if s == nil {
		return ErrNilMatrix
	}

	return ValidateSquare(s.dense)
}

// NewSquare creates an n×n zero matrix.
// Errors: ErrInvalidShape when n <= 0.
func NewSquare(n int) (*Square, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}

	return &Square{dense: m}, nil
}

// SquareFromRows builds a square matrix from a nested literal.
//
// Errors:
//   - ErrInvalidShape (empty or ragged input) before ErrNotSquare.
//
// Complexity: O(n²).
func SquareFromRows(data [][]float64) (*Square, error) {
	m, err := FromRows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}
	s, err := wrapSquare(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}

	return s, nil
}

// SquareFromVectors builds a square matrix whose rows are copies of rows.
//
// Errors:
//   - ErrNilVector, ErrInvalidShape, ErrNotSquare.
func SquareFromVectors(rows []*vector.Vector) (*Square, error) {
	m, err := FromVectors(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}
	s, err := wrapSquare(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}

	return s, nil
}

// AsSquare returns a square deep copy of m.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (e.g. a 2×3 source).
//
// Complexity: O(n²).
func AsSquare(m *Matrix) (*Square, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSquare, err)
	}

	return &Square{dense: m.Clone()}, nil
}

// Identity returns the n×n identity matrix (1 on the diagonal, 0 elsewhere).
// Errors: ErrInvalidShape when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Square, error) {
	s, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		_ = s.rows[i].Set(i, 1)
	}

	return s, nil
}

// N returns the order of the square matrix. Complexity: O(1).
func (s *Square) N() int { return s.size.Rows }

// Clone returns a deep copy that is still a *Square.
func (s *Square) Clone() *Square {
	return &Square{dense: s.dense.Clone()}
}

// Transpose returns sᵀ as a new Square (copy-and-swap). s is unchanged.
func (s *Square) Transpose() *Square {
	return &Square{dense: s.dense.Transpose()}
}

// TransposeInPlace transposes s by swapping s[i][j] and s[j][i] for every
// j < i, and returns s for chaining.
// MAIN DESCRIPTION:
//   - True in-place triangular swap; no allocation.
//
// Behavior highlights:
//   - Produces the same matrix as Transpose; row pointers obtained from Row
//     stay attached to their row index.
//
// A zero Square is returned unchanged.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (s *Square) TransposeInPlace() *Square {
	if s == nil || s.dense == nil {
		return s
	}
	n := s.size.Rows
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			a, _ := s.rows[i].At(j)
			b, _ := s.rows[j].At(i)
			_ = s.rows[i].Set(j, b)
			_ = s.rows[j].Set(i, a)
		}
	}

	return s
}

// Scale returns k·s as a new Square. Always succeeds.
func (s *Square) Scale(k float64) *Square {
	return &Square{dense: s.dense.Scale(k)}
}

// MulSquare multiplies two square matrices of the same order.
// MAIN DESCRIPTION:
//   - Unwrap both operands to *Matrix, call Mul, re-validate the product.
//
// Implementation:
//   - Stage 1: reject nil operands and differing orders (ErrDimensionMismatch).
//   - Stage 2: Mul(a.dense, b.dense) - the general kernel, never MulSquare.
//   - Stage 3: wrapSquare on the freshly allocated product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func MulSquare(a, b *Square) (*Square, error) {
	if err := validateSquareOperand(a); err != nil {
		return nil, matrixErrorf(opMulSquare, err)
	}
	if err := validateSquareOperand(b); err != nil {
		return nil, matrixErrorf(opMulSquare, err)
	}
	if a.N() != b.N() {
		return nil, matrixErrorf(opMulSquare, fmt.Errorf("%s × %s: %w", a.size, b.size, ErrDimensionMismatch))
	}
	prod, err := Mul(a.dense, b.dense)
	if err != nil {
		return nil, matrixErrorf(opMulSquare, err)
	}
	s, err := wrapSquare(prod)
	if err != nil {
		return nil, matrixErrorf(opMulSquare, err)
	}

	return s, nil
}

// AddSquare returns a + b as a Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddSquare(a, b *Square) (*Square, error) {
	if err := validateSquareOperand(a); err != nil {
		return nil, matrixErrorf(opAddSquare, err)
	}
	if err := validateSquareOperand(b); err != nil {
		return nil, matrixErrorf(opAddSquare, err)
	}
	sum, err := Add(a.dense, b.dense)
	if err != nil {
		return nil, matrixErrorf(opAddSquare, err)
	}
	s, err := wrapSquare(sum)
	if err != nil {
		return nil, matrixErrorf(opAddSquare, err)
	}

	return s, nil
}

// ScaleSquare returns k·s as a Square.
// Errors: ErrNilMatrix.
func ScaleSquare(s *Square, k float64) (*Square, error) {
	if err := validateSquareOperand(s); err != nil {
		return nil, matrixErrorf(opScaleSquare, err)
	}

	return s.Scale(k), nil
}

// Power raises a square matrix to a non-negative integer exponent.
// MAIN DESCRIPTION:
//   - exp == 0: identity of the same order.
//   - exp >= 1: repeated multiplication, result = m; then exp-1 times result = result·m.
//
// Behavior highlights:
//   - m is never mutated; the result is always a fresh Square.
//   - M^(a+b) == M^a · M^b for non-negative a, b.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeExponent (no inverses).
//
// Complexity:
//   - Time O(exp·n³), Space O(n²).
func Power(m *Square, exp int) (*Square, error) {
	if err := validateSquareOperand(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if exp < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("exponent %d: %w", exp, ErrNegativeExponent))
	}
	if exp == 0 {
		id, err := Identity(m.N())
		if err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		return id, nil
	}
	result := m.Clone()
	for k := 1; k < exp; k++ {
		next, err := MulSquare(result, m)
		if err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		result = next
	}

	return result, nil
}

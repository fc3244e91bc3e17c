// SPDX-License-Identifier: MIT
// Package matrix provides value-returning arithmetic on *Matrix: element-wise
// addition and subtraction, matrix multiplication, transpose, rotation and
// scalar scaling. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - Operands are never mutated; every result is freshly allocated.
//   - All kernels use the central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opRotate    = "Rotate"
	opScale     = "Scale"
	opNegate    = "Negate"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: row by row, vector.Add(a[i], sign·b[i]).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows := make([]*vector.Vector, a.size.Rows)
	for i := range rows {
		r, err := vector.Add(a.rows[i], vector.Scale(b.rows[i], sign))
		if err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
		rows[i] = r
	}

	return &Matrix{rows: rows, size: a.size}, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - C[i][j] = Dot(A.row(i), B.column(j)).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: materialize B's columns once, then fill C with dot products
//     in fixed i→j order.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	cols := make([]*vector.Vector, b.size.Cols)
	for j := range cols {
		cols[j] = b.column(j, 0, b.size.Rows-1)
	}
	res := newZero(Size{Rows: a.size.Rows, Cols: b.size.Cols})
	for i := 0; i < a.size.Rows; i++ {
		for j := 0; j < b.size.Cols; j++ {
			d, err := vector.Dot(a.rows[i], cols[j])
			if err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			_ = res.rows[i].Set(j, d)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// result[j][i] = m[i][j]; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Transpose returns mᵀ as a new Cols×Rows matrix. Always succeeds.
func (m *Matrix) Transpose() *Matrix {
	rows := make([]*vector.Vector, m.size.Cols)
	for j := range rows {
		rows[j] = m.column(j, 0, m.size.Rows-1)
	}

	return &Matrix{rows: rows, size: Size{Rows: m.size.Cols, Cols: m.size.Rows}}
}

// Rotate returns m rotated 90 degrees clockwise: result[j][rows-1-i] = m[i][j].
// The result has shape Cols×Rows. Four rotations give back m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Rotate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRotate, err)
	}
	res := newZero(Size{Rows: m.size.Cols, Cols: m.size.Rows})
	last := m.size.Rows - 1
	for i, r := range m.rows {
		for j, x := range r.Values() {
			_ = res.rows[j].Set(last-i, x)
		}
	}

	return res, nil
}

// Scale returns k·m. Scaling is commutative, so this single entry point
// covers both k·M and M·k.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Matrix, k float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Scale(k), nil
}

// Scale returns k·m as a new matrix. Always succeeds.
func (m *Matrix) Scale(k float64) *Matrix {
	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = vector.Scale(r, k)
	}

	return &Matrix{rows: rows, size: m.size}
}

// Negate returns −m.
// Errors: ErrNilMatrix.
func Negate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return m.Scale(-1), nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not.
func Equal(a, b *Matrix) bool {
	return compare(a, b, func(x, y *vector.Vector) bool { return x.Equal(y) })
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements differs by at most eps. Intended for floating-point identities such
// as (A·B)·C == A·(B·C).
func ApproxEqual(a, b *Matrix, eps float64) bool {
	if math.IsNaN(eps) || eps < 0 {
		return false
	}

	return compare(a, b, func(x, y *vector.Vector) bool { return x.ApproxEqual(y, eps) })
}

// compare applies rowEq to every row pair after a shape check.
func compare(a, b *Matrix, rowEq func(x, y *vector.Vector) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	for i := range a.rows {
		if !rowEq(a.rows[i], b.rows[i]) {
			return false
		}
	}

	return true
}

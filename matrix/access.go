// SPDX-License-Identifier: MIT
// Package matrix - row, column and sub-matrix access.
//
// Purpose:
//   - Extract copies of rows, columns, inclusive sub-rows/sub-columns and rectangular regions.
//   - Write vectors and matrices back into rows, columns and regions.
//   - Swap rows or columns in place.
//
// Contract:
//   - Ranges are inclusive: [start, end]. Invalid ranges report ErrInvalidRange;
//     the fixed row/column index reports ErrOutOfRange.
//   - Every setter validates completely before its first write.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxGetRow       = "GetRow"
	ctxGetColumn    = "GetColumn"
	ctxGetSubRow    = "GetSubRow"
	ctxGetSubColumn = "GetSubColumn"
	ctxGetSubMatrix = "GetSubMatrix"
	ctxSetRow       = "SetRow"
	ctxSetColumn    = "SetColumn"
	ctxSetSubRow    = "SetSubRow"
	ctxSetSubColumn = "SetSubColumn"
	ctxSetSubMatrix = "SetSubMatrix"
	ctxSwapRows     = "SwapRows"
	ctxSwapColumns  = "SwapColumns"
)

const (
	axisRow    = "row"
	axisColumn = "column"
)

// accessErrorf wraps err with "Matrix.<method>(args...)".
func accessErrorf(method string, err error, args ...int) error {
	return fmt.Errorf("Matrix.%s%v: %w", method, args, err)
}

// GetRow returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(cols).
func (m *Matrix) GetRow(i int) (*vector.Vector, error) {
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return nil, accessErrorf(ctxGetRow, err, i)
	}

	return m.rows[i].Clone(), nil
}

// GetColumn returns a copy of column j.
// Errors: ErrOutOfRange. Complexity: O(rows).
func (m *Matrix) GetColumn(j int) (*vector.Vector, error) {
	if err := validateIndex(axisColumn, j, m.size.Cols); err != nil {
		return nil, accessErrorf(ctxGetColumn, err, j)
	}

	return m.column(j, 0, m.size.Rows-1), nil
}

// column copies column j over the inclusive row range [r0, r1]. Unchecked.
func (m *Matrix) column(j, r0, r1 int) *vector.Vector {
	out := make([]float64, r1-r0+1)
	for i := r0; i <= r1; i++ {
		out[i-r0], _ = m.rows[i].At(j)
	}

	return vector.FromSlice(out)
}

// GetSubRow returns row i restricted to the inclusive column range [c0, c1].
// MAIN DESCRIPTION:
//   - Copy of m[i][c0..c1].
//
// Implementation:
//   - Stage 1: validate the range against Cols (ErrInvalidRange).
//   - Stage 2: validate the row index (ErrOutOfRange).
//   - Stage 3: copy the span.
//
// Complexity:
//   - Time O(c1-c0+1), Space O(c1-c0+1).
func (m *Matrix) GetSubRow(i, c0, c1 int) (*vector.Vector, error) {
	if err := validateRange(c0, c1, m.size.Cols); err != nil {
		return nil, accessErrorf(ctxGetSubRow, err, i, c0, c1)
	}
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return nil, accessErrorf(ctxGetSubRow, err, i, c0, c1)
	}

	return vector.FromSlice(m.rows[i].Values()[c0 : c1+1]), nil
}

// GetSubColumn returns column j restricted to the inclusive row range [r0, r1].
// Errors: ErrInvalidRange (checked first), ErrOutOfRange.
// Complexity: O(r1-r0+1).
func (m *Matrix) GetSubColumn(j, r0, r1 int) (*vector.Vector, error) {
	if err := validateRange(r0, r1, m.size.Rows); err != nil {
		return nil, accessErrorf(ctxGetSubColumn, err, j, r0, r1)
	}
	if err := validateIndex(axisColumn, j, m.size.Cols); err != nil {
		return nil, accessErrorf(ctxGetSubColumn, err, j, r0, r1)
	}

	return m.column(j, r0, r1), nil
}

// GetSubMatrix extracts the inclusive rectangle [r0, r1] × [c0, c1] as a new
// matrix, built row by row from GetSubRow.
//
// Errors:
//   - ErrInvalidRange for either range.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Matrix) GetSubMatrix(r0, r1, c0, c1 int) (*Matrix, error) {
	if err := validateRange(r0, r1, m.size.Rows); err != nil {
		return nil, accessErrorf(ctxGetSubMatrix, err, r0, r1, c0, c1)
	}
	if err := validateRange(c0, c1, m.size.Cols); err != nil {
		return nil, accessErrorf(ctxGetSubMatrix, err, r0, r1, c0, c1)
	}
	rows := make([]*vector.Vector, 0, r1-r0+1)
	for i := r0; i <= r1; i++ {
		r, err := m.GetSubRow(i, c0, c1)
		if err != nil {
			return nil, accessErrorf(ctxGetSubMatrix, err, r0, r1, c0, c1)
		}
		rows = append(rows, r)
	}

	return &Matrix{rows: rows, size: Size{Rows: r1 - r0 + 1, Cols: c1 - c0 + 1}}, nil
}

// SetRow overwrites row i with the values of v.
//
// Errors:
//   - ErrNilVector, ErrOutOfRange, ErrDimensionMismatch (v.Len() != Cols).
//
// Complexity: O(cols).
func (m *Matrix) SetRow(i int, v *vector.Vector) error {
	if v == nil {
		return accessErrorf(ctxSetRow, ErrNilVector, i)
	}
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return accessErrorf(ctxSetRow, err, i)
	}
	if v.Len() != m.size.Cols {
		return accessErrorf(ctxSetRow, ErrDimensionMismatch, i)
	}
	m.writeRow(i, 0, v.Values())

	return nil
}

// SetColumn replaces column j with the values of v.
//
// Errors:
//   - ErrNilVector, ErrOutOfRange, ErrDimensionMismatch (v.Len() != Rows).
//
// Complexity: O(rows).
func (m *Matrix) SetColumn(j int, v *vector.Vector) error {
	if v == nil {
		return accessErrorf(ctxSetColumn, ErrNilVector, j)
	}
	if err := validateIndex(axisColumn, j, m.size.Cols); err != nil {
		return accessErrorf(ctxSetColumn, err, j)
	}
	if v.Len() != m.size.Rows {
		return accessErrorf(ctxSetColumn, ErrDimensionMismatch, j)
	}
	m.writeColumn(j, 0, v.Values())

	return nil
}

// writeColumn stores vals into column j starting at row r0. Unchecked.
func (m *Matrix) writeColumn(j, r0 int, vals []float64) {
	for k, x := range vals {
		_ = m.rows[r0+k].Set(j, x)
	}
}

// writeRow stores vals into row i starting at column c0. Unchecked.
func (m *Matrix) writeRow(i, c0 int, vals []float64) {
	for k, x := range vals {
		_ = m.rows[i].Set(c0+k, x)
	}
}

// SetSubRow writes v into row i starting at column c0.
// MAIN DESCRIPTION:
//   - m[i][c0+k] = v[k] for k in [0, v.Len()).
//
// Errors:
//   - ErrNilVector.
//   - ErrOutOfRange when i is outside [0, Rows) or c0 is negative.
//   - ErrDimensionMismatch when v.Len() > Cols - c0. An empty v fits at c0 == Cols.
//
// Complexity: O(v.Len()).
func (m *Matrix) SetSubRow(i, c0 int, v *vector.Vector) error {
	if v == nil {
		return accessErrorf(ctxSetSubRow, ErrNilVector, i, c0)
	}
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return accessErrorf(ctxSetSubRow, err, i, c0)
	}
	if err := validateSpan(c0, v.Len(), m.size.Cols); err != nil {
		return accessErrorf(ctxSetSubRow, err, i, c0)
	}
	m.writeRow(i, c0, v.Values())

	return nil
}

// SetSubColumn writes v into column j starting at row r0.
//
// Errors:
//   - ErrNilVector.
//   - ErrOutOfRange when j is outside [0, Cols) or r0 is negative.
//   - ErrDimensionMismatch when v.Len() > Rows - r0.
//
// Complexity: O(v.Len()).
func (m *Matrix) SetSubColumn(j, r0 int, v *vector.Vector) error {
	if v == nil {
		return accessErrorf(ctxSetSubColumn, ErrNilVector, j, r0)
	}
	if err := validateIndex(axisColumn, j, m.size.Cols); err != nil {
		return accessErrorf(ctxSetSubColumn, err, j, r0)
	}
	if err := validateSpan(r0, v.Len(), m.size.Rows); err != nil {
		return accessErrorf(ctxSetSubColumn, err, j, r0)
	}
	m.writeColumn(j, r0, v.Values())

	return nil
}

// SetSubMatrix copies src into m with its top-left corner at (r0, c0).
// MAIN DESCRIPTION:
//   - m[r0+i][c0+j] = src[i][j] for every element of src.
//
// Implementation:
//   - Stage 1: validate src and both spans (rows against Rows-r0, cols against Cols-c0).
//   - Stage 2: repeated SetSubRow, which cannot fail once Stage 1 passed.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (negative offset), ErrDimensionMismatch
//     (src.Rows > Rows-r0 or src.Cols > Cols-c0).
//
// Complexity:
//   - Time O(src.Rows*src.Cols).
func (m *Matrix) SetSubMatrix(r0, c0 int, src *Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return accessErrorf(ctxSetSubMatrix, err, r0, c0)
	}
	if err := validateSpan(r0, src.size.Rows, m.size.Rows); err != nil {
		return accessErrorf(ctxSetSubMatrix, err, r0, c0)
	}
	if err := validateSpan(c0, src.size.Cols, m.size.Cols); err != nil {
		return accessErrorf(ctxSetSubMatrix, err, r0, c0)
	}
	// Copy src rows first so that m.SetSubMatrix(.., m) reads a stable source.
	src = src.Clone()
	for i, r := range src.rows {
		if err := m.SetSubRow(r0+i, c0, r); err != nil {
			return accessErrorf(ctxSetSubMatrix, err, r0, c0)
		}
	}

	return nil
}

// SwapRows exchanges rows i1 and i2 in place.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Matrix) SwapRows(i1, i2 int) error {
	if err := validateIndex(axisRow, i1, m.size.Rows); err != nil {
		return accessErrorf(ctxSwapRows, err, i1, i2)
	}
	if err := validateIndex(axisRow, i2, m.size.Rows); err != nil {
		return accessErrorf(ctxSwapRows, err, i1, i2)
	}
	m.rows[i1], m.rows[i2] = m.rows[i2], m.rows[i1]

	return nil
}

// SwapColumns exchanges columns j1 and j2 in place.
// Errors: ErrOutOfRange. Complexity: O(rows).
func (m *Matrix) SwapColumns(j1, j2 int) error {
	if err := validateIndex(axisColumn, j1, m.size.Cols); err != nil {
		return accessErrorf(ctxSwapColumns, err, j1, j2)
	}
	if err := validateIndex(axisColumn, j2, m.size.Cols); err != nil {
		return accessErrorf(ctxSwapColumns, err, j1, j2)
	}
	a := m.column(j1, 0, m.size.Rows-1).Values()
	b := m.column(j2, 0, m.size.Rows-1).Values()
	m.writeColumn(j1, 0, b)
	m.writeColumn(j2, 0, a)

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (rows of vectors) & safe accessors.
//
// Purpose:
//   - Own rows×cols values as a slice of exclusively owned *vector.Vector rows.
//   - Guarantee safety at the public surface: every accessor returns errors instead of panicking.
//   - Validate before allocating: no constructor produces a degenerate matrix.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxFromRows    = "FromRows"
	ctxFromVectors = "FromVectors"
	ctxFromVector  = "FromVector"
	ctxRow         = "Row"
	ctxAt          = "At"
	ctxSet         = "Set"
)

// ---------- Formatting literals ----------

const _fmtRowEnd = "\n"

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense rows×cols matrix stored as a slice of row vectors.
//   - rows holds exactly size.Rows vectors, each of dimension size.Cols.
//   - every row is owned by this matrix alone; nothing outside ever holds
//     a row pointer except through Row, which documents the aliasing.
type Matrix struct {
	rows []*vector.Vector // len == size.Rows; rows[i].Len() == size.Cols
	size Size             // validated: both > 0
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate one zero vector per row.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	return NewFromSize(Size{Rows: rows, Cols: cols})
}

// NewFromSize creates a zero matrix of the given Size.
// Errors: ErrInvalidShape when s.Validate() is false.
func NewFromSize(s Size) (*Matrix, error) {
	if err := ValidateSize(s); err != nil {
		return nil, denseErrorf(ctxNew, s.Rows, s.Cols, err)
	}

	return newZero(s), nil
}

// newZero allocates a zero matrix for an already validated size.
func newZero(s Size) *Matrix {
	rows := make([]*vector.Vector, s.Rows)
	for i := range rows {
		rows[i] = vector.FromSlice(make([]float64, s.Cols))
	}

	return &Matrix{rows: rows, size: s}
}

// FromRows builds a matrix from a rectangular nested literal.
// MAIN DESCRIPTION:
//   - Copy data row by row after validating it is non-empty and rectangular.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, equal row lengths, positive width).
//   - Stage 2: copy each row into a fresh vector.
//
// Errors:
//   - ErrInvalidShape (e.g. [[1,2],[3]]).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(data [][]float64) (*Matrix, error) {
	s, err := ValidateRows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	rows := make([]*vector.Vector, s.Rows)
	for i := range data {
		rows[i] = vector.FromSlice(data[i])
	}

	return &Matrix{rows: rows, size: s}, nil
}

// FromVectors builds a matrix whose rows are copies of the given vectors.
//
// Errors:
//   - ErrInvalidShape (empty input, zero-length or mismatched vectors).
//   - ErrNilVector.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromVectors(rows []*vector.Vector) (*Matrix, error) {
	s, err := ValidateVectors(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVectors, err)
	}
	own := make([]*vector.Vector, s.Rows)
	for i, r := range rows {
		own[i] = r.Clone()
	}

	return &Matrix{rows: own, size: s}, nil
}

// FromVector lays v out as a 1×n row matrix or an n×1 column matrix.
//
// Errors:
//   - ErrNilVector, ErrInvalidShape (zero-length v or unknown orientation).
//
// Complexity: O(n).
func FromVector(v *vector.Vector, o Orientation) (*Matrix, error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVector, ErrNilVector)
	}
	switch o {
	case RowMatrix:
		return FromVectors([]*vector.Vector{v})
	case ColumnMatrix:
		vals := v.Values()
		data := make([][]float64, len(vals))
		for i, x := range vals {
			data[i] = []float64{x}
		}
		m, err := FromRows(data)
		if err != nil {
			return nil, fmt.Errorf("%s(%s): %w", ctxFromVector, o, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%s(%s): %w", ctxFromVector, o, ErrInvalidShape)
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.size.Rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.size.Cols }

// Size returns the (rows, cols) pair. Complexity: O(1).
func (m *Matrix) Size() Size { return m.size }

// Row returns the live row vector at index i.
// The returned vector aliases the matrix storage: writes through it (Set)
// change the matrix. Its length is fixed, so the shape invariant holds.
// Use GetRow for an independent copy.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Row(i int) (*vector.Vector, error) {
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}

	return m.rows[i], nil
}

// At returns the element at (i, j). Both indices report ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.validateCell(i, j); err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}
	x, _ := m.rows[i].At(j)

	return x, nil
}

// Set stores x at (i, j). On ErrOutOfRange the matrix is unchanged.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, x float64) error {
	if err := m.validateCell(i, j); err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}

	return m.rows[i].Set(j, x)
}

// validateCell checks the row index, then the column index.
func (m *Matrix) validateCell(i, j int) error {
	if err := validateIndex(axisRow, i, m.size.Rows); err != nil {
		return err
	}

	return validateIndex(axisColumn, j, m.size.Cols)
}

// Clone returns a deep copy (new row vectors, same shape).
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix{rows: rows, size: m.size}
}

// Data returns a copy of the elements as a nested slice.
func (m *Matrix) Data() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}

// String renders every row with the vector format, one per line, each line
// terminated by "\n":
//
//	( 1, 2 )
//	( 3, 4 )
//
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String())
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

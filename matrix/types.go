// SPDX-License-Identifier: MIT

// Package matrix: small value types shared by constructors and validators.
package matrix

import "fmt"

// Size is a (rows, cols) pair. It centralizes the "non-degenerate matrix"
// invariant used by every constructor.
type Size struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Validate reports whether both dimensions are strictly positive.
// Complexity: O(1).
func (s Size) Validate() bool { return s.Rows > 0 && s.Cols > 0 }

// IsSquare reports whether Rows == Cols.
func (s Size) IsSquare() bool { return s.Rows == s.Cols }

// String renders the size as "RxC".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Orientation selects how a vector is laid out by FromVector.
type Orientation int

const (
	// RowMatrix lays the vector out as a 1×n matrix.
	RowMatrix Orientation = iota
	// ColumnMatrix lays the vector out as an n×1 matrix.
	ColumnMatrix
)

// String returns "row" or "column".
func (o Orientation) String() string {
	switch o {
	case RowMatrix:
		return "row"
	case ColumnMatrix:
		return "column"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Package matrix provides dense general matrices and validated square
// matrices built from rows of vector.Vector.
//
// What is in the box?
//
//   - Matrix: rows×cols container owning its row vectors by value. Built
//     zero-filled from positive counts, from a rectangular [][]float64, from
//     a slice of vectors, or from a single vector as a row/column matrix.
//   - Row/column/sub-matrix access with inclusive ranges, and the matching
//     setters (SetRow, SetSubRow, SetSubMatrix, ...).
//   - Arithmetic: Mul, Add, Sub, Scale, Negate, Transpose, Rotate.
//   - Square: a Matrix validated at construction to have Rows == Cols, adding
//     TransposeInPlace, Identity and Power (repeated multiplication).
//
// Guarantees:
//
//   - Validate-then-mutate: a failing call never leaves a partial write.
//   - No aliasing: getters return copies, setters copy their input.
//   - Errors are sentinels matched with errors.Is (see errors.go).
//
// Usage:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b)
//	fmt.Print(c)
//	// ( 19, 22 )
//	// ( 43, 50 )
//
// Complexity:
//   - At/Set/Row: O(1); row/column getters O(cols)/O(rows);
//     Add/Scale/Transpose O(r·c); Mul O(r·n·c); Power O(exp·n³).
package matrix

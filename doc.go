// Package linalg is a small, dependency-light toolkit of dense linear-algebra
// values: vectors, general matrices and square matrices, plus a worksheet
// runner and CLI for evaluating them from YAML.
//
// What is inside?
//
//	vector/              - Vector: fixed-length float64 tuple with Dot, Cross,
//	                       Magnitude, Angle, Add/Sub/Scale/Negate.
//	matrix/              - Matrix (rows of vectors) with row/column/sub-matrix
//	                       access, Mul, Add, Sub, Scale, Transpose, Rotate;
//	                       Square with Identity, Power and TransposeInPlace.
//	internal/worksheet/  - YAML worksheets of named values and steps, evaluated
//	                       by a Runner with structured logging.
//	internal/render/     - plain and lipgloss-styled report output.
//	cmd/linalg/          - cobra CLI: run, identity, ops, version.
//
// Guarantees:
//
//   - Values own their storage; getters and constructors copy.
//   - Every operation validates before it writes, so a failing call leaves
//     its receiver unchanged.
//   - Errors are sentinels wrapped with %w and matched with errors.Is.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b)
//	fmt.Print(c) // ( 19, 22 )\n( 43, 50 )\n
package linalg

// SPDX-License-Identifier: MIT
// Package worksheet: sentinel error set.
//
// Loader and runner errors are wrapped with the step index and operation name;
// errors raised by the vector and matrix packages pass through with %w so
// callers can still match e.g. matrix.ErrNotSquare with errors.Is.

package worksheet

import "errors"

var (
	// ErrEmptyWorksheet is returned when a worksheet document is empty or
	// declares no steps.
	ErrEmptyWorksheet = errors.New("worksheet: no steps")

	// ErrUnknownOp indicates a step whose op is not in the operation table.
	ErrUnknownOp = errors.New("worksheet: unknown operation")

	// ErrUnknownName indicates an operand name that was never declared or stored.
	ErrUnknownName = errors.New("worksheet: unknown name")

	// ErrDuplicateName indicates that a vector and a matrix share a name.
	ErrDuplicateName = errors.New("worksheet: duplicate name")

	// ErrBadArgs indicates a wrong operand count, a wrong operand kind or a
	// missing step parameter (scalar, exponent, orientation, range, size).
	ErrBadArgs = errors.New("worksheet: bad arguments")
)

// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Kind tags the payload of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindBool
	KindVector
	KindMatrix
)

// String returns the lower-case kind name used in logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBool:
		return "bool"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a step result or a declared operand. Exactly one payload field is
// meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Scalar float64
	Bool   bool
	Vector *vector.Vector
	Matrix *matrix.Matrix
}

// ScalarValue wraps a float64.
func ScalarValue(x float64) Value { return Value{Kind: KindScalar, Scalar: x} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// VectorValue wraps a vector.
func VectorValue(v *vector.Vector) Value { return Value{Kind: KindVector, Vector: v} }

// MatrixValue wraps a matrix.
func MatrixValue(m *matrix.Matrix) Value { return Value{Kind: KindMatrix, Matrix: m} }

// String renders the payload with the same formatting as the core packages:
// scalars use six significant digits, matrices end with a newline per row.
func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return strconv.FormatFloat(v.Scalar, 'g', 6, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindVector:
		return v.Vector.String()
	case KindMatrix:
		return v.Matrix.String()
	default:
		return ""
	}
}

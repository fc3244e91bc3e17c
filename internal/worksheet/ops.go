// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Operation names accepted in Step.Op.
const (
	OpAdd              = "add"
	OpSub              = "sub"
	OpMul              = "mul"
	OpScale            = "scale"
	OpNegate           = "negate"
	OpTranspose        = "transpose"
	OpRotate           = "rotate"
	OpPower            = "power"
	OpIdentity         = "identity"
	OpDot              = "dot"
	OpCross            = "cross"
	OpMagnitude        = "magnitude"
	OpAngle            = "angle"
	OpRow              = "row"
	OpColumn           = "column"
	OpSubMatrix        = "sub_matrix"
	OpToMatrix         = "to_matrix"
	OpSwapRows         = "swap_rows"
	OpSwapColumns      = "swap_columns"
	OpTransposeInPlace = "transpose_in_place"
	OpSetRow           = "set_row"
	OpSetColumn        = "set_column"
	OpSetSubMatrix     = "set_sub_matrix"
	OpEqual            = "equal"
)

// call is the resolved input of one step.
type call struct {
	step Step
	args []Value
	vars env
	eps  float64
}

type opFunc func(c *call) (Value, error)

// opTable dispatches Step.Op. Every entry validates its own operand count
// and kinds before touching any value.
var opTable = map[string]opFunc{
	OpAdd:              opAddSub(vector.Add, matrix.Add),
	OpSub:              opAddSub(vector.Sub, matrix.Sub),
	OpMul:              opMul,
	OpScale:            opScale,
	OpNegate:           opNegate,
	OpTranspose:        opUnaryMatrix(matrix.Transpose),
	OpRotate:           opUnaryMatrix(matrix.Rotate),
	OpPower:            opPower,
	OpIdentity:         opIdentity,
	OpDot:              opDot,
	OpCross:            opCross,
	OpMagnitude:        opMagnitude,
	OpAngle:            opAngle,
	OpRow:              opRow,
	OpColumn:           opColumn,
	OpSubMatrix:        opSubMatrix,
	OpToMatrix:         opToMatrix,
	OpSwapRows:         opInPlace(func(m *matrix.Matrix, c *call) error { return m.SwapRows(c.step.Index, c.step.Index2) }),
	OpSwapColumns:      opInPlace(func(m *matrix.Matrix, c *call) error { return m.SwapColumns(c.step.Index, c.step.Index2) }),
	OpTransposeInPlace: opTransposeInPlace,
	OpSetRow:           opSetVector((*matrix.Matrix).SetRow),
	OpSetColumn:        opSetVector((*matrix.Matrix).SetColumn),
	OpSetSubMatrix:     opSetSubMatrix,
	OpEqual:            opEqual,
}

// Ops returns the supported operation names in ascending order.
func Ops() []string {
	return sortedKeys(opTable)
}

// ---------- operand helpers ----------

// arity checks the operand count.
func (c *call) arity(n int) error {
	if len(c.args) != n {
		return fmt.Errorf("want %d operand(s), got %d: %w", n, len(c.args), ErrBadArgs)
	}

	return nil
}

// vector returns operand i as a vector.
func (c *call) vector(i int) (*vector.Vector, error) {
	if c.args[i].Kind != KindVector {
		return nil, fmt.Errorf("operand %d (%s) is a %s, want vector: %w", i, c.step.Args[i], c.args[i].Kind, ErrBadArgs)
	}

	return c.args[i].Vector, nil
}

// matrix returns operand i as a matrix.
func (c *call) matrix(i int) (*matrix.Matrix, error) {
	if c.args[i].Kind != KindMatrix {
		return nil, fmt.Errorf("operand %d (%s) is a %s, want matrix: %w", i, c.step.Args[i], c.args[i].Kind, ErrBadArgs)
	}

	return c.args[i].Matrix, nil
}

// vectors checks arity n and returns every operand as a vector.
func (c *call) vectors(n int) ([]*vector.Vector, error) {
	if err := c.arity(n); err != nil {
		return nil, err
	}
	out := make([]*vector.Vector, n)
	for i := range out {
		v, err := c.vector(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// matrices checks arity n and returns every operand as a matrix.
func (c *call) matrices(n int) ([]*matrix.Matrix, error) {
	if err := c.arity(n); err != nil {
		return nil, err
	}
	out := make([]*matrix.Matrix, n)
	for i := range out {
		m, err := c.matrix(i)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

// square checks arity 1 and returns a square copy of the operand.
func (c *call) square() (*matrix.Square, error) {
	ms, err := c.matrices(1)
	if err != nil {
		return nil, err
	}

	return matrix.AsSquare(ms[0])
}

// ---------- operations ----------

// opAddSub builds add/sub: both operands vectors or both matrices.
func opAddSub(vf func(a, b *vector.Vector) (*vector.Vector, error), mf func(a, b *matrix.Matrix) (*matrix.Matrix, error)) opFunc {
	return func(c *call) (Value, error) {
		if err := c.arity(2); err != nil {
			return Value{}, err
		}
		switch c.args[0].Kind {
		case KindVector:
			vs, err := c.vectors(2)
			if err != nil {
				return Value{}, err
			}
			v, err := vf(vs[0], vs[1])
			if err != nil {
				return Value{}, err
			}
			return VectorValue(v), nil
		case KindMatrix:
			ms, err := c.matrices(2)
			if err != nil {
				return Value{}, err
			}
			m, err := mf(ms[0], ms[1])
			if err != nil {
				return Value{}, err
			}
			return MatrixValue(m), nil
		default:
			return Value{}, fmt.Errorf("operand 0 is a %s: %w", c.args[0].Kind, ErrBadArgs)
		}
	}
}

func opMul(c *call) (Value, error) {
	ms, err := c.matrices(2)
	if err != nil {
		return Value{}, err
	}
	m, err := matrix.Mul(ms[0], ms[1])
	if err != nil {
		return Value{}, err
	}

	return MatrixValue(m), nil
}

func opScale(c *call) (Value, error) {
	if err := c.arity(1); err != nil {
		return Value{}, err
	}
	if c.step.Scalar == nil {
		return Value{}, fmt.Errorf("missing scalar: %w", ErrBadArgs)
	}
	k := *c.step.Scalar
	switch c.args[0].Kind {
	case KindVector:
		return VectorValue(vector.Scale(c.args[0].Vector, k)), nil
	case KindMatrix:
		m, err := matrix.Scale(c.args[0].Matrix, k)
		if err != nil {
			return Value{}, err
		}
		return MatrixValue(m), nil
	case KindScalar:
		return ScalarValue(c.args[0].Scalar * k), nil
	default:
		return Value{}, fmt.Errorf("cannot scale a %s: %w", c.args[0].Kind, ErrBadArgs)
	}
}

func opNegate(c *call) (Value, error) {
	if err := c.arity(1); err != nil {
		return Value{}, err
	}
	switch c.args[0].Kind {
	case KindVector:
		return VectorValue(vector.Negate(c.args[0].Vector)), nil
	case KindMatrix:
		m, err := matrix.Negate(c.args[0].Matrix)
		if err != nil {
			return Value{}, err
		}
		return MatrixValue(m), nil
	case KindScalar:
		return ScalarValue(-c.args[0].Scalar), nil
	default:
		return Value{}, fmt.Errorf("cannot negate a %s: %w", c.args[0].Kind, ErrBadArgs)
	}
}

// opUnaryMatrix adapts a matrix→matrix function.
func opUnaryMatrix(f func(m *matrix.Matrix) (*matrix.Matrix, error)) opFunc {
	return func(c *call) (Value, error) {
		ms, err := c.matrices(1)
		if err != nil {
			return Value{}, err
		}
		m, err := f(ms[0])
		if err != nil {
			return Value{}, err
		}
		return MatrixValue(m), nil
	}
}

func opPower(c *call) (Value, error) {
	if c.step.Exponent == nil {
		return Value{}, fmt.Errorf("missing exponent: %w", ErrBadArgs)
	}
	sq, err := c.square()
	if err != nil {
		return Value{}, err
	}
	p, err := matrix.Power(sq, *c.step.Exponent)
	if err != nil {
		return Value{}, err
	}

	return MatrixValue(p.Matrix()), nil
}

func opIdentity(c *call) (Value, error) {
	if err := c.arity(0); err != nil {
		return Value{}, err
	}
	id, err := matrix.Identity(c.step.Size)
	if err != nil {
		return Value{}, err
	}

	return MatrixValue(id.Matrix()), nil
}

func opDot(c *call) (Value, error) {
	vs, err := c.vectors(2)
	if err != nil {
		return Value{}, err
	}
	d, err := vector.Dot(vs[0], vs[1])
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(d), nil
}

func opCross(c *call) (Value, error) {
	vs, err := c.vectors(2)
	if err != nil {
		return Value{}, err
	}
	v, err := vector.Cross(vs[0], vs[1])
	if err != nil {
		return Value{}, err
	}

	return VectorValue(v), nil
}

func opMagnitude(c *call) (Value, error) {
	vs, err := c.vectors(1)
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(vs[0].Magnitude()), nil
}

func opAngle(c *call) (Value, error) {
	vs, err := c.vectors(2)
	if err != nil {
		return Value{}, err
	}
	a, err := vs[0].Angle(vs[1])
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(a), nil
}

func opRow(c *call) (Value, error) {
	ms, err := c.matrices(1)
	if err != nil {
		return Value{}, err
	}
	v, err := ms[0].GetRow(c.step.Index)
	if err != nil {
		return Value{}, err
	}

	return VectorValue(v), nil
}

func opColumn(c *call) (Value, error) {
	ms, err := c.matrices(1)
	if err != nil {
		return Value{}, err
	}
	v, err := ms[0].GetColumn(c.step.Index)
	if err != nil {
		return Value{}, err
	}

	return VectorValue(v), nil
}

// opSubMatrix reads range as [r0, r1, c0, c1], all inclusive.
func opSubMatrix(c *call) (Value, error) {
	ms, err := c.matrices(1)
	if err != nil {
		return Value{}, err
	}
	rg := c.step.Range
	if len(rg) != 4 {
		return Value{}, fmt.Errorf("range needs 4 bounds, got %d: %w", len(rg), ErrBadArgs)
	}
	m, err := ms[0].GetSubMatrix(rg[0], rg[1], rg[2], rg[3])
	if err != nil {
		return Value{}, err
	}

	return MatrixValue(m), nil
}

func opToMatrix(c *call) (Value, error) {
	vs, err := c.vectors(1)
	if err != nil {
		return Value{}, err
	}
	var o matrix.Orientation
	switch c.step.Orientation {
	case matrix.RowMatrix.String():
		o = matrix.RowMatrix
	case matrix.ColumnMatrix.String():
		o = matrix.ColumnMatrix
	default:
		return Value{}, fmt.Errorf("orientation %q, want row or column: %w", c.step.Orientation, ErrBadArgs)
	}
	m, err := matrix.FromVector(vs[0], o)
	if err != nil {
		return Value{}, err
	}

	return MatrixValue(m), nil
}

// opInPlace runs a mutating matrix method on a copy of operand 0 and rebinds
// the operand name to the copy, so earlier outputs keep their values.
func opInPlace(mutate func(m *matrix.Matrix, c *call) error) opFunc {
	return func(c *call) (Value, error) {
		ms, err := c.matrices(1)
		if err != nil {
			return Value{}, err
		}
		m := ms[0].Clone()
		if err = mutate(m, c); err != nil {
			return Value{}, err
		}
		v := MatrixValue(m)
		c.vars[c.step.Args[0]] = v

		return v, nil
	}
}

func opTransposeInPlace(c *call) (Value, error) {
	sq, err := c.square()
	if err != nil {
		return Value{}, err
	}
	v := MatrixValue(sq.TransposeInPlace().Matrix())
	c.vars[c.step.Args[0]] = v

	return v, nil
}

// opSetVector builds set_row / set_column: args [matrix, vector], index selects
// the row or column.
func opSetVector(set func(m *matrix.Matrix, idx int, v *vector.Vector) error) opFunc {
	return func(c *call) (Value, error) {
		if err := c.arity(2); err != nil {
			return Value{}, err
		}
		src, err := c.vector(1)
		if err != nil {
			return Value{}, err
		}
		return opInPlace(func(m *matrix.Matrix, c *call) error {
			return set(m, c.step.Index, src)
		})(&call{step: c.step, args: c.args[:1], vars: c.vars, eps: c.eps})
	}
}

// opSetSubMatrix places args[1] into args[0] at (index, index2).
func opSetSubMatrix(c *call) (Value, error) {
	if err := c.arity(2); err != nil {
		return Value{}, err
	}
	src, err := c.matrix(1)
	if err != nil {
		return Value{}, err
	}

	return opInPlace(func(m *matrix.Matrix, c *call) error {
		return m.SetSubMatrix(c.step.Index, c.step.Index2, src)
	})(&call{step: c.step, args: c.args[:1], vars: c.vars, eps: c.eps})
}

// opEqual compares two values of the same kind within the runner tolerance.
func opEqual(c *call) (Value, error) {
	if err := c.arity(2); err != nil {
		return Value{}, err
	}
	a, b := c.args[0], c.args[1]
	if a.Kind != b.Kind {
		return Value{}, fmt.Errorf("%s vs %s: %w", a.Kind, b.Kind, ErrBadArgs)
	}
	switch a.Kind {
	case KindScalar:
		return BoolValue(math.Abs(a.Scalar-b.Scalar) <= c.eps), nil
	case KindBool:
		return BoolValue(a.Bool == b.Bool), nil
	case KindVector:
		return BoolValue(a.Vector.ApproxEqual(b.Vector, c.eps)), nil
	default:
		return BoolValue(matrix.ApproxEqual(a.Matrix, b.Matrix, c.eps)), nil
	}
}

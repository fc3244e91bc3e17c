// SPDX-License-Identifier: MIT
// Package matrix_test contains unit and property tests for Matrix arithmetic.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// TestMulScenario pins the 2×2 reference product.
func TestMulScenario(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, MustFromRows(t, [][]float64{{19, 22}, {43, 50}})), "got\n%s", c)

	// Operands are untouched.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Data())
}

// TestMulShapes checks rectangular products and the inner-dimension check.
func TestMulShapes(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := MustFromRows(t, [][]float64{{1}, {0}, {-1}})       // 3×1

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 2, Cols: 1}, c.Size())
	require.Equal(t, [][]float64{{-2}, {-2}}, c.Data())

	_, err = matrix.Mul(b, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulElementIsRowDotColumn verifies C[i][j] = row(i)·column(j).
func TestMulElementIsRowDotColumn(t *testing.T) {
	t.Parallel()

	a := RandFilled(t, 3, 4, 1)
	b := RandFilled(t, 4, 2, 2)
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			r, _ := a.GetRow(i)
			col, _ := b.GetColumn(j)
			want, err := vector.Dot(r, col)
			require.NoError(t, err)
			require.Equal(t, want, MustAt(t, c, i, j))
		}
	}
}

// TestMulAssociative checks (A·B)·C == A·(B·C) within tolerance.
func TestMulAssociative(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 5; seed++ {
		a := RandFilled(t, 2, 3, seed)
		b := RandFilled(t, 3, 4, seed+100)
		c := RandFilled(t, 4, 2, seed+200)

		ab, err := matrix.Mul(a, b)
		require.NoError(t, err)
		left, err := matrix.Mul(ab, c)
		require.NoError(t, err)

		bc, err := matrix.Mul(b, c)
		require.NoError(t, err)
		right, err := matrix.Mul(a, bc)
		require.NoError(t, err)

		require.True(t, matrix.ApproxEqual(left, right, tol), "seed %d", seed)
	}
}

// TestTransposeInvolution checks transpose(transpose(M)) == M and element mapping.
func TestTransposeInvolution(t *testing.T) {
	t.Parallel()

	m := RandFilled(t, 3, 5, 42)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 5, Cols: 3}, tr.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, MustAt(t, m, i, j), MustAt(t, tr, j, i))
		}
	}
	require.True(t, matrix.Equal(tr.Transpose(), m))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRotate checks a single clockwise turn and that four turns are identity.
func TestRotate(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, err := matrix.Rotate(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 1}, {5, 2}, {6, 3}}, r.Data())

	cur := m
	for k := 0; k < 4; k++ {
		cur, err = matrix.Rotate(cur)
		require.NoError(t, err)
	}
	require.True(t, matrix.Equal(cur, m))

	_, err = matrix.Rotate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScaleCommutative checks k·M == M·k and element values.
func TestScaleCommutative(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, -2}, {0.5, 4}})

	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -4}, {1, 8}}, s.Data())
	require.True(t, matrix.Equal(s, m.Scale(2)))

	n, err := matrix.Negate(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 2}, {-0.5, -4}}, n.Data())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSub covers element-wise sum/difference and shape checks.
func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum.Data())

	diff, err := matrix.Sub(a, a)
	require.NoError(t, err)
	zero, _ := matrix.New(2, 3)
	require.True(t, matrix.Equal(diff, zero))

	tests := []struct {
		name string
		a, b *matrix.Matrix
		want error
	}{
		{"row mismatch", a, MustFromRows(t, [][]float64{{1, 2, 3}}), matrix.ErrDimensionMismatch},
		{"col mismatch", a, MustFromRows(t, [][]float64{{1, 2}, {3, 4}}), matrix.ErrDimensionMismatch},
		{"nil left", nil, a, matrix.ErrNilMatrix},
		{"nil right", a, nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Add(tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
			_, err = matrix.Sub(tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEqual covers shape and nil handling of the comparison helpers.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, MustFromRows(t, [][]float64{{1}, {2}})))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))
	require.True(t, matrix.ApproxEqual(a, MustFromRows(t, [][]float64{{1 + 1e-12, 2}}), tol))
	require.False(t, matrix.ApproxEqual(a, a, -1))
}

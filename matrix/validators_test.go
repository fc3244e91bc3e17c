// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix {
		m, err := matrix.New(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(MustFromRows(t, [][]float64{{1, 2}, {3, 4}})))
	require.ErrorIs(t, matrix.ValidateSquare(MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})), matrix.ErrNotSquare)
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}})
	b := MustFromRows(t, [][]float64{{1}, {2}, {3}})

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(b, a))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

// TestValidateRowsAndVectors checks shape inference from literals and vectors.
func TestValidateRowsAndVectors(t *testing.T) {
	t.Parallel()

	s, err := matrix.ValidateRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 3, Cols: 2}, s)

	_, err = matrix.ValidateRows([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	s, err = matrix.ValidateVectors([]*vector.Vector{vector.Of(1, 2, 3)})
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 1, Cols: 3}, s)

	_, err = matrix.ValidateVectors([]*vector.Vector{nil})
	require.ErrorIs(t, err, matrix.ErrNilVector)

	require.ErrorIs(t, matrix.ValidateSize(matrix.Size{Rows: 0, Cols: 3}), matrix.ErrInvalidShape)
	require.NoError(t, matrix.ValidateSize(matrix.Size{Rows: 1, Cols: 3}))
}

// TestSentinelAliases ensures matrix errors match the vector sentinels.
func TestSentinelAliases(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ErrDimensionMismatch, vector.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ErrOutOfRange, vector.ErrOutOfRange)
	require.ErrorIs(t, matrix.ErrNilVector, vector.ErrNilVector)
}

// TestPrivateValidators pins the index, range and span rules used by access.go.
func TestPrivateValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ExportedValidateIndex("row", 0, 1))
	require.ErrorIs(t, matrix.ExportedValidateIndex("row", 1, 1), matrix.ErrOutOfRange)
	err := matrix.ExportedValidateIndex("column", -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "matrix: column -1 of 1")

	require.NoError(t, matrix.ExportedValidateRange(2, 2, 3))
	require.ErrorIs(t, matrix.ExportedValidateRange(2, 1, 3), matrix.ErrInvalidRange)
	require.ErrorIs(t, matrix.ExportedValidateRange(0, 3, 3), matrix.ErrInvalidRange)
	require.ErrorIs(t, matrix.ExportedValidateRange(-1, 0, 3), matrix.ErrInvalidRange)

	require.NoError(t, matrix.ExportedValidateSpan(1, 2, 3))
	require.NoError(t, matrix.ExportedValidateSpan(3, 0, 3)) // empty span at the bound
	require.ErrorIs(t, matrix.ExportedValidateSpan(2, 2, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ExportedValidateSpan(3, 1, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ExportedValidateSpan(5, 1, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ExportedValidateSpan(-1, 0, 3), matrix.ErrOutOfRange)
}

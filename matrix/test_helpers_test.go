// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// tol is the absolute tolerance used for floating-point identities.
const tol = 1e-9

// MustFromRows BUILDS a matrix from a literal or fails the test.
func MustFromRows(t *testing.T, data [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(data)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", data, err)
	}

	return m
}

// MustSquare BUILDS a square matrix from a literal or fails the test.
func MustSquare(t *testing.T, data [][]float64) *matrix.Square {
	t.Helper()
	s, err := matrix.SquareFromRows(data)
	if err != nil {
		t.Fatalf("SquareFromRows(%v): %v", data, err)
	}

	return s
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandFilled RETURNS a new r×c matrix filled with deterministic U(-1,1).
// Deterministic per seed; row-major fill order.
func RandFilled(t *testing.T, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandSquare RETURNS a new n×n Square filled with deterministic U(-1,1).
func RandSquare(t *testing.T, n int, seed int64) *matrix.Square {
	t.Helper()
	s, err := matrix.AsSquare(RandFilled(t, n, n, seed))
	if err != nil {
		t.Fatalf("AsSquare: %v", err)
	}

	return s
}

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// ( 19, 22 )
	// ( 43, 50 )
}

// ExampleFromVector lays a vector out as a column and multiplies it by a row.
func ExampleFromVector() {
	v := vector.Of(1, 2, 3)
	col, _ := matrix.FromVector(v, matrix.ColumnMatrix)
	row, _ := matrix.FromVector(v, matrix.RowMatrix)

	outer, _ := matrix.Mul(col, row)
	fmt.Print(outer)

	// Output:
	// ( 1, 2, 3 )
	// ( 2, 4, 6 )
	// ( 3, 6, 9 )
}

// ExampleMatrix_GetSubMatrix extracts an inclusive rectangle.
func ExampleMatrix_GetSubMatrix() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, _ := m.GetSubMatrix(1, 2, 0, 1)
	fmt.Print(sub)

	_, err := m.GetSubRow(0, 2, 1)
	fmt.Println(errors.Is(err, matrix.ErrInvalidRange))

	// Output:
	// ( 4, 5 )
	// ( 7, 8 )
	// true
}

// ExamplePower raises the Fibonacci matrix to the 5th power.
func ExamplePower() {
	fib, _ := matrix.SquareFromRows([][]float64{{1, 1}, {1, 0}})

	p, _ := matrix.Power(fib, 5)
	fmt.Print(p)

	_, err := matrix.AsSquare(mustRect())
	fmt.Println(errors.Is(err, matrix.ErrNotSquare))

	// Output:
	// ( 8, 5 )
	// ( 5, 3 )
	// true
}

func mustRect() *matrix.Matrix {
	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	return m
}

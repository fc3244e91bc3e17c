package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ExampleCross demonstrates the right-hand rule on the standard basis.
func ExampleCross() {
	i := vector.Of(1, 0, 0)
	j := vector.Of(0, 1, 0)

	k, err := vector.Cross(i, j)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(k)
	// Output:
	// ( 0, 0, 1 )
}

// ExampleVector_Angle shows the angle between two orthogonal vectors and the
// domain error reported for a zero vector.
func ExampleVector_Angle() {
	a, _ := vector.Of(0, 2).Angle(vector.Of(3, 0))
	fmt.Printf("%.4f\n", a)

	_, err := vector.Of(0, 0).Angle(vector.Of(1, 1))
	fmt.Println(err)
	// Output:
	// 1.5708
	// Angle: vector: zero magnitude
}

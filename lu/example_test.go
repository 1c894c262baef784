// SPDX-License-Identifier: MIT
package lu_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/lu"
	"github.com/katalvlaran/lvlsolve/mat"
)

// ExampleExecutor_Apply factorizes a small system and solves it
// through the cached inverse.
func ExampleExecutor_Apply() {
	a, _ := mat.NewDense(3, 3, []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	})

	sol, ok, err := lu.General.Apply(a)
	if err != nil || !ok {
		fmt.Println("no factorization")
		return
	}

	x, _ := sol.Solve([]float64{4, 10, 24})
	fmt.Printf("det = %.0f\n", sol.Determinant().Value())
	fmt.Printf("x = [%.0f %.0f %.0f]\n", x[0], x[1], x[2])

	// Output:
	// det = 4
	// x = [1 1 1]
}

// ExampleBandedExecutor_Apply shows the banded variant refusing a
// matrix that would need pivoting.
func ExampleBandedExecutor_Apply() {
	b, _ := mat.NewBandedBuilder(2, 1)
	_ = b.Set(0, 1, 1)
	_ = b.Set(1, 0, 1)

	_, ok, _ := lu.Band.Apply(b.Build())
	fmt.Println("factorized:", ok)

	// Output:
	// factorized: false
}

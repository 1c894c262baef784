// SPDX-License-Identifier: MIT
package cholesky_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/cholesky"
	"github.com/katalvlaran/lvlsolve/mat"
)

// ExampleExecutor_Apply factorizes a symmetric positive-definite
// matrix and reads its determinant off the façade.
func ExampleExecutor_Apply() {
	b, _ := mat.NewSymmetricBuilder(3)
	_ = b.Set(0, 0, 4)
	_ = b.Set(1, 0, 2)
	_ = b.Set(1, 1, 3)
	_ = b.Set(2, 1, 1)
	_ = b.Set(2, 2, 2)

	sol, ok, err := cholesky.General.Apply(b.Build())
	if err != nil || !ok {
		fmt.Println("not positive definite")
		return
	}

	fmt.Printf("sign = %d\n", sol.SignOfDeterminant())
	fmt.Printf("det = %.0f\n", sol.Determinant().Value())

	// Output:
	// sign = 1
	// det = 14
}

// SPDX-License-Identifier: MIT
package ldl_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/ldl"
	"github.com/katalvlaran/lvlsolve/mat"
)

// ExampleExecutor_Apply factorizes an indefinite symmetric matrix that
// plain Cholesky would reject.
func ExampleExecutor_Apply() {
	b, _ := mat.NewSymmetricBuilder(2)
	_ = b.Set(1, 0, 1) // [[0,1],[1,0]]: eigenvalues +1 and −1

	sol, ok, err := ldl.General.Apply(b.Build())
	if err != nil || !ok {
		fmt.Println("no factorization")
		return
	}

	fmt.Printf("sign = %d\n", sol.SignOfDeterminant())
	fmt.Printf("det = %.0f\n", sol.Determinant().Value())

	// Output:
	// sign = -1
	// det = -1
}

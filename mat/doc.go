// Package mat provides the base matrix data model for lvlsolve: immutable
// square (and rectangular dense) matrices with structure-aware storage,
// strict builders, and memoized transpose/inverse caching bases.
//
// 🚀 What is mat?
//
//	The collaborator layer every factorization consumes:
//	  • Dense            — row-major flat-slice storage (r×c)
//	  • BandedDense      — square band storage, |i−j| ≤ k footprint
//	  • SymmetricDense   — packed lower triangle, symmetric capability
//	  • BandedSymmetric  — packed lower band, symmetric + banded
//	  • LowerTriangular  — packed strict lower + implicit unit diagonal
//	  • Diagonal         — diagonal entries with closed-form inverse
//	  • BlockDiagonal    — symmetric 1×1/2×2 blocks (the M factor)
//	  • Permutation      — permutation vector with parity sign
//
// ✨ Key contracts:
//   - Immutability: every matrix is frozen at Build time; kernels never
//     mutate a built matrix.
//   - Structural zeros: At inside the matrix but outside the declared
//     footprint returns 0; At outside the matrix returns ErrOutOfRange.
//   - Builders fail fast: any Set/Swap/Build after Build panics — reuse
//     is a programmer error, not a data condition.
//   - Transpose caching: asymmetric types memoize their transpose via a
//     single-assignment cell; symmetric types return themselves; the two
//     disciplines are mutually exclusive by construction.
//
// ⚙️ Usage:
//
//	b, _ := mat.NewDenseBuilder(3, 3)
//	b.Set(0, 0, 4)
//	// ...
//	a := b.Build()
//	y, err := a.Operate([]float64{1, 2, 3}) // y = A·x
//
// Storage layouts (load-bearing for every loop bound):
//
//	Dense:           index = i*cols + j
//	BandedDense:     index = i*(2k+1) + (j−i+k),      |i−j| ≤ k
//	SymmetricDense:  index = i*(i+1)/2 + j,            j ≤ i
//	BandedSymmetric: index = i*(k+1) + (j−i+k),        i−k ≤ j ≤ i
//	LowerTriangular: index = i*(i−1)/2 + j,            j < i (unit diag)
//
// All types are safe for concurrent use after Build: the only internal
// mutability is each cache cell's run-once slot.
package mat

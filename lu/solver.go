// SPDX-License-Identifier: MIT
// Package lu: the solver façade over completed P·L·D·U factors.

package lu

import (
	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// Solver is the immutable façade over an LU factorization. It embeds
// the shared lazy-caching base; the inverse and determinant are
// composed from the factors on first demand.
type Solver struct {
	factor.Base
	pswap *mat.Permutation     // row-swap matrix: Pswap·A = L·D·U
	l     *mat.LowerTriangular // unit lower factor
	d     *mat.Diagonal        // pivot diagonal, unscaled
	ut    *mat.LowerTriangular // U stored as its transpose
}

// newSolver wires the façade; A = Pswapᵀ·L·D·U.
func newSolver(target mat.Matrix, pswap *mat.Permutation, l *mat.LowerTriangular, d *mat.Diagonal, ut *mat.LowerTriangular) *Solver {
	s := &Solver{pswap: pswap, l: l, d: d, ut: ut}
	s.Base = factor.NewBase(target, s.compose)

	return s
}

// compose builds the result bundle from the factors. It runs at most
// once; the elimination already established that D has no zero entry,
// so the regular constructor cannot fail.
func (s *Solver) compose() factor.Solution {
	// A⁻¹ = U⁻¹·D⁻¹·L⁻¹·Pswap, with U⁻¹ the transpose view of Uᵗ's
	// cached inverse.
	inv, err := mat.Mul(s.ut.Inverse().Transpose(), s.d.Inverse(), s.l.Inverse(), s.pswap)
	if err != nil {
		panic(err) // factor shapes are square and equal by construction
	}

	det := factor.DetInfo{LogAbs: s.d.LogAbsDeterminant(), Sign: s.d.SignOfDeterminant() * s.pswap.Sign()}
	sol, err := factor.RegularSolution(det, inv)
	if err != nil {
		panic(err)
	}

	return sol
}

// P returns the permutation factor of A = P·L·D·U.
func (s *Solver) P() mat.Matrix { return s.pswap.Transpose() }

// L returns the unit lower-triangular factor.
func (s *Solver) L() *mat.LowerTriangular { return s.l }

// D returns the diagonal pivot factor.
func (s *Solver) D() *mat.Diagonal { return s.d }

// U returns the unit upper-triangular factor.
func (s *Solver) U() mat.Matrix { return s.ut.Transpose() }

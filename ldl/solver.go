// SPDX-License-Identifier: MIT
// Package ldl: the solver façade over completed P·L·M·Lᵀ·Pᵀ factors.

package ldl

import (
	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// Solver is the immutable façade over a modified Cholesky
// factorization.
type Solver struct {
	factor.Base
	pswap *mat.Permutation     // row-swap matrix: Pswap·A·Pswapᵀ = L·M·Lᵀ
	l     *mat.LowerTriangular // unit lower factor
	m     *mat.BlockDiagonal   // 1×1 and 2×2 pivot blocks, unscaled
}

func newSolver(target mat.Matrix, pswap *mat.Permutation, l *mat.LowerTriangular, m *mat.BlockDiagonal) *Solver {
	s := &Solver{pswap: pswap, l: l, m: m}
	s.Base = factor.NewBase(target, s.compose)

	return s
}

// compose builds the result bundle. The elimination rejected every
// singular pivot block, so det M is non-zero and the regular
// constructor cannot fail.
func (s *Solver) compose() factor.Solution {
	linv := s.l.Inverse()
	// A⁻¹ = Pswapᵀ·L⁻ᵀ·M⁻¹·L⁻¹·Pswap.
	inv, err := mat.Mul(s.pswap.Transpose(), linv.Transpose(), s.m.Inverse(), linv, s.pswap)
	if err != nil {
		panic(err) // factor shapes are square and equal by construction
	}

	// det A = det M: the permutation's parity appears twice and cancels.
	det := factor.DetInfo{LogAbs: s.m.LogAbsDeterminant(), Sign: s.m.SignOfDeterminant()}
	sol, err := factor.RegularSolution(det, inv)
	if err != nil {
		panic(err)
	}

	return sol
}

// P returns the permutation factor of A = P·L·M·Lᵀ·Pᵀ.
func (s *Solver) P() mat.Matrix { return s.pswap.Transpose() }

// L returns the unit lower-triangular factor.
func (s *Solver) L() *mat.LowerTriangular { return s.l }

// M returns the block-diagonal pivot factor.
func (s *Solver) M() *mat.BlockDiagonal { return s.m }

// SPDX-License-Identifier: MIT
// Package cholesky: the solver façade over completed L·√D·√D·Lᵀ
// factors.

package cholesky

import (
	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// Solver is the immutable façade over a Cholesky factorization. Besides
// the shared contract it exposes the asymmetric square root B = L·√D
// and its inverse, each cached independently of the main bundle.
type Solver struct {
	factor.Base
	l     *mat.LowerTriangular
	d     *mat.Diagonal // D = √D·√D, unscaled
	sqrtD *mat.Diagonal

	asymm    *mat.Memo[mat.Matrix]
	invAsymm *mat.Memo[mat.Matrix]
}

func newSolver(target mat.Matrix, l *mat.LowerTriangular, d, sqrtD *mat.Diagonal) *Solver {
	s := &Solver{l: l, d: d, sqrtD: sqrtD}
	s.Base = factor.NewBase(target, s.compose)
	s.asymm = mat.NewMemo(s.composeAsymmSqrt)
	s.invAsymm = mat.NewMemo(s.composeInverseAsymmSqrt)

	return s
}

// compose builds the result bundle. Every pivot was strictly positive,
// so the sign is +1 and the regular constructor cannot fail.
func (s *Solver) compose() factor.Solution {
	linv := s.l.Inverse()
	// A⁻¹ = L⁻ᵀ·D⁻¹·L⁻¹.
	inv, err := mat.Mul(linv.Transpose(), s.d.Inverse(), linv)
	if err != nil {
		panic(err) // factor shapes are square and equal by construction
	}

	det := factor.DetInfo{LogAbs: s.d.LogAbsDeterminant(), Sign: 1}
	sol, err := factor.RegularSolution(det, inv)
	if err != nil {
		panic(err)
	}

	return sol
}

// L returns the unit lower-triangular factor.
func (s *Solver) L() *mat.LowerTriangular { return s.l }

// SqrtD returns the square-root diagonal factor.
func (s *Solver) SqrtD() *mat.Diagonal { return s.sqrtD }

// AsymmSqrt returns B = L·√D with A = B·Bᵀ, computed once and cached.
func (s *Solver) AsymmSqrt() mat.Matrix { return s.asymm.Get() }

// InverseAsymmSqrt returns B⁻¹ = √D⁻¹·L⁻¹, computed once and cached.
func (s *Solver) InverseAsymmSqrt() mat.Matrix { return s.invAsymm.Get() }

func (s *Solver) composeAsymmSqrt() mat.Matrix {
	b, err := mat.Mul(s.l, s.sqrtD)
	if err != nil {
		panic(err)
	}

	return b
}

func (s *Solver) composeInverseAsymmSqrt() mat.Matrix {
	b, err := mat.Mul(s.sqrtD.Inverse(), s.l.Inverse())
	if err != nil {
		panic(err)
	}

	return b
}

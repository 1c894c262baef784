// SPDX-License-Identifier: MIT
// Package cholesky: the packed-lower executor for symmetric
// positive-definite matrices.

package cholesky

import (
	"math"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// MaxDim bounds the accepted dimension.
const MaxDim = 65535

// Executor is the stateless dense Cholesky factory.
type Executor struct{}

// BandedExecutor is the stateless banded Cholesky factory.
type BandedExecutor struct{}

var (
	// General factorizes symmetric positive-definite matrices on packed
	// lower storage.
	General = Executor{}

	// Band factorizes banded symmetric positive-definite matrices.
	Band = BandedExecutor{}
)

// Accepts reports whether m is structurally eligible: non-nil, square,
// within MaxDim and carrying the Symmetric capability. Positive
// definiteness is a numerical property and is only discovered by Apply.
func (Executor) Accepts(m mat.Matrix) error {
	if err := mat.ValidateSquareNonNil(m); err != nil {
		return err
	}
	if err := factor.ValidateMaxDim(m.Rows(), MaxDim); err != nil {
		return err
	}

	return factor.ValidateSymmetric(m)
}

// Apply factorizes m with factor.DefaultEpsilon.
func (e Executor) Apply(m mat.Matrix) (*Solver, bool, error) {
	return e.ApplyEpsilon(m, factor.DefaultEpsilon)
}

// ApplyEpsilon factorizes m with an explicit pivot threshold. Returns
// (nil, false, nil) when any pivot of the norm-scaled working copy is
// at or below the threshold: the matrix is not positive definite to
// working precision. The input is never mutated.
func (e Executor) ApplyEpsilon(m mat.Matrix, epsilon float64) (*Solver, bool, error) {
	if err := e.Accepts(m); err != nil {
		return nil, false, err
	}
	if err := factor.ValidateEpsilon(epsilon); err != nil {
		return nil, false, err
	}

	n := m.Rows()
	norm := m.MaxNorm()
	if norm == 0 {
		return nil, false, nil
	}

	// Norm-scaled packed-lower working copy: (i, j), j ≤ i, at
	// i(i+1)/2 + j. Only the lower triangle is ever read or written.
	w := make([]float64, n*(n+1)/2)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			v, _ = m.At(i, j)
			w[i*(i+1)/2+j] = v / norm
		}
	}

	thr := factor.Threshold(epsilon)
	var r, c int
	var piv float64
	for i = 0; i < n; i++ {
		piv = w[i*(i+1)/2+i]
		if piv <= thr {
			return nil, false, nil // not positive definite
		}
		// Rank-1 update of the trailing lower triangle, then scale the
		// column below the pivot into multipliers.
		for r = i + 1; r < n; r++ {
			for c = i + 1; c <= r; c++ {
				w[r*(r+1)/2+c] -= w[r*(r+1)/2+i] * w[c*(c+1)/2+i] / piv
			}
		}
		for r = i + 1; r < n; r++ {
			w[r*(r+1)/2+i] /= piv
		}
	}

	return packFactors(m, n, norm, func(i, j int) float64 { return w[i*(i+1)/2+j] }, n-1)
}

// packFactors splits the eliminated packed storage into L, D and √D.
// get addresses the working storage; width bounds how far below the
// diagonal a column carries entries (n−1 dense, k banded). Pivots are
// rescaled back by the target norm before the root is taken, and
// re-validated: a pivot that cleared the threshold on the scaled copy
// can still underflow to zero once the scale is reintroduced, in which
// case the result is absent rather than a solver whose D⁻¹ holds Inf.
func packFactors(target mat.Matrix, n int, norm float64, get func(i, j int) float64, width int) (*Solver, bool, error) {
	lb, err := mat.NewLowerTriangularBuilder(n)
	if err != nil {
		return nil, false, err
	}

	d := make([]float64, n)
	root := make([]float64, n)
	var i, r, lim int
	for i = 0; i < n; i++ {
		d[i] = norm * get(i, i)
		if d[i] == 0 {
			return nil, false, nil // rescaling underflowed the pivot
		}
		root[i] = math.Sqrt(d[i])
		lim = i + width
		if lim > n-1 {
			lim = n - 1
		}
		for r = i + 1; r <= lim; r++ {
			if err = lb.Set(r, i, get(r, i)); err != nil {
				return nil, false, err
			}
		}
	}

	dm, err := mat.NewDiagonal(d)
	if err != nil {
		return nil, false, err
	}
	sq, err := mat.NewDiagonal(root)
	if err != nil {
		return nil, false, err
	}

	return newSolver(target, lb.Build(), dm, sq), true, nil
}

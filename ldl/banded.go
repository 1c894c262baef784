// SPDX-License-Identifier: MIT
// Package ldl: the non-pivoting banded specialization. Only 1×1
// pivots are available inside a band, so the executor demands a
// diagonal that both clears the threshold and dominates its in-band
// column by the same α rule the pivoting variant uses — anything else
// fails as absent.

package ldl

import (
	"math"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// Accepts reports whether m is structurally eligible: non-nil, square,
// within MaxDim and carrying both the Symmetric and Banded
// capabilities.
func (BandedExecutor) Accepts(m mat.Matrix) error {
	if err := mat.ValidateSquareNonNil(m); err != nil {
		return err
	}
	if err := factor.ValidateMaxDim(m.Rows(), MaxDim); err != nil {
		return err
	}
	if err := factor.ValidateSymmetric(m); err != nil {
		return err
	}

	return factor.ValidateBanded(m)
}

// Apply factorizes m with factor.DefaultEpsilon.
func (e BandedExecutor) Apply(m mat.Matrix) (*Solver, bool, error) {
	return e.ApplyEpsilon(m, factor.DefaultEpsilon)
}

// ApplyEpsilon factorizes m with an explicit pivot threshold. Returns
// (nil, false, nil) both for a singular matrix and for an indefinite
// one whose elimination would need the 2×2 pivots this variant
// forgoes.
func (e BandedExecutor) ApplyEpsilon(m mat.Matrix, epsilon float64) (*Solver, bool, error) {
	if err := e.Accepts(m); err != nil {
		return nil, false, err
	}
	if err := factor.ValidateEpsilon(epsilon); err != nil {
		return nil, false, err
	}

	bm := m.(mat.Banded) // guaranteed by Accepts
	n, k := bm.Rows(), bm.Bandwidth()
	norm := bm.MaxNorm()
	if norm == 0 {
		return nil, false, nil
	}

	// Norm-scaled packed lower band, as in the Cholesky variant, but
	// pivots may be negative.
	w := make([]float64, n*(k+1))
	idx := func(i, j int) int { return i*(k+1) + (j - i + k) }
	var i, j, lo int
	var v float64
	for i = 0; i < n; i++ {
		lo = i - k
		if lo < 0 {
			lo = 0
		}
		for j = lo; j <= i; j++ {
			v, _ = bm.At(i, j)
			w[idx(i, j)] = v / norm
		}
	}

	pb, err := mat.NewPermutationBuilder(n) // identity: no pivoting
	if err != nil {
		return nil, false, err
	}
	mb, err := mat.NewBlockDiagonalBuilder(n)
	if err != nil {
		return nil, false, err
	}

	thr := factor.Threshold(epsilon)
	var r, c, lim int
	var piv, lambda float64
	for i = 0; i < n; i++ {
		piv = w[idx(i, i)]
		lim = i + k
		if lim > n-1 {
			lim = n - 1
		}

		lambda = 0
		for r = i + 1; r <= lim; r++ {
			if v = math.Abs(w[idx(r, i)]); v > lambda {
				lambda = v
			}
		}
		if math.Abs(piv) <= thr || math.Abs(piv) < alpha*lambda {
			return nil, false, nil // would need the pivoting variant
		}

		for r = i + 1; r <= lim; r++ {
			for c = i + 1; c <= r; c++ {
				w[idx(r, c)] -= w[idx(r, i)] * w[idx(c, i)] / piv
			}
		}
		for r = i + 1; r <= lim; r++ {
			w[idx(r, i)] /= piv
		}
		if err = mb.AppendScalar(norm * piv); err != nil {
			return nil, false, err
		}
	}

	bd, err := mb.Build()
	if err != nil {
		return nil, false, err
	}
	// Reintroducing the scale can underflow a boundary pivot to zero.
	if bd.SignOfDeterminant() == 0 {
		return nil, false, nil
	}
	lb, err := mat.NewLowerTriangularBuilder(n)
	if err != nil {
		return nil, false, err
	}
	for i = 0; i < n; i++ {
		lim = i + k
		if lim > n-1 {
			lim = n - 1
		}
		for r = i + 1; r <= lim; r++ {
			if err = lb.Set(r, i, w[idx(r, i)]); err != nil {
				return nil, false, err
			}
		}
	}

	return newSolver(m, pb.Build(), lb.Build(), bd), true, nil
}

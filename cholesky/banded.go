// SPDX-License-Identifier: MIT
// Package cholesky: the banded specialization. Cholesky needs no
// pivoting, so unlike banded LU nothing is given up — the elimination
// is simply restricted to the band.

package cholesky

import (
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
// (nil, false, nil) when the matrix is not positive definite to
// working precision.
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

	// Norm-scaled packed lower band: row i holds columns i−k..i at
	// offsets 0..k.
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

	thr := factor.Threshold(epsilon)
	var r, c, lim int
	var piv float64
	for i = 0; i < n; i++ {
		piv = w[idx(i, i)]
		if piv <= thr {
			return nil, false, nil // not positive definite
		}
		lim = i + k
		if lim > n-1 {
			lim = n - 1
		}
		for r = i + 1; r <= lim; r++ {
			for c = i + 1; c <= r; c++ {
				w[idx(r, c)] -= w[idx(r, i)] * w[idx(c, i)] / piv
			}
		}
		for r = i + 1; r <= lim; r++ {
			w[idx(r, i)] /= piv
		}
	}

	return packFactors(m, n, norm, func(i, j int) float64 { return w[idx(i, j)] }, k)
}

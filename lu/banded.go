// SPDX-License-Identifier: MIT
// Package lu: the non-pivoting banded specialization. Row swaps would
// spread fill outside the band, so any elimination step whose pivot is
// too small fails as absent instead of pivoting.

package lu

import (
	"math"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// Accepts reports whether m is structurally eligible: non-nil, square,
// within MaxDim and carrying the Banded capability.
func (BandedExecutor) Accepts(m mat.Matrix) error {
	if err := mat.ValidateSquareNonNil(m); err != nil {
		return err
	}
	if err := factor.ValidateMaxDim(m.Rows(), MaxDim); err != nil {
		return err
	}

	return factor.ValidateBanded(m)
}

// Apply factorizes m with factor.DefaultEpsilon.
func (e BandedExecutor) Apply(m mat.Matrix) (*Solver, bool, error) {
	return e.ApplyEpsilon(m, factor.DefaultEpsilon)
}

// ApplyEpsilon factorizes m with an explicit pivot threshold. Returns
// (nil, false, nil) both for a singular matrix and for one that would
// need pivoting — the two are indistinguishable without the row swaps
// this variant forgoes.
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

	// Norm-scaled working copy in band storage: row i holds columns
	// i−k..i+k at offsets 0..2k.
	stride := 2*k + 1
	w := make([]float64, n*stride)
	idx := func(i, j int) int { return i*stride + (j - i + k) }
	var i, j, lo, hi int
	var v float64
	for i = 0; i < n; i++ {
		lo, hi = i-k, i+k
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		for j = lo; j <= hi; j++ {
			v, _ = bm.At(i, j)
			w[idx(i, j)] = v / norm
		}
	}

	thr := factor.Threshold(epsilon)
	var r, c, lim int
	var piv, mlt float64
	for i = 0; i < n; i++ {
		piv = w[idx(i, i)]
		if math.Abs(piv) <= thr {
			return nil, false, nil // singular, or would need pivoting
		}
		lim = i + k
		if lim > n-1 {
			lim = n - 1
		}
		for r = i + 1; r <= lim; r++ {
			mlt = w[idx(r, i)] / piv
			w[idx(r, i)] = mlt
			for c = i + 1; c <= lim; c++ {
				w[idx(r, c)] -= mlt * w[idx(i, c)]
			}
		}
	}

	pb, err := mat.NewPermutationBuilder(n) // identity: no pivoting
	if err != nil {
		return nil, false, err
	}

	return packFactors(m, n, norm, pb, func(i, j int) float64 { return w[idx(i, j)] }, k)
}

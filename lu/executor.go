// SPDX-License-Identifier: MIT
// Package lu: the partial-pivoting executor for general square
// matrices.

package lu

import (
	"math"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// MaxDim bounds the accepted dimension so that n·n index arithmetic
// stays well inside the int range on every platform.
const MaxDim = 46340

// Executor is the stateless partial-pivoting LU factory.
type Executor struct{}

// BandedExecutor is the stateless non-pivoting banded LU factory.
type BandedExecutor struct{}

var (
	// General factorizes any square matrix with partial pivoting.
	General = Executor{}

	// Band factorizes banded matrices without pivoting.
	Band = BandedExecutor{}
)

// Accepts reports whether m is structurally eligible: non-nil, square
// and within MaxDim.
func (Executor) Accepts(m mat.Matrix) error {
	if err := mat.ValidateSquareNonNil(m); err != nil {
		return err
	}

	return factor.ValidateMaxDim(m.Rows(), MaxDim)
}

// Apply factorizes m with factor.DefaultEpsilon.
func (e Executor) Apply(m mat.Matrix) (*Solver, bool, error) {
	return e.ApplyEpsilon(m, factor.DefaultEpsilon)
}

// ApplyEpsilon factorizes m with an explicit pivot threshold. The
// input is never mutated. Returns (nil, false, nil) when a pivot of
// the norm-scaled working copy falls to the threshold — the matrix is
// singular to working precision.
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
		return nil, false, nil // the zero matrix is singular
	}

	// Norm-scaled working copy; the elimination runs in place.
	w := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // in range by construction
			w[i*n+j] = v / norm
		}
	}

	pb, err := mat.NewPermutationBuilder(n)
	if err != nil {
		return nil, false, err
	}

	thr := factor.Threshold(epsilon)
	var r, c, p int
	var best, mlt, piv float64
	for i = 0; i < n; i++ {
		// Partial pivoting: the largest magnitude in column i, rows i..n.
		p, best = i, math.Abs(w[i*n+i])
		for r = i + 1; r < n; r++ {
			if v = math.Abs(w[r*n+i]); v > best {
				p, best = r, v
			}
		}
		if best <= thr {
			return nil, false, nil // singular to working precision
		}
		if p != i {
			// Full-row swap carries the already-stored multipliers along.
			for c = 0; c < n; c++ {
				w[i*n+c], w[p*n+c] = w[p*n+c], w[i*n+c]
			}
			if err = pb.Swap(i, p); err != nil {
				return nil, false, err
			}
		}

		piv = w[i*n+i]
		for r = i + 1; r < n; r++ {
			mlt = w[r*n+i] / piv
			w[r*n+i] = mlt // multiplier, becomes L
			for c = i + 1; c < n; c++ {
				w[r*n+c] -= mlt * w[i*n+c]
			}
		}
	}

	return packFactors(m, n, norm, pb, func(i, j int) float64 { return w[i*n+j] }, n-1)
}

// packFactors splits the eliminated working array into P, L, D and Uᵗ.
// get addresses the working storage; width bounds how far past the
// diagonal a row carries entries (n−1 dense, k banded). The diagonal
// is rescaled back by the target norm, and its sign re-validated:
// a pivot that cleared the threshold on the scaled copy can still
// underflow to zero once the scale is reintroduced, in which case the
// result is absent rather than a solver with a singular D.
func packFactors(target mat.Matrix, n int, norm float64, pb *mat.PermutationBuilder, get func(i, j int) float64, width int) (*Solver, bool, error) {
	lb, err := mat.NewLowerTriangularBuilder(n)
	if err != nil {
		return nil, false, err
	}
	ub, err := mat.NewLowerTriangularBuilder(n)
	if err != nil {
		return nil, false, err
	}

	d := make([]float64, n)
	var i, j, lim int
	var piv float64
	for i = 0; i < n; i++ {
		piv = get(i, i)
		d[i] = norm * piv
		lim = i + width
		if lim > n-1 {
			lim = n - 1
		}
		for j = i + 1; j <= lim; j++ {
			// Row i of U, divided by its pivot, becomes column i of Uᵗ.
			if err = ub.Set(j, i, get(i, j)/piv); err != nil {
				return nil, false, err
			}
			// Column i of multipliers is column i of L.
			if err = lb.Set(j, i, get(j, i)); err != nil {
				return nil, false, err
			}
		}
	}

	dm, err := mat.NewDiagonal(d)
	if err != nil {
		return nil, false, err
	}
	if dm.SignOfDeterminant() == 0 {
		return nil, false, nil // rescaling underflowed a pivot to zero
	}

	return newSolver(target, pb.Build(), lb.Build(), dm, ub.Build()), true, nil
}

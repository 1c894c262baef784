// SPDX-License-Identifier: MIT
// Package ldl: the Bunch–Kaufman executor for symmetric indefinite
// matrices.

package ldl

import (
	"math"

	"github.com/katalvlaran/lvlsolve/factor"
	"github.com/katalvlaran/lvlsolve/mat"
)

// MaxDim bounds the accepted dimension.
const MaxDim = 65535

// alpha is the Bunch–Kaufman pivot-choice constant (1+√17)/8. It
// balances element growth (favoring 2×2 pivots) against doing the
// cheaper 1×1 elimination whenever the diagonal is dominant enough.
var alpha = (1 + math.Sqrt(17)) / 8

// Executor is the stateless Bunch–Kaufman factory.
type Executor struct{}

// BandedExecutor is the stateless non-pivoting banded factory.
type BandedExecutor struct{}

var (
	// General factorizes symmetric matrices, indefinite included, with
	// Bunch–Kaufman partial pivoting.
	General = Executor{}

	// Band factorizes banded symmetric matrices without pivoting.
	Band = BandedExecutor{}
)

// Accepts reports whether m is structurally eligible: non-nil, square,
// within MaxDim and carrying the Symmetric capability.
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
// (nil, false, nil) when at some step both the diagonal entry and the
// best off-diagonal candidate fall to the threshold — the matrix is
// singular to working precision. The input is never mutated.
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

	// Norm-scaled full working copy, kept symmetric throughout so the
	// row/column swaps stay simple.
	w := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			w[i*n+j] = v / norm
		}
	}

	pb, err := mat.NewPermutationBuilder(n)
	if err != nil {
		return nil, false, err
	}
	mb, err := mat.NewBlockDiagonalBuilder(n)
	if err != nil {
		return nil, false, err
	}

	// blockStart marks columns whose sub-diagonal neighbor belongs to M
	// rather than L.
	blockStart := make([]bool, n)

	thr := factor.Threshold(epsilon)
	var r, c, rmax int
	var diag, lambda, piv, a, b2, cc, det, x, y, l1, l2 float64
	for i = 0; i < n; i++ {
		diag = math.Abs(w[i*n+i])

		// Largest off-diagonal magnitude in column i, rows i+1..n.
		rmax, lambda = i, 0
		for r = i + 1; r < n; r++ {
			if v = math.Abs(w[r*n+i]); v > lambda {
				rmax, lambda = r, v
			}
		}

		switch {
		case diag > thr && diag >= alpha*lambda:
			// 1×1 pivot on the diagonal entry itself.
			piv = w[i*n+i]
			for r = i + 1; r < n; r++ {
				for c = i + 1; c <= r; c++ {
					w[r*n+c] -= w[r*n+i] * w[c*n+i] / piv
					w[c*n+r] = w[r*n+c]
				}
			}
			for r = i + 1; r < n; r++ {
				w[r*n+i] /= piv
			}
			if err = mb.AppendScalar(norm * piv); err != nil {
				return nil, false, err
			}

		case lambda > thr:
			// 2×2 pivot: pair row i with the off-diagonal maximum.
			swapSymmetric(w, n, rmax, i+1)
			if err = pb.Swap(rmax, i+1); err != nil {
				return nil, false, err
			}

			a, b2, cc = w[i*n+i], w[(i+1)*n+i], w[(i+1)*n+i+1]
			det = a*cc - b2*b2
			if math.Abs(det) <= thr {
				return nil, false, nil // block singular to working precision
			}

			for r = i + 2; r < n; r++ {
				x, y = w[r*n+i], w[r*n+i+1]
				// (l1, l2) = [[a, b], [b, c]]⁻¹ · (x, y)
				l1 = (cc*x - b2*y) / det
				l2 = (a*y - b2*x) / det
				for c = i + 2; c <= r; c++ {
					w[r*n+c] -= l1*w[i*n+c] + l2*w[(i+1)*n+c]
					w[c*n+r] = w[r*n+c]
				}
				w[r*n+i], w[r*n+i+1] = l1, l2
			}
			if err = mb.AppendBlock(norm*a, norm*cc, norm*b2); err != nil {
				return nil, false, err
			}
			blockStart[i] = true
			i++ // the block consumed two columns

		default:
			return nil, false, nil // singular to working precision
		}
	}

	bd, err := mb.Build()
	if err != nil {
		return nil, false, err
	}
	// Pivots cleared the threshold on the scaled copy, but reintroducing
	// the scale can still underflow a boundary pivot to zero.
	if bd.SignOfDeterminant() == 0 {
		return nil, false, nil
	}
	lb, err := mat.NewLowerTriangularBuilder(n)
	if err != nil {
		return nil, false, err
	}
	for c = 0; c < n; c++ {
		r = c + 1
		if blockStart[c] {
			r++ // the sub-diagonal slot belongs to M, L keeps a zero
		}
		for ; r < n; r++ {
			if err = lb.Set(r, c, w[r*n+c]); err != nil {
				return nil, false, err
			}
		}
	}

	return newSolver(m, pb.Build(), lb.Build(), bd), true, nil
}

// swapSymmetric exchanges rows and columns p and q of the n×n
// symmetric working array.
func swapSymmetric(w []float64, n, p, q int) {
	if p == q {
		return
	}
	var c int
	for c = 0; c < n; c++ {
		w[p*n+c], w[q*n+c] = w[q*n+c], w[p*n+c]
	}
	for c = 0; c < n; c++ {
		w[c*n+p], w[c*n+q] = w[c*n+q], w[c*n+p]
	}
}

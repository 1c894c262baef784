// SPDX-License-Identifier: MIT
// Package factor: the Solver façade and its lazy-caching base.

package factor

import "github.com/katalvlaran/lvlsolve/mat"

// Solver is the read-only façade every factorization returns. An
// executor only hands out a Solver after a successful elimination, so
// the bundle behind these accessors is always regular: the inverse is
// present and the determinant sign is non-zero.
type Solver interface {
	// Target returns the factorized matrix, shared and never mutated.
	Target() mat.Matrix

	// Inverse returns A⁻¹, composed from the factors' closed-form
	// inverses on first call and cached.
	Inverse() mat.Matrix

	// Determinant returns det A as a {log|det|, sign} pair.
	Determinant() DetInfo

	// LogAbsDeterminant returns log|det A|.
	LogAbsDeterminant() float64

	// SignOfDeterminant returns the sign of det A: −1 or +1.
	SignOfDeterminant() int

	// Solve returns x with A·x = rhs, via the cached inverse.
	Solve(rhs []float64) ([]float64, error)
}

// Base carries the target and the single-assignment solution cell.
// Concrete solvers embed it and supply the production closure that
// composes the bundle from their own factors.
type Base struct {
	target mat.Matrix
	cell   *mat.Memo[Solution]
}

// NewBase wires a base around the target and the bundle producer.
// The producer runs at most once, on first demand.
func NewBase(target mat.Matrix, produce func() Solution) Base {
	return Base{target: target, cell: mat.NewMemo(produce)}
}

// Target returns the factorized matrix.
func (b *Base) Target() mat.Matrix { return b.target }

// Solution returns the cached result bundle, producing it on first
// call.
func (b *Base) Solution() Solution { return b.cell.Get() }

// Inverse returns the cached inverse.
func (b *Base) Inverse() mat.Matrix {
	inv, _ := b.cell.Get().Inverse()

	return inv
}

// Determinant returns the cached determinant info.
func (b *Base) Determinant() DetInfo { return b.cell.Get().Det() }

// LogAbsDeterminant returns log|det| of the cached bundle.
func (b *Base) LogAbsDeterminant() float64 { return b.cell.Get().Det().LogAbs }

// SignOfDeterminant returns the sign of the cached bundle.
func (b *Base) SignOfDeterminant() int { return b.cell.Get().Det().Sign }

// Solve computes x = A⁻¹·rhs through the cached inverse.
// Returns mat.ErrDimensionMismatch when rhs has the wrong length.
func (b *Base) Solve(rhs []float64) ([]float64, error) {
	if err := mat.ValidateVecLen(rhs, b.target.Rows()); err != nil {
		return nil, err
	}

	return b.Inverse().Operate(rhs)
}

// SPDX-License-Identifier: MIT

// Package mat: the public interface surface consumed by factorizations.
// This file intentionally contains ONLY interfaces and capability tags;
// concrete storage types live in dedicated files per the package layout.

package mat

// Matrix is the narrow read-only contract every factorization consumes:
// dimension queries, element access, a max-norm, and matrix-vector
// products. Implementations are immutable after Build and safe for
// concurrent use.
//
// Complexity notes: Rows/Cols/MaxNorm are O(1) (the norm is computed at
// Build time); At is O(1); Operate/OperateTranspose are O(footprint).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if (i, j) lies outside the matrix; returns 0
	// (and a nil error) for structural zeros inside a declared footprint.
	At(i, j int) (float64, error)

	// MaxNorm returns the largest absolute entry over the stored
	// footprint. A zero norm means the matrix is identically zero.
	MaxNorm() float64

	// Operate computes y = A·x.
	// Returns ErrDimensionMismatch when len(x) != Cols().
	Operate(x []float64) ([]float64, error)

	// OperateTranspose computes y = Aᵀ·x.
	// Returns ErrDimensionMismatch when len(x) != Rows().
	OperateTranspose(x []float64) ([]float64, error)

	// Transpose returns Aᵀ. Asymmetric types compute it at most once and
	// cache the result; symmetric types return the receiver itself.
	Transpose() Matrix
}

// Banded marks a square matrix whose nonzero entries are confined to the
// main diagonal plus Bandwidth() diagonals on each side.
type Banded interface {
	Matrix

	// Bandwidth returns the number of sub/super-diagonals stored.
	// Bandwidth 0 means diagonal-only.
	Bandwidth() int
}

// Symmetric is the capability tag carried by matrices that equal their
// own transpose. Symmetric-only factorizations (Cholesky, modified
// Cholesky) reject any input lacking this capability; transpose-caching
// bases refuse to attach to types that carry it.
type Symmetric interface {
	Matrix

	// IsSymmetric is a marker method; it carries no behavior.
	IsSymmetric()
}

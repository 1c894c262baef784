// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors (builder reuse,
// internal consistency violations).

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (e.g., rows <= 0, cols <= 0, or a negative bandwidth).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) lies outside
	// the matrix. Structural zeros INSIDE the matrix do not produce this
	// error; At simply returns 0 for them.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Operate with a wrong-length vector or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrOutsideFootprint is returned by builders when a write targets a
	// position outside the type's declared storage footprint (e.g. an
	// upper-triangle write on a packed-lower builder, or an out-of-band
	// write on a banded builder).
	ErrOutsideFootprint = errors.New("mat: write outside storage footprint")
)

// Panic messages for programmer errors (stable, greppable).
const (
	panicBuilderReused  = "mat: builder reused after Build"
	panicCacheSymmetric = "mat: transpose cache attached to a symmetric matrix"
)

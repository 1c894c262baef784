// SPDX-License-Identifier: MIT
// Package factor: sentinel errors shared by every executor.
//
// These cover structural rejection only. Numerical failure (a singular
// or indefinite matrix) is never an error — executors surface it as an
// absent result.

package factor

import "errors"

var (
	// ErrBadEpsilon reports a NaN or negative pivot threshold.
	ErrBadEpsilon = errors.New("factor: epsilon must be a non-negative number")

	// ErrTooLarge reports a dimension beyond the executor's supported
	// maximum.
	ErrTooLarge = errors.New("factor: matrix dimension exceeds the supported maximum")

	// ErrNotSymmetric reports a target without the Symmetric capability
	// given to a symmetric-only executor.
	ErrNotSymmetric = errors.New("factor: matrix is not symmetric")

	// ErrNotBanded reports a target without the Banded capability given
	// to a banded executor.
	ErrNotBanded = errors.New("factor: matrix is not banded")

	// ErrIllegalSolution reports a regular-solution construction with a
	// zero determinant sign or a missing inverse.
	ErrIllegalSolution = errors.New("factor: regular solution requires a non-zero sign and an inverse")
)

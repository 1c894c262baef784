// SPDX-License-Identifier: MIT
// Package factor: the Executor contract and its shared validators.

package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsolve/mat"
)

const (
	// DefaultEpsilon is the relative pivot threshold used by Apply.
	// Entries of the norm-scaled working copy at or below
	// Threshold(DefaultEpsilon) are treated as zero pivots.
	DefaultEpsilon = 1e-15

	// pivotFloor is added to every threshold so that a zero epsilon
	// still rejects denormal pivots whose reciprocal would overflow.
	pivotFloor = 1e-300
)

// Threshold converts a relative epsilon into the absolute pivot floor
// applied to the norm-scaled working copy.
func Threshold(epsilon float64) float64 { return epsilon + pivotFloor }

// ValidateEpsilon rejects NaN, infinite and negative pivot thresholds.
func ValidateEpsilon(epsilon float64) error {
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 1) || epsilon < 0 {
		return executorErrorf("ValidateEpsilon", ErrBadEpsilon)
	}

	return nil
}

// ValidateMaxDim rejects dimensions beyond an executor's maximum.
func ValidateMaxDim(n, maxDim int) error {
	if n > maxDim {
		return executorErrorf("ValidateMaxDim", ErrTooLarge)
	}

	return nil
}

// ValidateSymmetric rejects targets without the Symmetric capability.
func ValidateSymmetric(m mat.Matrix) error {
	if _, ok := m.(mat.Symmetric); !ok {
		return executorErrorf("ValidateSymmetric", ErrNotSymmetric)
	}

	return nil
}

// ValidateBanded rejects targets without the Banded capability.
func ValidateBanded(m mat.Matrix) error {
	if _, ok := m.(mat.Banded); !ok {
		return executorErrorf("ValidateBanded", ErrNotBanded)
	}

	return nil
}

// executorErrorf wraps a sentinel with the validator tag, preserving
// errors.Is matching.
func executorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

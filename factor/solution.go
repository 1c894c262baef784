// SPDX-License-Identifier: MIT
// Package factor: Solution — the result bundle pairing determinant
// info with an optional inverse.

package factor

import "github.com/katalvlaran/lvlsolve/mat"

// Solution couples a DetInfo with an optional inverse matrix.
// Invariant: Det().Sign == 0 iff the inverse is absent. The two
// constructors are the only way to build one, so the invariant holds
// everywhere.
type Solution struct {
	det     DetInfo
	inverse mat.Matrix
}

// SingularSolution returns the bundle of a singular matrix: sign 0,
// inverse absent.
func SingularSolution() Solution {
	return Solution{det: SingularDet()}
}

// RegularSolution builds the bundle of an invertible matrix.
// Returns ErrIllegalSolution when det.Sign is 0 or inverse is nil;
// the singular case must go through SingularSolution.
func RegularSolution(det DetInfo, inverse mat.Matrix) (Solution, error) {
	if det.Sign == 0 || inverse == nil {
		return Solution{}, ErrIllegalSolution
	}

	return Solution{det: det, inverse: inverse}, nil
}

// Det returns the determinant info.
func (s Solution) Det() DetInfo { return s.det }

// Inverse returns the inverse matrix and whether it is present.
func (s Solution) Inverse() (mat.Matrix, bool) {
	return s.inverse, s.inverse != nil
}

// IsSingular reports whether the bundle carries no inverse.
func (s Solution) IsSingular() bool { return s.inverse == nil }

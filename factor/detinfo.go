// SPDX-License-Identifier: MIT
// Package factor: DetInfo — determinant as a {log-magnitude, sign}
// pair.

package factor

import "math"

// DetInfo represents a determinant without materializing its value:
// LogAbs holds log|det| and Sign holds −1, 0 or +1. Sign 0 marks a
// singular matrix, with LogAbs conventionally −Inf.
type DetInfo struct {
	// LogAbs is the natural log of the determinant magnitude.
	LogAbs float64
	// Sign is −1, 0 or +1.
	Sign int
}

// SingularDet returns the DetInfo of a singular matrix.
func SingularDet() DetInfo {
	return DetInfo{LogAbs: math.Inf(-1), Sign: 0}
}

// Value materializes sign·exp(LogAbs). Overflows to ±Inf and
// underflows to ±0 exactly as exp does; prefer LogAbs and Sign for
// large or tiny determinants.
func (d DetInfo) Value() float64 {
	return float64(d.Sign) * math.Exp(d.LogAbs)
}

// Mul combines two determinant infos: signs multiply, log-magnitudes
// add. Singularity is absorbing.
func (d DetInfo) Mul(o DetInfo) DetInfo {
	if d.Sign == 0 || o.Sign == 0 {
		return SingularDet()
	}

	return DetInfo{LogAbs: d.LogAbs + o.LogAbs, Sign: d.Sign * o.Sign}
}

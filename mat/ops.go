// SPDX-License-Identifier: MIT
// Package mat: chain multiplication over the Matrix interface.

package mat

// Mul multiplies a chain of matrices left to right and materializes the
// product as a Dense. Each column of the result is produced by pushing
// a unit vector through the chain right to left, so structured operands
// (banded, diagonal, triangular, permutation) contribute their cheap
// Operate instead of a generic O(n³) step.
//
// Returns ErrNilMatrix for an empty chain or a nil operand and
// ErrDimensionMismatch when adjacent shapes disagree.
// Complexity: O(cols · Σ cost(Operateᵢ)).
func Mul(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, ErrNilMatrix
	}
	var i int
	for i = 0; i < len(ms); i++ {
		if err := ValidateNotNil(ms[i]); err != nil {
			return nil, err
		}
	}
	for i = 0; i < len(ms)-1; i++ {
		if err := ValidateMulCompatible(ms[i], ms[i+1]); err != nil {
			return nil, err
		}
	}

	rows := ms[0].Rows()
	cols := ms[len(ms)-1].Cols()
	data := make([]float64, rows*cols)
	e := make([]float64, cols)

	var j, r, k int
	var col []float64
	var err error
	for j = 0; j < cols; j++ {
		e[j] = 1
		col = e
		for k = len(ms) - 1; k >= 0; k-- {
			if col, err = ms[k].Operate(col); err != nil {
				return nil, err
			}
		}
		e[j] = 0
		for r = 0; r < rows; r++ {
			data[r*cols+j] = col[r]
		}
	}

	return newDense(rows, cols, data), nil
}

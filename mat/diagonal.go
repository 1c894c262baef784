// SPDX-License-Identifier: MIT
// Package mat: Diagonal — an immutable diagonal matrix with closed-form
// inverse and determinant accessors.

package mat

import "math"

// Diagonal is an immutable n×n diagonal matrix. It is symmetric by
// construction and supports O(n) products and a closed-form inverse.
type Diagonal struct {
	d    []float64
	norm float64
	inv  *Memo[*Diagonal]
}

// NewDiagonal builds a diagonal matrix from the given entries,
// copying the slice. Returns ErrBadShape for an empty slice.
func NewDiagonal(d []float64) (*Diagonal, error) {
	if len(d) == 0 {
		return nil, ErrBadShape
	}
	cp := make([]float64, len(d))
	copy(cp, d)

	return newDiagonal(cp), nil
}

// newDiagonal adopts the slice without copying. Internal fast path for
// factorizations that hand over freshly built storage.
func newDiagonal(d []float64) *Diagonal {
	m := &Diagonal{d: d, norm: maxAbs(d)}
	m.inv = NewMemo(m.computeInverse)

	return m
}

// Rows returns the dimension. Complexity: O(1).
func (m *Diagonal) Rows() int { return len(m.d) }

// Cols returns the dimension. Complexity: O(1).
func (m *Diagonal) Cols() int { return len(m.d) }

// MaxNorm returns the largest absolute diagonal entry.
func (m *Diagonal) MaxNorm() float64 { return m.norm }

// IsSymmetric marks Diagonal as structurally symmetric.
func (m *Diagonal) IsSymmetric() {}

// At retrieves the element at (i, j): the stored entry on the diagonal,
// a structural zero elsewhere. Complexity: O(1).
func (m *Diagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrOutOfRange
	}
	if i != j {
		return 0, nil
	}

	return m.d[i], nil
}

// Operate computes y = D·x. Complexity: O(n).
func (m *Diagonal) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, len(m.d)); err != nil {
		return nil, err
	}

	y := make([]float64, len(m.d))
	var i int
	for i = 0; i < len(m.d); i++ {
		y[i] = m.d[i] * x[i]
	}

	return y, nil
}

// OperateTranspose computes y = Dᵀ·x == D·x.
func (m *Diagonal) OperateTranspose(x []float64) ([]float64, error) {
	return m.Operate(x)
}

// Transpose returns the receiver: a diagonal matrix is its own
// transpose.
func (m *Diagonal) Transpose() Matrix { return m }

// Inverse returns D⁻¹, computed at most once and cached. A zero entry
// inverts to ±Inf; callers that reject singular diagonals must check
// SignOfDeterminant first.
func (m *Diagonal) Inverse() *Diagonal { return m.inv.Get() }

func (m *Diagonal) computeInverse() *Diagonal {
	inv := make([]float64, len(m.d))
	var i int
	for i = 0; i < len(m.d); i++ {
		inv[i] = 1 / m.d[i]
	}

	return newDiagonal(inv)
}

// SignOfDeterminant returns the sign of ∏ dᵢ: −1, 0 or +1.
// Complexity: O(n).
func (m *Diagonal) SignOfDeterminant() int {
	sign := 1
	var i int
	for i = 0; i < len(m.d); i++ {
		switch {
		case m.d[i] == 0:
			return 0
		case m.d[i] < 0:
			sign = -sign
		}
	}

	return sign
}

// LogAbsDeterminant returns Σ log|dᵢ| (−Inf when any entry is zero).
// Complexity: O(n).
func (m *Diagonal) LogAbsDeterminant() float64 {
	var sum float64
	var i int
	for i = 0; i < len(m.d); i++ {
		sum += math.Log(math.Abs(m.d[i]))
	}

	return sum
}

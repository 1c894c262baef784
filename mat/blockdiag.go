// SPDX-License-Identifier: MIT
// Package mat: BlockDiagonal — an immutable symmetric block-diagonal
// matrix made of 1×1 scalars and symmetric 2×2 blocks, as produced by
// pivoted symmetric-indefinite eliminations.

package mat

import "math"

// BlockDiagonal is an immutable symmetric matrix whose only nonzeros
// are the diagonal and first sub/super-diagonal entries belonging to
// 2×2 blocks. Inverse and determinant are closed-form per block.
type BlockDiagonal struct {
	d    []float64 // main diagonal, length n
	sub  []float64 // sub[i] == entry (i+1, i), nonzero only at block starts
	norm float64
	inv  *Memo[*BlockDiagonal]
}

func newBlockDiagonal(d, sub []float64) *BlockDiagonal {
	m := &BlockDiagonal{d: d, sub: sub}
	m.norm = maxAbs(d)
	if s := maxAbs(sub); s > m.norm {
		m.norm = s
	}
	m.inv = NewMemo(m.computeInverse)

	return m
}

// Rows returns the dimension. Complexity: O(1).
func (m *BlockDiagonal) Rows() int { return len(m.d) }

// Cols returns the dimension. Complexity: O(1).
func (m *BlockDiagonal) Cols() int { return len(m.d) }

// MaxNorm returns the largest absolute stored entry.
func (m *BlockDiagonal) MaxNorm() float64 { return m.norm }

// IsSymmetric marks BlockDiagonal as structurally symmetric.
func (m *BlockDiagonal) IsSymmetric() {}

// At retrieves the element at (i, j). Entries outside the tridiagonal
// footprint, and tridiagonal slots not covered by a 2×2 block, are
// structural zeros. Complexity: O(1).
func (m *BlockDiagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrOutOfRange
	}
	switch {
	case i == j:
		return m.d[i], nil
	case i == j+1:
		return m.sub[j], nil
	case j == i+1:
		return m.sub[i], nil
	default:
		return 0, nil
	}
}

// Operate computes y = M·x. Complexity: O(n).
func (m *BlockDiagonal) Operate(x []float64) ([]float64, error) {
	n := len(m.d)
	if err := ValidateVecLen(x, n); err != nil {
		return nil, err
	}

	y := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		y[i] = m.d[i] * x[i]
		if i > 0 && m.sub[i-1] != 0 {
			y[i] += m.sub[i-1] * x[i-1]
		}
		if i < n-1 && m.sub[i] != 0 {
			y[i] += m.sub[i] * x[i+1]
		}
	}

	return y, nil
}

// OperateTranspose computes y = Mᵀ·x == M·x.
func (m *BlockDiagonal) OperateTranspose(x []float64) ([]float64, error) {
	return m.Operate(x)
}

// Transpose returns the receiver: a symmetric matrix is its own
// transpose.
func (m *BlockDiagonal) Transpose() Matrix { return m }

// Inverse returns M⁻¹, computed block by block at most once and cached.
// Scalar blocks invert to 1/d; 2×2 blocks invert through their
// determinant. A singular block inverts to ±Inf entries; callers that
// reject singular factors must check SignOfDeterminant first.
func (m *BlockDiagonal) Inverse() *BlockDiagonal { return m.inv.Get() }

func (m *BlockDiagonal) computeInverse() *BlockDiagonal {
	n := len(m.d)
	d := make([]float64, n)
	sub := make([]float64, n-1)
	var i int
	var a, b, c, det float64
	for i = 0; i < n; i++ {
		if i < n-1 && m.sub[i] != 0 {
			// [[a, b], [b, c]]⁻¹ = [[c, −b], [−b, a]] / (a·c − b²)
			a, b, c = m.d[i], m.sub[i], m.d[i+1]
			det = a*c - b*b
			d[i] = c / det
			d[i+1] = a / det
			sub[i] = -b / det
			i++
			continue
		}
		d[i] = 1 / m.d[i]
	}

	return newBlockDiagonal(d, sub)
}

// SignOfDeterminant returns the sign of det M: −1, 0 or +1, as the
// product of per-block determinant signs. Complexity: O(n).
func (m *BlockDiagonal) SignOfDeterminant() int {
	sign := 1
	var i int
	var det float64
	for i = 0; i < len(m.d); i++ {
		det = m.d[i]
		if i < len(m.d)-1 && m.sub[i] != 0 {
			det = m.d[i]*m.d[i+1] - m.sub[i]*m.sub[i]
			i++
		}
		switch {
		case det == 0:
			return 0
		case det < 0:
			sign = -sign
		}
	}

	return sign
}

// LogAbsDeterminant returns Σ log|det blockᵢ| (−Inf when any block is
// singular). Complexity: O(n).
func (m *BlockDiagonal) LogAbsDeterminant() float64 {
	var sum, det float64
	var i int
	for i = 0; i < len(m.d); i++ {
		det = m.d[i]
		if i < len(m.d)-1 && m.sub[i] != 0 {
			det = m.d[i]*m.d[i+1] - m.sub[i]*m.sub[i]
			i++
		}
		sum += math.Log(math.Abs(det))
	}

	return sum
}

// BlockDiagonalBuilder appends 1×1 and 2×2 blocks in order and freezes
// them into an immutable BlockDiagonal.
type BlockDiagonalBuilder struct {
	n     int
	next  int
	d     []float64
	sub   []float64
	built bool
}

// NewBlockDiagonalBuilder allocates a builder for an n×n block-diagonal
// matrix. Blocks are appended left to right; Build requires the full
// dimension to be covered.
func NewBlockDiagonalBuilder(n int) (*BlockDiagonalBuilder, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	sub := make([]float64, 0)
	if n > 1 {
		sub = make([]float64, n-1)
	}

	return &BlockDiagonalBuilder{n: n, d: make([]float64, n), sub: sub}, nil
}

// AppendScalar appends a 1×1 block with value v.
func (b *BlockDiagonalBuilder) AppendScalar(v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if b.next >= b.n {
		return ErrOutOfRange
	}
	b.d[b.next] = v
	b.next++

	return nil
}

// AppendBlock appends a symmetric 2×2 block [[a, sub], [sub, c]].
func (b *BlockDiagonalBuilder) AppendBlock(a, c, sub float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if b.next+1 >= b.n {
		return ErrOutOfRange
	}
	b.d[b.next] = a
	b.d[b.next+1] = c
	b.sub[b.next] = sub
	b.next += 2

	return nil
}

// Build freezes the builder and returns the immutable matrix.
// Returns ErrBadShape when the appended blocks do not cover the full
// dimension.
func (b *BlockDiagonalBuilder) Build() (*BlockDiagonal, error) {
	if b.built {
		panic(panicBuilderReused)
	}
	if b.next != b.n {
		return nil, ErrBadShape
	}
	b.built = true
	m := newBlockDiagonal(b.d, b.sub)
	b.d, b.sub = nil, nil

	return m, nil
}

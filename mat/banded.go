// SPDX-License-Identifier: MIT
// Package mat: BandedDense — square band storage.
//
// Layout invariant (load-bearing): for |i−j| ≤ k the entry (i, j) lives
// at index = i*(2k+1) + (j−i+k). Entries with |i−j| > k are structural
// zeros: readable as 0, never writable.

package mat

// BandedDense is an immutable square matrix whose nonzero entries are
// confined to the main diagonal plus k sub- and k super-diagonals.
type BandedDense struct {
	n    int       // dimension (square)
	k    int       // bandwidth: diagonals stored on each side
	data []float64 // band storage, length n*(2k+1)
	norm float64
	tc   transposeCache
}

func newBandedDense(n, k int, data []float64) *BandedDense {
	b := &BandedDense{n: n, k: k, data: data, norm: maxAbs(data)}
	b.tc = newTransposeCache(b, b.computeTranspose)

	return b
}

// Rows returns the dimension. Complexity: O(1).
func (b *BandedDense) Rows() int { return b.n }

// Cols returns the dimension. Complexity: O(1).
func (b *BandedDense) Cols() int { return b.n }

// Bandwidth returns the number of sub/super-diagonals stored.
func (b *BandedDense) Bandwidth() int { return b.k }

// MaxNorm returns the largest absolute entry inside the band.
func (b *BandedDense) MaxNorm() float64 { return b.norm }

// At retrieves the element at (i, j): ErrOutOfRange outside the matrix,
// 0 for structural zeros beyond the band. Complexity: O(1).
func (b *BandedDense) At(i, j int) (float64, error) {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return 0, ErrOutOfRange
	}
	if j-i > b.k || i-j > b.k {
		return 0, nil // structural zero inside the declared footprint
	}

	return b.data[i*(2*b.k+1)+(j-i+b.k)], nil
}

// Operate computes y = A·x touching only in-band entries.
// Complexity: O(n*k).
func (b *BandedDense) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, b.n); err != nil {
		return nil, err
	}

	width := 2*b.k + 1
	y := make([]float64, b.n)
	var i, j, lo, hi int
	var acc float64
	for i = 0; i < b.n; i++ {
		lo, hi = i-b.k, i+b.k
		if lo < 0 {
			lo = 0
		}
		if hi > b.n-1 {
			hi = b.n - 1
		}
		acc = 0
		for j = lo; j <= hi; j++ {
			acc += b.data[i*width+(j-i+b.k)] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// OperateTranspose computes y = Aᵀ·x by scattering each in-band row.
// Complexity: O(n*k).
func (b *BandedDense) OperateTranspose(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, b.n); err != nil {
		return nil, err
	}

	width := 2*b.k + 1
	y := make([]float64, b.n)
	var i, j, lo, hi int
	var xv float64
	for i = 0; i < b.n; i++ {
		xv = x[i]
		if xv == 0 {
			continue
		}
		lo, hi = i-b.k, i+b.k
		if lo < 0 {
			lo = 0
		}
		if hi > b.n-1 {
			hi = b.n - 1
		}
		for j = lo; j <= hi; j++ {
			y[j] += b.data[i*width+(j-i+b.k)] * xv
		}
	}

	return y, nil
}

// Transpose returns Aᵀ as a BandedDense with the same bandwidth,
// computed at most once and cached.
func (b *BandedDense) Transpose() Matrix { return b.tc.transpose() }

func (b *BandedDense) computeTranspose() Matrix {
	width := 2*b.k + 1
	t := make([]float64, len(b.data))
	var i, j, lo, hi int
	for i = 0; i < b.n; i++ {
		lo, hi = i-b.k, i+b.k
		if lo < 0 {
			lo = 0
		}
		if hi > b.n-1 {
			hi = b.n - 1
		}
		for j = lo; j <= hi; j++ {
			// (i, j) of A becomes (j, i) of Aᵀ; the offset mirrors.
			t[j*width+(i-j+b.k)] = b.data[i*width+(j-i+b.k)]
		}
	}

	return newBandedDense(b.n, b.k, t)
}

// BandedBuilder accumulates in-band entries for an immutable BandedDense.
type BandedBuilder struct {
	n, k  int
	data  []float64
	built bool
}

// NewBandedBuilder allocates a zeroed n×n band builder with bandwidth k.
// Returns ErrBadShape when n <= 0, k < 0, or k >= n.
func NewBandedBuilder(n, k int) (*BandedBuilder, error) {
	if n <= 0 || k < 0 || k >= n {
		return nil, ErrBadShape
	}

	return &BandedBuilder{n: n, k: k, data: make([]float64, n*(2*k+1))}, nil
}

// Set assigns v at (i, j). Returns ErrOutOfRange outside the matrix and
// ErrOutsideFootprint for positions beyond the declared band.
func (b *BandedBuilder) Set(i, j int, v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return ErrOutOfRange
	}
	if j-i > b.k || i-j > b.k {
		return ErrOutsideFootprint
	}
	b.data[i*(2*b.k+1)+(j-i+b.k)] = v

	return nil
}

// Build freezes the builder and returns the immutable matrix.
func (b *BandedBuilder) Build() *BandedDense {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	m := newBandedDense(b.n, b.k, b.data)
	b.data = nil

	return m
}

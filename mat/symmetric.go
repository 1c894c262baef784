// SPDX-License-Identifier: MIT
// Package mat: SymmetricDense and BandedSymmetric — packed-lower storage
// for matrices that equal their own transpose.
//
// Layout invariants (load-bearing):
//
//	SymmetricDense:  (i, j) with j ≤ i lives at index = i*(i+1)/2 + j.
//	BandedSymmetric: (i, j) with i−k ≤ j ≤ i lives at
//	                 index = i*(k+1) + (j−i+k).
//
// Reads above the diagonal mirror through symmetry; only the lower
// triangle (or lower band) is ever stored.

package mat

// SymmetricDense is an immutable symmetric matrix stored as a packed
// lower triangle. It carries the Symmetric capability; Transpose returns
// the receiver itself — no cache is needed.
type SymmetricDense struct {
	n    int
	data []float64 // packed lower triangle, length n*(n+1)/2
	norm float64
}

func newSymmetricDense(n int, data []float64) *SymmetricDense {
	return &SymmetricDense{n: n, data: data, norm: maxAbs(data)}
}

// IsSymmetric marks the symmetric capability.
func (s *SymmetricDense) IsSymmetric() {}

// Rows returns the dimension. Complexity: O(1).
func (s *SymmetricDense) Rows() int { return s.n }

// Cols returns the dimension. Complexity: O(1).
func (s *SymmetricDense) Cols() int { return s.n }

// MaxNorm returns the largest absolute entry. Complexity: O(1).
func (s *SymmetricDense) MaxNorm() float64 { return s.norm }

// At retrieves the element at (i, j), mirroring reads above the
// diagonal. Complexity: O(1).
func (s *SymmetricDense) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, ErrOutOfRange
	}
	if j > i {
		i, j = j, i // mirror into the stored triangle
	}

	return s.data[i*(i+1)/2+j], nil
}

// Operate computes y = A·x using each packed entry once for both of its
// mirrored positions. Complexity: O(n²/2).
func (s *SymmetricDense) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.n); err != nil {
		return nil, err
	}

	y := make([]float64, s.n)
	var i, j, base int
	var v float64
	for i = 0; i < s.n; i++ {
		base = i * (i + 1) / 2
		for j = 0; j < i; j++ {
			v = s.data[base+j]
			y[i] += v * x[j]
			y[j] += v * x[i]
		}
		y[i] += s.data[base+i] * x[i]
	}

	return y, nil
}

// OperateTranspose equals Operate for a symmetric matrix.
func (s *SymmetricDense) OperateTranspose(x []float64) ([]float64, error) {
	return s.Operate(x)
}

// Transpose returns the receiver: a symmetric matrix is its own
// transpose.
func (s *SymmetricDense) Transpose() Matrix { return s }

// SymmetricBuilder accumulates lower-triangle entries for an immutable
// SymmetricDense. Writes above the diagonal mirror into the triangle.
type SymmetricBuilder struct {
	n     int
	data  []float64
	built bool
}

// NewSymmetricBuilder allocates a zeroed n×n packed-lower builder.
func NewSymmetricBuilder(n int) (*SymmetricBuilder, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &SymmetricBuilder{n: n, data: make([]float64, n*(n+1)/2)}, nil
}

// Set assigns v at (i, j) and, implicitly, at (j, i).
func (b *SymmetricBuilder) Set(i, j int, v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return ErrOutOfRange
	}
	if j > i {
		i, j = j, i
	}
	b.data[i*(i+1)/2+j] = v

	return nil
}

// Build freezes the builder and returns the immutable matrix.
func (b *SymmetricBuilder) Build() *SymmetricDense {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	m := newSymmetricDense(b.n, b.data)
	b.data = nil

	return m
}

// BandedSymmetric is an immutable symmetric band matrix stored as a
// packed lower band: the diagonal plus k sub-diagonals per row. It
// carries both the Symmetric and Banded capabilities.
type BandedSymmetric struct {
	n    int
	k    int
	data []float64 // packed lower band, length n*(k+1)
	norm float64
}

func newBandedSymmetric(n, k int, data []float64) *BandedSymmetric {
	return &BandedSymmetric{n: n, k: k, data: data, norm: maxAbs(data)}
}

// IsSymmetric marks the symmetric capability.
func (s *BandedSymmetric) IsSymmetric() {}

// Rows returns the dimension. Complexity: O(1).
func (s *BandedSymmetric) Rows() int { return s.n }

// Cols returns the dimension. Complexity: O(1).
func (s *BandedSymmetric) Cols() int { return s.n }

// Bandwidth returns the number of sub-diagonals stored (the matrix has
// the same count of super-diagonals through symmetry).
func (s *BandedSymmetric) Bandwidth() int { return s.k }

// MaxNorm returns the largest absolute entry inside the band.
func (s *BandedSymmetric) MaxNorm() float64 { return s.norm }

// At retrieves the element at (i, j): mirror above the diagonal, 0 for
// structural zeros beyond the band. Complexity: O(1).
func (s *BandedSymmetric) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, ErrOutOfRange
	}
	if j > i {
		i, j = j, i
	}
	if i-j > s.k {
		return 0, nil // structural zero
	}

	return s.data[i*(s.k+1)+(j-i+s.k)], nil
}

// Operate computes y = A·x touching only in-band packed entries.
// Complexity: O(n*k).
func (s *BandedSymmetric) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, s.n); err != nil {
		return nil, err
	}

	width := s.k + 1
	y := make([]float64, s.n)
	var i, j, lo int
	var v float64
	for i = 0; i < s.n; i++ {
		lo = i - s.k
		if lo < 0 {
			lo = 0
		}
		for j = lo; j < i; j++ {
			v = s.data[i*width+(j-i+s.k)]
			y[i] += v * x[j]
			y[j] += v * x[i]
		}
		y[i] += s.data[i*width+s.k] * x[i]
	}

	return y, nil
}

// OperateTranspose equals Operate for a symmetric matrix.
func (s *BandedSymmetric) OperateTranspose(x []float64) ([]float64, error) {
	return s.Operate(x)
}

// Transpose returns the receiver.
func (s *BandedSymmetric) Transpose() Matrix { return s }

// BandedSymmetricBuilder accumulates packed lower-band entries for an
// immutable BandedSymmetric.
type BandedSymmetricBuilder struct {
	n, k  int
	data  []float64
	built bool
}

// NewBandedSymmetricBuilder allocates a zeroed n×n packed band builder
// with bandwidth k.
func NewBandedSymmetricBuilder(n, k int) (*BandedSymmetricBuilder, error) {
	if n <= 0 || k < 0 || k >= n {
		return nil, ErrBadShape
	}

	return &BandedSymmetricBuilder{n: n, k: k, data: make([]float64, n*(k+1))}, nil
}

// Set assigns v at (i, j) and, implicitly, at (j, i).
// Returns ErrOutsideFootprint for positions beyond the band.
func (b *BandedSymmetricBuilder) Set(i, j int, v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return ErrOutOfRange
	}
	if j > i {
		i, j = j, i
	}
	if i-j > b.k {
		return ErrOutsideFootprint
	}
	b.data[i*(b.k+1)+(j-i+b.k)] = v

	return nil
}

// Build freezes the builder and returns the immutable matrix.
func (b *BandedSymmetricBuilder) Build() *BandedSymmetric {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	m := newBandedSymmetric(b.n, b.k, b.data)
	b.data = nil

	return m
}

// SPDX-License-Identifier: MIT
// Package mat: Dense — row-major rectangular storage.
//
// Layout invariant (load-bearing): index = i*cols + j.

package mat

import "math"

// Dense is an immutable row-major matrix of float64 values.
// Built via DenseBuilder or NewDense; never mutated afterwards.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
	norm float64   // max |entry|, fixed at construction
	tc   transposeCache
}

// NewDense constructs an immutable r×c Dense from row-major data.
// The slice is copied; the caller keeps ownership of its argument.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}

	owned := make([]float64, len(data))
	copy(owned, data)

	return newDense(rows, cols, owned), nil
}

// newDense adopts data (no copy) and wires the transpose cache.
// Internal: callers guarantee shape and exclusive ownership of data.
func newDense(rows, cols int, data []float64) *Dense {
	d := &Dense{r: rows, c: cols, data: data, norm: maxAbs(data)}
	d.tc = newTransposeCache(d, d.computeTranspose)

	return d
}

// maxAbs returns the largest absolute value in data (0 for empty).
func maxAbs(data []float64) float64 {
	norm := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > norm {
			norm = a
		}
	}

	return norm
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// MaxNorm returns the largest absolute entry. Complexity: O(1).
func (d *Dense) MaxNorm() float64 { return d.norm }

// At retrieves the element at (i, j) or ErrOutOfRange. Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, ErrOutOfRange
	}

	return d.data[i*d.c+j], nil
}

// Operate computes y = A·x with a single flat pass per row.
// Complexity: O(r*c).
func (d *Dense) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, d.c); err != nil {
		return nil, err
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// OperateTranspose computes y = Aᵀ·x without materializing Aᵀ.
// Complexity: O(r*c).
func (d *Dense) OperateTranspose(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, d.r); err != nil {
		return nil, err
	}

	y := make([]float64, d.c)
	var i, j, base int
	var xv float64
	for i = 0; i < d.r; i++ {
		xv = x[i]
		if xv == 0 {
			continue // skip zero rows of the accumulation
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[j] += d.data[base+j] * xv
		}
	}

	return y, nil
}

// Transpose returns Aᵀ, computed at most once and cached.
func (d *Dense) Transpose() Matrix { return d.tc.transpose() }

// computeTranspose materializes the c×r transpose. Production function
// for the cache cell; not exposed publicly.
func (d *Dense) computeTranspose() Matrix {
	t := make([]float64, len(d.data))
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			t[j*d.r+i] = d.data[base+j]
		}
	}

	return newDense(d.c, d.r, t)
}

// DenseBuilder accumulates entries for an immutable Dense.
// Zero-value cells stay 0. Build freezes the builder: any later Set or
// Build panics — reuse after Build is a programmer error.
type DenseBuilder struct {
	r, c  int
	data  []float64
	built bool
}

// NewDenseBuilder allocates a zeroed rows×cols builder.
// Returns ErrBadShape for non-positive dimensions.
func NewDenseBuilder(rows, cols int) (*DenseBuilder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &DenseBuilder{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Set assigns value v at (i, j). Returns ErrOutOfRange on bad indices.
func (b *DenseBuilder) Set(i, j int, v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return ErrOutOfRange
	}
	b.data[i*b.c+j] = v

	return nil
}

// Build freezes the builder and returns the immutable matrix.
func (b *DenseBuilder) Build() *Dense {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	d := newDense(b.r, b.c, b.data)
	b.data = nil // the matrix owns the storage now

	return d
}

// SPDX-License-Identifier: MIT
// Package mat: LowerTriangular — packed unit lower-triangular storage —
// and its transposed unit-upper view.
//
// Layout invariant (load-bearing): the strict lower entry (i, j), j < i,
// lives at index = i*(i−1)/2 + j. The unit diagonal is implicit and
// never stored. Unit upper-triangular factors are represented as the
// transpose view of a LowerTriangular, reusing the same machinery.

package mat

// LowerTriangular is an immutable unit lower-triangular matrix: ones on
// the diagonal, packed strict lower entries below, zeros above.
type LowerTriangular struct {
	n    int
	data []float64 // packed strict lower, length n*(n-1)/2
	norm float64
	tc   transposeCache
	inv  *Memo[*LowerTriangular]
}

func newLowerTriangular(n int, data []float64) *LowerTriangular {
	l := &LowerTriangular{n: n, data: data}
	l.norm = maxAbs(data)
	if l.norm < 1 {
		l.norm = 1 // the implicit unit diagonal is always present
	}
	l.tc = newTransposeCache(l, l.computeTranspose)
	l.inv = NewMemo(l.computeInverse)

	return l
}

// Rows returns the dimension. Complexity: O(1).
func (l *LowerTriangular) Rows() int { return l.n }

// Cols returns the dimension. Complexity: O(1).
func (l *LowerTriangular) Cols() int { return l.n }

// MaxNorm returns the largest absolute entry (at least 1, from the unit
// diagonal).
func (l *LowerTriangular) MaxNorm() float64 { return l.norm }

// At retrieves the element at (i, j): 1 on the diagonal, 0 above,
// packed value below. Complexity: O(1).
func (l *LowerTriangular) At(i, j int) (float64, error) {
	if i < 0 || i >= l.n || j < 0 || j >= l.n {
		return 0, ErrOutOfRange
	}
	switch {
	case i == j:
		return 1, nil
	case j > i:
		return 0, nil // structural zero above the diagonal
	default:
		return l.data[i*(i-1)/2+j], nil
	}
}

// Operate computes y = L·x. Complexity: O(n²/2).
func (l *LowerTriangular) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, l.n); err != nil {
		return nil, err
	}

	y := make([]float64, l.n)
	var i, j, base int
	var acc float64
	for i = 0; i < l.n; i++ {
		acc = x[i] // unit diagonal contribution
		base = i * (i - 1) / 2
		for j = 0; j < i; j++ {
			acc += l.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// OperateTranspose computes y = Lᵀ·x. Complexity: O(n²/2).
func (l *LowerTriangular) OperateTranspose(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, l.n); err != nil {
		return nil, err
	}

	y := make([]float64, l.n)
	copy(y, x) // unit diagonal contribution
	var i, j, base int
	var xv float64
	for i = 1; i < l.n; i++ {
		xv = x[i]
		if xv == 0 {
			continue
		}
		base = i * (i - 1) / 2
		for j = 0; j < i; j++ {
			y[j] += l.data[base+j] * xv
		}
	}

	return y, nil
}

// Transpose returns the unit upper-triangular view Lᵀ, computed at most
// once and cached.
func (l *LowerTriangular) Transpose() Matrix { return l.tc.transpose() }

func (l *LowerTriangular) computeTranspose() Matrix { return &unitUpper{base: l} }

// Inverse returns L⁻¹, itself unit lower-triangular, computed at most
// once via forward substitution and cached for the lifetime of the
// receiver. Complexity of the single production: O(n³/6).
func (l *LowerTriangular) Inverse() *LowerTriangular { return l.inv.Get() }

func (l *LowerTriangular) computeInverse() *LowerTriangular {
	inv := make([]float64, len(l.data))
	var c, r, t int
	var acc float64
	for c = 0; c < l.n-1; c++ {
		for r = c + 1; r < l.n; r++ {
			// m[r][c] = −(l[r][c] + Σ_{t=c+1}^{r−1} l[r][t]·m[t][c])
			acc = l.data[r*(r-1)/2+c]
			for t = c + 1; t < r; t++ {
				acc += l.data[r*(r-1)/2+t] * inv[t*(t-1)/2+c]
			}
			inv[r*(r-1)/2+c] = -acc
		}
	}

	return newLowerTriangular(l.n, inv)
}

// unitUpper is the transpose view of a LowerTriangular: a unit
// upper-triangular matrix that delegates every operation to its base.
type unitUpper struct {
	base *LowerTriangular
}

// Rows returns the dimension.
func (u *unitUpper) Rows() int { return u.base.n }

// Cols returns the dimension.
func (u *unitUpper) Cols() int { return u.base.n }

// MaxNorm returns the base norm (transposition preserves it).
func (u *unitUpper) MaxNorm() float64 { return u.base.norm }

// At retrieves the element at (i, j) by mirroring into the base.
func (u *unitUpper) At(i, j int) (float64, error) { return u.base.At(j, i) }

// Operate computes y = Lᵀ·x via the base's transposed product.
func (u *unitUpper) Operate(x []float64) ([]float64, error) {
	return u.base.OperateTranspose(x)
}

// OperateTranspose computes y = L·x via the base's product.
func (u *unitUpper) OperateTranspose(x []float64) ([]float64, error) {
	return u.base.Operate(x)
}

// Transpose returns the base: (Lᵀ)ᵀ == L.
func (u *unitUpper) Transpose() Matrix { return u.base }

// Inverse returns (Lᵀ)⁻¹ == (L⁻¹)ᵀ, sharing the base's cached inverse.
func (u *unitUpper) Inverse() Matrix { return u.base.Inverse().Transpose() }

// LowerTriangularBuilder accumulates strict lower entries for an
// immutable LowerTriangular. The unit diagonal is implicit.
type LowerTriangularBuilder struct {
	n     int
	data  []float64
	built bool
}

// NewLowerTriangularBuilder allocates a zeroed n×n unit-lower builder.
func NewLowerTriangularBuilder(n int) (*LowerTriangularBuilder, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &LowerTriangularBuilder{n: n, data: make([]float64, n*(n-1)/2)}, nil
}

// Set assigns v at strict lower position (i, j), j < i.
// Returns ErrOutsideFootprint for diagonal or upper positions.
func (b *LowerTriangularBuilder) Set(i, j int, v float64) error {
	if b.built {
		panic(panicBuilderReused)
	}
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return ErrOutOfRange
	}
	if j >= i {
		return ErrOutsideFootprint
	}
	b.data[i*(i-1)/2+j] = v

	return nil
}

// Build freezes the builder and returns the immutable matrix.
func (b *LowerTriangularBuilder) Build() *LowerTriangular {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	m := newLowerTriangular(b.n, b.data)
	b.data = nil

	return m
}

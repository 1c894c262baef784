// SPDX-License-Identifier: MIT
// Package mat: Permutation — an immutable row-permutation matrix with
// O(n) products and a parity sign.
//
// Convention (load-bearing): (P·x)[i] = x[perm[i]], i.e. the single 1
// of row i sits in column perm[i]. Under this convention the builder's
// Swap(i, j) exchanges rows i and j of whatever P multiplies from the
// left. A permutation matrix is orthogonal, so P⁻¹ == Pᵀ and the two
// caches collapse into one.

package mat

// Permutation is an immutable n×n permutation matrix.
type Permutation struct {
	perm []int
	sign int
	oc   orthoCache
}

// NewPermutation builds a permutation from the row map perm, where row
// i picks source index perm[i]. The slice is copied and validated to be
// a bijection. Returns ErrBadShape for an empty or non-bijective map.
func NewPermutation(perm []int) (*Permutation, error) {
	n := len(perm)
	if n == 0 {
		return nil, ErrBadShape
	}
	seen := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		if perm[i] < 0 || perm[i] >= n || seen[perm[i]] {
			return nil, ErrBadShape
		}
		seen[perm[i]] = true
	}
	cp := make([]int, n)
	copy(cp, perm)

	return newPermutation(cp, signOf(cp)), nil
}

func newPermutation(perm []int, sign int) *Permutation {
	p := &Permutation{perm: perm, sign: sign}
	p.oc = newOrthoCache(p, p.computeTranspose)

	return p
}

// signOf computes the parity of perm by counting cycle lengths.
// Complexity: O(n).
func signOf(perm []int) int {
	n := len(perm)
	visited := make([]bool, n)
	sign := 1
	var i, j, length int
	for i = 0; i < n; i++ {
		if visited[i] {
			continue
		}
		length = 0
		for j = i; !visited[j]; j = perm[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// Rows returns the dimension. Complexity: O(1).
func (p *Permutation) Rows() int { return len(p.perm) }

// Cols returns the dimension. Complexity: O(1).
func (p *Permutation) Cols() int { return len(p.perm) }

// MaxNorm returns 1: every permutation matrix has unit entries only.
func (p *Permutation) MaxNorm() float64 { return 1 }

// Sign returns the permutation parity: +1 for even, −1 for odd.
func (p *Permutation) Sign() int { return p.sign }

// At retrieves the element at (i, j): 1 when j == perm[i], else a
// structural zero. Complexity: O(1).
func (p *Permutation) At(i, j int) (float64, error) {
	n := len(p.perm)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrOutOfRange
	}
	if p.perm[i] == j {
		return 1, nil
	}

	return 0, nil
}

// Operate computes y = P·x, i.e. y[i] = x[perm[i]]. Complexity: O(n).
func (p *Permutation) Operate(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, len(p.perm)); err != nil {
		return nil, err
	}

	y := make([]float64, len(p.perm))
	var i int
	for i = 0; i < len(p.perm); i++ {
		y[i] = x[p.perm[i]]
	}

	return y, nil
}

// OperateTranspose computes y = Pᵀ·x, i.e. y[perm[i]] = x[i].
// Complexity: O(n).
func (p *Permutation) OperateTranspose(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, len(p.perm)); err != nil {
		return nil, err
	}

	y := make([]float64, len(p.perm))
	var i int
	for i = 0; i < len(p.perm); i++ {
		y[p.perm[i]] = x[i]
	}

	return y, nil
}

// Transpose returns Pᵀ == P⁻¹, computed at most once and shared with
// Inverse.
func (p *Permutation) Transpose() Matrix { return p.oc.transposeInverse() }

// Inverse returns P⁻¹ == Pᵀ, the same cached matrix Transpose returns.
func (p *Permutation) Inverse() Matrix { return p.oc.transposeInverse() }

func (p *Permutation) computeTranspose() Matrix {
	inv := make([]int, len(p.perm))
	var i int
	for i = 0; i < len(p.perm); i++ {
		inv[p.perm[i]] = i
	}

	return newPermutation(inv, p.sign) // parity is invariant under inversion
}

// PermutationBuilder accumulates row swaps on an identity permutation
// and tracks the resulting parity.
type PermutationBuilder struct {
	perm  []int
	sign  int
	built bool
}

// NewPermutationBuilder allocates an identity builder of dimension n.
func NewPermutationBuilder(n int) (*PermutationBuilder, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	perm := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	return &PermutationBuilder{perm: perm, sign: 1}, nil
}

// Swap exchanges rows i and j, flipping the parity when i != j.
func (b *PermutationBuilder) Swap(i, j int) error {
	if b.built {
		panic(panicBuilderReused)
	}
	n := len(b.perm)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}
	if i == j {
		return nil
	}
	b.perm[i], b.perm[j] = b.perm[j], b.perm[i]
	b.sign = -b.sign

	return nil
}

// Build freezes the builder and returns the immutable permutation.
func (b *PermutationBuilder) Build() *Permutation {
	if b.built {
		panic(panicBuilderReused)
	}
	b.built = true
	p := newPermutation(b.perm, b.sign)
	b.perm = nil

	return p
}

// SPDX-License-Identifier: MIT
// Package mat: single-assignment memoization primitives.
//
// Purpose:
//   - Provide the lazy cache cell every derived quantity in lvlsolve goes
//     through: per-instance transposes, per-instance inverses, and the
//     solver determinant/inverse bundles in factor/.
//   - Guarantee at-most-once production under concurrent first access.
//
// Discipline (documented choice): productions here are expensive and
// pure, so each cell synchronizes the single run via sync.Once rather
// than tolerating redundant recomputation. All callers observe exactly
// one referentially-stable instance and never a partially built result.

package mat

import "sync"

// Memo is a generic single-assignment cache cell wrapping a zero-argument
// production function. Get computes and stores the value on first call
// and returns the stored value thereafter.
//
// Behavior highlights:
//   - The production runs at most once, under internal synchronization.
//   - Concurrent first callers block until the single run completes.
//   - The production function must not call Get on its own cell.
//
// Complexity: first Get costs the production; every later Get is O(1).
type Memo[T any] struct {
	once    sync.Once
	produce func() T
	value   T
}

// NewMemo wraps produce into a fresh, unevaluated cell.
func NewMemo[T any](produce func() T) *Memo[T] {
	return &Memo[T]{produce: produce}
}

// Get returns the memoized value, producing it on first call.
func (m *Memo[T]) Get() T {
	m.once.Do(func() {
		m.value = m.produce()
		m.produce = nil // release the closure; the value is now pinned
	})

	return m.value
}

// transposeCache is the skeletal base for asymmetric matrices that cache
// their transpose. The production method stays unexported on the concrete
// type; only the memoized Transpose is public.
//
// A runtime check at construction fails fast if the owner also carries
// the Symmetric capability: a symmetric matrix must return itself from
// Transpose, so attaching a cache to one is an internal inconsistency,
// not a data problem.
type transposeCache struct {
	cell *Memo[Matrix]
}

// newTransposeCache wires compute into a fresh cache cell for owner.
// Panics with a stable message when owner is Symmetric — the asymmetric
// base and the symmetric capability are mutually exclusive by
// construction.
func newTransposeCache(owner Matrix, compute func() Matrix) transposeCache {
	if _, symmetric := owner.(Symmetric); symmetric {
		panic(panicCacheSymmetric)
	}

	return transposeCache{cell: NewMemo(compute)}
}

// transpose returns the memoized transpose.
func (c *transposeCache) transpose() Matrix { return c.cell.Get() }

// orthoCache is the analogue for orthogonal matrices: transpose and
// inverse coincide, so both are cached as one unit. A symmetric
// orthogonal owner short-circuits both to itself and never computes.
type orthoCache struct {
	self Matrix       // non-nil only for the symmetric short-circuit
	cell *Memo[Matrix]
}

// newOrthoCache wires compute for owner; if owner is Symmetric, both
// transpose and inverse collapse to the owner itself.
func newOrthoCache(owner Matrix, compute func() Matrix) orthoCache {
	if _, symmetric := owner.(Symmetric); symmetric {
		return orthoCache{self: owner}
	}

	return orthoCache{cell: NewMemo(compute)}
}

// transposeInverse returns the shared transpose≡inverse instance.
func (c *orthoCache) transposeInverse() Matrix {
	if c.self != nil {
		return c.self
	}

	return c.cell.Get()
}

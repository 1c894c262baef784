// SPDX-License-Identifier: MIT
// Package cholesky implements the Cholesky factorization of symmetric
// positive-definite matrices, plus a banded specialization.
//
// ✨ What it computes
//
// A = L·√D·√D·Lᵀ via an in-place symmetric elimination on packed-lower
// (or banded-lower) storage, without pivoting. A non-positive pivot at
// any column fails the whole factorization as not positive definite —
// an absent result, never an error.
//
// Determinant: the sign is always +1 on success; the magnitude is
// twice the log-determinant of √D. Inverse: A⁻¹ = L⁻ᵀ·D⁻¹·L⁻¹,
// composed from closed-form factor inverses.
//
// Beyond the common solver contract, the façade exposes the asymmetric
// square root B = L·√D with A = B·Bᵀ, and its inverse B⁻¹ = √D⁻¹·L⁻¹,
// each memoized independently of the main bundle.
//
// 🚀 Entry points
//
//	sol, ok, err := cholesky.General.Apply(sm)  // packed lower
//	sol, ok, err := cholesky.Band.Apply(bsm)    // banded lower
//
// Both require the Symmetric capability; Band additionally requires
// Banded. Complexity: O(n³/6) dense, O(n·k²) banded.
package cholesky

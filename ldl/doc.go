// SPDX-License-Identifier: MIT
// Package ldl implements a modified Cholesky factorization with
// Bunch–Kaufman partial pivoting for symmetric indefinite matrices,
// plus a non-pivoting banded specialization.
//
// ✨ What it computes
//
// A = P·L·M·Lᵀ·Pᵀ, where P is a permutation, L is unit lower
// triangular and M is block diagonal with 1×1 scalars and symmetric
// 2×2 blocks. At each step the pivoting rule compares the diagonal
// entry against the largest off-diagonal magnitude in its column,
// weighted by the constant α = (1+√17)/8 ≈ 0.6404: a sufficiently
// dominant diagonal becomes a 1×1 pivot; otherwise the row holding the
// off-diagonal maximum is paired in for a 2×2 pivot, which is what
// lets indefinite matrices factor without positive-definiteness. The
// step fails as singular only when both candidates are below the
// threshold.
//
// Determinant: det A = det M — the permutation appears twice, so its
// parity cancels, and L contributes 1. Inverse:
// A⁻¹ = Pᵀ·L⁻ᵀ·M⁻¹·L⁻¹·P with P the row-swap matrix, composed from
// closed-form factor inverses.
//
// 🚀 Entry points
//
//	sol, ok, err := ldl.General.Apply(sm)   // Bunch–Kaufman pivoting
//	sol, ok, err := ldl.Band.Apply(bsm)     // banded, 1×1 pivots only
//
// The banded variant forgoes pivoting to preserve the band: it fails
// as absent whenever a diagonal entry is too small in absolute value
// or dominated by its in-band column, even though the pivoting variant
// might have succeeded.
//
// Complexity: O(n³) dense, O(n·k²) banded.
package ldl

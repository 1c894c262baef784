// SPDX-License-Identifier: MIT
// Package lu implements LU factorization with partial pivoting for
// general square matrices, plus a non-pivoting banded specialization.
//
// ✨ What it computes
//
// A = P·L·D·U, where P is a permutation, L and U are unit lower/upper
// triangular and D is diagonal. The working copy is scaled by the
// target's max-norm before elimination, so the pivot threshold is
// relative to the matrix magnitude. U is stored as its transpose, a
// unit lower-triangular matrix, to reuse the packed-lower machinery.
//
// Determinant: parity of P times the diagonal of D, accumulated as a
// {log|det|, sign} pair. Inverse: A⁻¹ = U⁻¹·D⁻¹·L⁻¹·Pᵀ, composed from
// the factors' closed-form inverses — no substitution against an
// identity matrix.
//
// 🚀 Entry points
//
//	sol, ok, err := lu.General.Apply(m)       // partial pivoting
//	sol, ok, err := lu.Band.Apply(bm)         // banded, no pivoting
//
// err reports structural rejection (nil, non-square, too large, bad
// epsilon, not banded); ok==false reports a singular matrix — or, for
// the banded executor, any matrix whose elimination would require
// pivoting, since row swaps would destroy the band.
//
// Complexity: O(n³) dense, O(n·k²) banded with bandwidth k.
package lu

// SPDX-License-Identifier: MIT
// Package factor defines the shared contract every factorization in
// this module obeys: the determinant-info pair, the result bundle, the
// Solver façade interface with its embedded lazy-caching base, and the
// Executor entry-point shape.
//
// ✨ Core concepts
//
//   - DetInfo — a {log|det|, sign} pair. Keeping magnitude in log space
//     avoids overflow and underflow when many pivots multiply; sign 0
//     marks a singular matrix.
//   - Solution — couples a DetInfo with an optional inverse. Invariant:
//     Sign()==0 iff the inverse is absent. RegularSolution refuses a
//     zero sign, forcing the singular path through SingularSolution.
//   - Solver — the read-only façade over a target matrix and its
//     completed factors. Inverse and determinant are derived exactly
//     once, on first demand, and cached; every accessor afterwards is a
//     cheap projection.
//   - Executor — a stateless factory: Accepts reports structural
//     eligibility as an error, Apply runs the elimination. Structural
//     rejection (nil, non-square, wrong capability, bad epsilon, too
//     large) is an error; numerical failure (singular, indefinite, or
//     a banded variant that would need pivoting) is an absent result,
//     never an error. No partial solver is ever returned.
//
// 🚀 Threading
//
// Targets, factor matrices and solvers are immutable and freely
// shared. The only mutable state is the single-assignment cache slot
// inside each solver; concurrent first access synchronizes on one
// production (mat.Memo), so all callers converge on the same cached
// instance.
//
// See the lu, cholesky and ldl packages for the concrete executors.
package factor

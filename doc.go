// Package lvlsolve is your in-memory toolbox for factorizing square
// matrices and deriving inverses and determinants — robustly, lazily,
// and safely under concurrency.
//
// 🚀 What is lvlsolve?
//
//	A modern, thread-safe, zero-runtime-dependency library that brings
//	together:
//		• Base types: dense, banded, symmetric, triangular, diagonal,
//		  block-diagonal and permutation matrices with strict builders
//		• Factorizations: LU with partial pivoting, banded LU, Cholesky,
//		  banded Cholesky, modified Cholesky with 1×1/2×2 block pivots
//		• Derived quantities: inverse, determinant, sign and
//		  log-abs-determinant — computed once, cached forever
//		• Memoization: single-assignment caches for transposes, inverses
//		  and determinant bundles, safe under concurrent first use
//
// ✨ Why choose lvlsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable facades, in-code docs, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Structure-aware – banded and packed-symmetric kernels never touch
//     entries outside their declared footprint
//
// Under the hood, everything is organized under five subpackages:
//
//	mat/      — matrix data model, builders and transpose/inverse caching
//	factor/   — result bundle, lazy cache and the executor/solver contract
//	lu/       — general LU with partial pivoting + banded LU
//	cholesky/ — Cholesky + banded Cholesky + symmetrized square root
//	ldl/      — modified Cholesky with Bunch–Kaufman-style block pivoting
//
// Quick sketch:
//
//	A ──Apply──▶ solver ──▶ {Inverse, Det, Sign, LogAbsDet}
//	                      │
//	                      └─ numerically singular? → absent result, no panic
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve

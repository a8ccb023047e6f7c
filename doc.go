// Package nualgebra is a deterministic toolkit for conservative uncertainty
// propagation built around (nominal, uncertainty) value pairs — from the core
// algebra to validation datasets and worked engineering/psychology demos.
//
// 🚀 What is nu-algebra?
//
//	A small, deterministic library that brings together:
//		• Core algebra: immutable N/U pairs with closed-form operators
//		  (add, sub, mul, scale, affine, negate) that never underestimate
//		  the worst-case error bound
//		• Special operators: Catch & Flip, structure-preserving involutions
//		  conserving the invariant M(n,u) = |n| + u
//		• Derived queries: bounds, intervals, relative uncertainty, sign stability
//		• Aggregates: cumulative sums/products and linear weighted means
//		• Baselines: Gaussian RSS, exact interval arithmetic and Monte Carlo
//		  models to compare the algebra against
//		• Dataset generation: reproducible CSV/JSON validation sweeps
//
// ✨ Why choose nu-algebra?
//
//   - Conservative by contract – propagated uncertainty bounds Gaussian
//     root-sum-square and interval baselines from above, never below
//   - Purely functional – every operation returns a new Pair; no shared
//     state, safe under arbitrary concurrency
//   - Closed form – no sampling or inference inside the core; Monte Carlo
//     lives in the baseline package where it belongs
//   - Reproducible – fixed seeds and tolerances for every generated dataset
//
// Everything is organized under focused subpackages:
//
//	nu/       — the Pair type, operators, queries & aggregate combinators
//	baseline/ — Gaussian RSS, interval arithmetic & Monte Carlo comparison models
//	dataset/  — batch generation of the validation datasets (CSV + summary JSON)
//	report/   — deterministic text rendering of pairs for demos & reports
//	cmd/      — the nualg CLI (generate datasets, run narrative demos)
//
// Quick taste:
//
//	x := nu.New(10, 1)     // 10 ± 1
//	y := nu.New(5, 0.5)    //  5 ± 0.5
//	sum := x.Add(y)        // (15, 1.5) — uncertainties add, never cancel
//	prod := x.Mul(y)       // (50, 10)  — |n1|·u2 + |n2|·u1
//
// Dive into nu/doc.go for the algebra's laws and the tutorial in each
// package's examples.
package nualgebra

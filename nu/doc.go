// Package nu implements the N/U algebra: deterministic, conservative
// propagation of measurement uncertainty through arithmetic on
// (nominal, uncertainty) pairs.
//
// 🚀 What is the N/U algebra?
//
//	A Pair (n, u) carries a best-estimate nominal n and a non-negative
//	worst-case bound u on its deviation. Operators combine Pairs with
//	closed-form rules that never let the bound shrink below the true
//	worst case — in contrast to Gaussian root-sum-square propagation,
//	which can underestimate under correlation or nonlinearity:
//	  • Add/Sub:  (n1±n2, u1+u2)        — uncertainties add, never cancel
//	  • Mul:      (n1·n2, |n1|·u2+|n2|·u1)
//	  • Scale:    (k·n, |k|·u)
//	  • Affine:   (k·n+b, |k|·u)        — constants carry no uncertainty
//
// ✨ Key guarantees:
//   - Invariant I1: u ≥ 0 always; a negative u at construction is clamped
//     to 0, never rejected and never propagated
//   - Every operator is pure and total — inputs are never mutated, results
//     are always valid Pairs
//   - Catch and Flip conserve M(n,u) = |n| + u exactly
//   - Conservatism: cumulative sums dominate Gaussian RSS; products dominate
//     first-order Gaussian propagation (ratio at most √2) and match exact
//     interval half-widths when nominals are non-negative
//
// ⚙️ Usage:
//
//	import "github.com/abba-01/nu-algebra/nu"
//
//	v1 := nu.New(120.5, 0.3) // 120.5 V ± 0.3 V
//	v2 := nu.New(118.2, 0.4)
//	total := v1.Add(v2)                   // (238.7, 0.7)
//	lo, hi := total.Interval().Lo, total.Interval().Hi
//	stable := total.IsSignStable()        // |n| > u
//
//	sum, err := nu.CumulativeSum(readings)
//	mean, err := nu.WeightedMean(studies, weights)
//
// Errors: the algebra itself is total; only the aggregate combinators can
// fail (ErrEmptySequence, ErrLengthMismatch, ErrNonPositiveWeight) and the
// first-order reciprocal (ErrZeroNominal). RelativeUncertainty of a zero
// nominal reports +Inf — "fully uncertain" is a value, not a fault.
//
// The algebra does not model probability distributions and does not attempt
// tightest-possible bounds; conservatism is the design, not a defect.
package nu

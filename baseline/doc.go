// Package baseline implements the independent comparison models the N/U
// algebra is validated against: Gaussian root-sum-square propagation, exact
// interval arithmetic, and Monte Carlo sampling.
//
// None of these models belongs to the algebra itself — they are the external
// yardsticks. The conservatism contract states that N/U uncertainties bound
// every one of them from above:
//
//   - GaussianRSS(u1 … uk) ≤ CumulativeSum(pairs).U
//   - GaussianProduct(...) ≤ Mul(a, b).U ≤ √2 · GaussianProduct(...)
//   - IntervalProductHalfWidth matches Mul's uncertainty when both intervals
//     stay on one side of zero
//   - Monte Carlo sample deviations stay below the N/U bound across gaussian,
//     uniform, laplace and student-t sampling
//
// Monte Carlo sampling is deterministic under a caller-supplied seed; the
// gaussian, uniform and laplace samplers parameterize each distribution so
// that (loc, scale) are its mean and standard deviation, making u directly
// comparable to a sample σ (student-t keeps the raw t scale, see
// Distribution).
package baseline

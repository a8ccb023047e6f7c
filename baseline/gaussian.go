package baseline

import "math"

// GaussianRSS returns the root-sum-square of the given uncertainties,
// √(Σuᵢ²) — the standard Gaussian propagation rule for sums of independent
// terms.
func GaussianRSS(us ...float64) float64 {
	var sumSq float64
	for _, u := range us {
		sumSq += u * u
	}

	return math.Sqrt(sumSq)
}

// GaussianProduct returns the first-order Gaussian uncertainty of a product:
// |n1·n2|·√((u1/n1)² + (u2/n2)²). Returns 0 when either nominal is zero,
// where the relative-uncertainty formulation is undefined.
func GaussianProduct(n1, u1, n2, u2 float64) float64 {
	if n1 == 0 || n2 == 0 {
		return 0
	}
	r1 := u1 / n1
	r2 := u2 / n2

	return math.Abs(n1*n2) * math.Sqrt(r1*r1+r2*r2)
}

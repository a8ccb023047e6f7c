package nu

// Aggregate combinators: left folds and weighted means over Pair sequences.
//
// CumulativeSum is exactly order-independent (real addition of nominals and
// uncertainties is associative and commutative). CumulativeProduct has an
// exactly order-independent nominal; its uncertainty is a sum of products of
// magnitudes accumulated through successive floating operations, so it is
// order-independent only up to rounding (~1e-6 relative on long chains).

// CumulativeSum folds Add left-to-right over pairs.
// Returns ErrEmptySequence when pairs is empty.
func CumulativeSum(pairs []Pair) (Pair, error) {
	if len(pairs) == 0 {
		return Pair{}, ErrEmptySequence
	}

	acc := pairs[0]
	for _, p := range pairs[1:] {
		acc = acc.Add(p)
	}

	return acc, nil
}

// CumulativeProduct folds Mul left-to-right over pairs.
// Returns ErrEmptySequence when pairs is empty.
func CumulativeProduct(pairs []Pair) (Pair, error) {
	if len(pairs) == 0 {
		return Pair{}, ErrEmptySequence
	}

	acc := pairs[0]
	for _, p := range pairs[1:] {
		acc = acc.Mul(p)
	}

	return acc, nil
}

// WeightedMean returns the linear weighted mean of pairs:
// nominal Σ(wᵢ·nᵢ)/Σwᵢ and uncertainty Σ(wᵢ·uᵢ)/Σwᵢ.
//
// The uncertainty is a linear combination, not a root-sum-square — the mean
// stays as conservative as its inputs. A nil weights slice means uniform
// weighting.
//
// Errors:
//   - ErrEmptySequence when pairs is empty.
//   - ErrLengthMismatch when weights is non-nil with a different length.
//   - ErrNonPositiveWeight when the weights sum to zero or less.
func WeightedMean(pairs []Pair, weights []float64) (Pair, error) {
	if len(pairs) == 0 {
		return Pair{}, ErrEmptySequence
	}
	if weights != nil && len(weights) != len(pairs) {
		return Pair{}, ErrLengthMismatch
	}

	var sumW, sumN, sumU float64
	for i, p := range pairs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		sumW += w
		sumN += w * p.N
		sumU += w * p.U
	}
	if sumW <= 0 {
		return Pair{}, ErrNonPositiveWeight
	}

	return New(sumN/sumW, sumU/sumW), nil
}

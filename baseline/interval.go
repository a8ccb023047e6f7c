package baseline

import "github.com/abba-01/nu-algebra/nu"

// IntervalProductHalfWidth returns the exact interval-arithmetic half-width
// of [n1−u1, n1+u1] × [n2−u2, n2+u2]: (max − min)/2 over the four corner
// products.
func IntervalProductHalfWidth(n1, u1, n2, u2 float64) float64 {
	lo, hi := cornerProduct(n1-u1, n1+u1, n2-u2, n2+u2)

	return (hi - lo) / 2
}

// IntervalChainHalfWidth folds the exact interval product over a chain of
// Pairs and returns the final half-width. Returns 0 for an empty chain.
func IntervalChainHalfWidth(pairs []nu.Pair) float64 {
	if len(pairs) == 0 {
		return 0
	}

	lo := pairs[0].LowerBound()
	hi := pairs[0].UpperBound()
	for _, p := range pairs[1:] {
		lo, hi = cornerProduct(lo, hi, p.LowerBound(), p.UpperBound())
	}

	return (hi - lo) / 2
}

// cornerProduct returns the min and max of the four corner products of
// [aLo, aHi] × [bLo, bHi].
func cornerProduct(aLo, aHi, bLo, bHi float64) (lo, hi float64) {
	corners := [4]float64{aLo * bLo, aLo * bHi, aHi * bLo, aHi * bHi}
	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}

	return lo, hi
}

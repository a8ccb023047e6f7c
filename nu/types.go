// Package nu core types: the immutable Pair value and its interval view.
package nu

import "fmt"

// Pair is an immutable (nominal, uncertainty) value: N is the best-estimate
// nominal and U a non-negative worst-case bound on deviation from it.
//
// Construct Pairs with New, which enforces invariant I1 (U ≥ 0). Every
// operator returns a fresh Pair and never mutates its operands, so Pairs may
// be shared freely across goroutines.
type Pair struct {
	N float64 // nominal (best estimate)
	U float64 // uncertainty bound, always ≥ 0 post-construction
}

// New builds a Pair from a nominal n and an uncertainty u.
// A negative u is clamped to 0 — corrected, not rejected; any real n is
// accepted unchanged. This clamp is the only normalization in the algebra.
func New(n, u float64) Pair {
	if u < 0 {
		u = 0
	}

	return Pair{N: n, U: u}
}

// Zero returns the additive identity (0, 0): Add(a, Zero()) == a.
func Zero() Pair { return Pair{} }

// One returns the multiplicative identity (1, 0): Mul(a, One()) == a.
func One() Pair { return Pair{N: 1} }

// String renders the Pair as "(n, u)".
func (p Pair) String() string {
	return fmt.Sprintf("(%g, %g)", p.N, p.U)
}

// Interval is the closed range [Lo, Hi] = [n−u, n+u] implied by a Pair.
type Interval struct {
	Lo float64
	Hi float64
}

// Width returns Hi − Lo, i.e. 2u for an interval derived from a Pair.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

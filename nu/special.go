package nu

import "math"

// Invariant returns M(n, u) = |n| + u, the structural invariant conserved by
// the Catch and Flip operators. It is recomputed on demand, never stored.
func (p Pair) Invariant() float64 {
	return math.Abs(p.N) + p.U
}

// Catch collapses all information into uncertainty: (0, |n| + u).
// The nominal becomes exactly zero while M is conserved exactly —
// Catch(p).Invariant() == p.Invariant() with no floating-point tolerance,
// since both sides reduce to |n| + u by construction.
func (p Pair) Catch() Pair {
	return Pair{N: 0, U: math.Abs(p.N) + p.U}
}

// Flip swaps the magnitude roles of nominal and uncertainty: (u, |n|).
// Like Catch it conserves M exactly. Applying Flip twice to a Pair with a
// non-negative nominal returns the original Pair.
func (p Pair) Flip() Pair {
	return Pair{N: p.U, U: math.Abs(p.N)}
}

package nu

import "math"

// LowerBound returns n − u, the smallest value consistent with the Pair.
func (p Pair) LowerBound() float64 { return p.N - p.U }

// UpperBound returns n + u, the largest value consistent with the Pair.
func (p Pair) UpperBound() float64 { return p.N + p.U }

// Interval returns the closed range [n−u, n+u] as an Interval value.
func (p Pair) Interval() Interval {
	return Interval{Lo: p.N - p.U, Hi: p.N + p.U}
}

// RelativeUncertainty returns u / |n|.
//
// For a zero nominal it returns +Inf — a sentinel meaning "fully uncertain",
// not a fault; callers must not treat it as an error.
func (p Pair) RelativeUncertainty() float64 {
	if p.N == 0 {
		return math.Inf(1)
	}

	return p.U / math.Abs(p.N)
}

// IsSignStable reports whether |n| > u strictly: the sign of the true value
// cannot flip anywhere within the bound. The boundary |n| == u classifies as
// unstable — the interval touches zero, so the sign is not guaranteed.
func (p Pair) IsSignStable() bool {
	return math.Abs(p.N) > p.U
}

package nu

import "math"

// Add returns the N/U sum (p.N + q.N, p.U + q.U).
//
// Uncertainties always add — they never cancel, even when the nominals have
// opposite sign. This is the conservatism contract for addition: the result
// bound dominates the Gaussian root-sum-square √(u1²+u2²) for all inputs.
func (p Pair) Add(q Pair) Pair {
	return Pair{N: p.N + q.N, U: p.U + q.U}
}

// Sub returns the N/U difference (p.N − q.N, p.U + q.U).
// Subtraction flips the nominal's sign only; the uncertainty still adds,
// since a bound cannot decrease when an operand is negated.
func (p Pair) Sub(q Pair) Pair {
	return Pair{N: p.N - q.N, U: p.U + q.U}
}

// Mul returns the N/U product (p.N·q.N, |p.N|·q.U + |q.N|·p.U).
//
// First-order worst-case propagation: the absolute nominals guarantee a
// negative nominal never reduces the propagated bound. For non-negative
// nominals the result equals the exact interval-arithmetic half-width of
// [p.N−p.U, p.N+p.U] × [q.N−q.U, q.N+q.U] up to the cross term p.U·q.U.
func (p Pair) Mul(q Pair) Pair {
	return Pair{
		N: p.N * q.N,
		U: math.Abs(p.N)*q.U + math.Abs(q.N)*p.U,
	}
}

// Scale returns (k·p.N, |k|·p.U): scaling by a real constant, with the
// uncertainty scaled by magnitude only.
func (p Pair) Scale(k float64) Pair {
	return Pair{N: k * p.N, U: math.Abs(k) * p.U}
}

// Affine returns the linear map (k·p.N + b, |k|·p.U).
// The additive constant b carries no uncertainty of its own.
func (p Pair) Affine(k, b float64) Pair {
	return Pair{N: k*p.N + b, U: math.Abs(k) * p.U}
}

// Neg returns (−p.N, p.U), equivalent to Scale(-1).
func (p Pair) Neg() Pair {
	return Pair{N: -p.N, U: p.U}
}

// AddScalar adds an exact constant k, treated as the Pair (k, 0).
// Scalar addition commutes with Add by construction.
func (p Pair) AddScalar(k float64) Pair {
	return Pair{N: p.N + k, U: p.U}
}

// Reciprocal returns the first-order reciprocal (1/p.N, p.U/p.N²).
// Returns ErrZeroNominal when the nominal is exactly zero.
func (p Pair) Reciprocal() (Pair, error) {
	if p.N == 0 {
		return Pair{}, ErrZeroNominal
	}

	return Pair{N: 1 / p.N, U: p.U / (p.N * p.N)}, nil
}

// Div returns p divided by q to first order, i.e. p.Mul of q.Reciprocal().
// Returns ErrZeroNominal when q.N is exactly zero.
func (p Pair) Div(q Pair) (Pair, error) {
	inv, err := q.Reciprocal()
	if err != nil {
		return Pair{}, err
	}

	return p.Mul(inv), nil
}

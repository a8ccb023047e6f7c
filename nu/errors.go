// Package nu: sentinel error set.
// The primitive operators are total and never fail; only the aggregate
// combinators and the first-order reciprocal can return an error. Callers
// match these sentinels with errors.Is.
package nu

import "errors"

var (
	// ErrEmptySequence indicates an aggregate combinator received no Pairs.
	ErrEmptySequence = errors.New("nu: sequence must contain at least one pair")

	// ErrLengthMismatch indicates weights and pairs have different lengths.
	ErrLengthMismatch = errors.New("nu: weights length must match pairs length")

	// ErrNonPositiveWeight indicates the weights sum to zero or less, which
	// leaves the weighted mean undefined. The combinator fails fast rather
	// than propagating NaN.
	ErrNonPositiveWeight = errors.New("nu: total weight must be positive")

	// ErrZeroNominal indicates a first-order reciprocal of a Pair whose
	// nominal is exactly zero.
	ErrZeroNominal = errors.New("nu: reciprocal undefined for zero nominal")
)

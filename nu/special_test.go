package nu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abba-01/nu-algebra/nu"
)

// TestCatch verifies catch((5, 2)) == (0, 7) and its negative-nominal twin.
func TestCatch(t *testing.T) {
	got := nu.New(5, 2).Catch()
	assert.Equal(t, nu.Pair{N: 0, U: 7}, got)

	neg := nu.New(-5, 2).Catch()
	assert.Equal(t, nu.Pair{N: 0, U: 7}, neg, "Catch must use |n|")
}

// TestFlip verifies flip((5, 2)) == (2, 5) and the |n| handling.
func TestFlip(t *testing.T) {
	got := nu.New(5, 2).Flip()
	assert.Equal(t, nu.Pair{N: 2, U: 5}, got)

	neg := nu.New(-5, 2).Flip()
	assert.Equal(t, nu.Pair{N: 2, U: 5}, neg, "Flip must use |n|")
}

// TestInvariant verifies M(n, u) = |n| + u.
func TestInvariant(t *testing.T) {
	assert.Equal(t, 7.0, nu.New(5, 2).Invariant())
	assert.Equal(t, 7.0, nu.New(-5, 2).Invariant())
	assert.Equal(t, 5.0, nu.New(0, 5).Invariant())
}

// TestInvariantPreservation_Exact verifies both involutions conserve M with
// zero tolerance over a grid of (n, u) values, since both sides reduce to
// |n| + u by construction.
func TestInvariantPreservation_Exact(t *testing.T) {
	for n := -10.0; n <= 10.0; n += 2.5 {
		for u := 0.0; u <= 10.0; u += 2.0 {
			p := nu.New(n, u)
			m := p.Invariant()

			assert.Equal(t, m, p.Catch().Invariant(),
				"Catch must conserve M exactly for (%v, %v)", n, u)
			assert.Equal(t, m, p.Flip().Invariant(),
				"Flip must conserve M exactly for (%v, %v)", n, u)
		}
	}
}

// TestFlip_InvolutionOnNonNegativeNominals verifies Flip∘Flip is the
// identity when the nominal is non-negative.
func TestFlip_InvolutionOnNonNegativeNominals(t *testing.T) {
	p := nu.New(5, 2)
	assert.Equal(t, p, p.Flip().Flip())
}

// TestCatch_Idempotent verifies Catch∘Catch == Catch: once collapsed,
// a Pair has nominal 0 and M already living entirely in u.
func TestCatch_Idempotent(t *testing.T) {
	p := nu.New(-3, 4)
	assert.Equal(t, p.Catch(), p.Catch().Catch())
}

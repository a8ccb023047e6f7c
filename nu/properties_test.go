package nu_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abba-01/nu-algebra/baseline"
	"github.com/abba-01/nu-algebra/nu"
)

// propertySeed keeps the randomized property sweeps reproducible.
const propertySeed = 20250926

// randomPair draws a Pair with nominal in [-100, 100] and uncertainty in
// [0.1, 10], the same envelope the validation datasets use.
func randomPair(rng *rand.Rand) nu.Pair {
	return nu.New(rng.Float64()*200-100, rng.Float64()*9.9+0.1)
}

// TestAdditionConservatism_VsRSS verifies cumulative sums dominate Gaussian
// root-sum-square for random sequences of 2..50 terms.
func TestAdditionConservatism_VsRSS(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 0))

	for trial := 0; trial < 500; trial++ {
		k := rng.IntN(49) + 2
		pairs := make([]nu.Pair, k)
		us := make([]float64, k)
		for i := range pairs {
			pairs[i] = randomPair(rng)
			us[i] = pairs[i].U
		}

		sum, err := nu.CumulativeSum(pairs)
		require.NoError(t, err)

		rss := baseline.GaussianRSS(us...)
		assert.GreaterOrEqual(t, sum.U, rss-1e-9,
			"N/U sum uncertainty must dominate RSS for k=%d", k)
	}
}

// TestMultiplicationConservatism_VsGaussian verifies the product bound
// dominates first-order Gaussian propagation with the ratio capped at √2.
func TestMultiplicationConservatism_VsGaussian(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 1))

	for trial := 0; trial < 2000; trial++ {
		a := randomPair(rng)
		b := randomPair(rng)

		gauss := baseline.GaussianProduct(a.N, a.U, b.N, b.U)
		if gauss == 0 {
			continue
		}

		got := a.Mul(b).U
		assert.GreaterOrEqual(t, got, gauss-1e-9, "N/U must dominate Gaussian for %v × %v", a, b)
		assert.LessOrEqual(t, got/gauss, math.Sqrt2+1e-9, "ratio must not exceed √2 for %v × %v", a, b)
	}
}

// TestMultiplication_Sqrt2RatioAttained verifies the √2 bound is tight: it
// is approached when both relative uncertainties are equal.
func TestMultiplication_Sqrt2RatioAttained(t *testing.T) {
	a := nu.New(10, 0.1)
	b := nu.New(10, 0.1)

	ratio := a.Mul(b).U / baseline.GaussianProduct(a.N, a.U, b.N, b.U)
	assert.InDelta(t, math.Sqrt2, ratio, 0.01)
}

// TestIntervalEquivalence_NonNegativeNominals verifies the product
// uncertainty equals the exact interval half-width when both intervals stay
// on one side of zero.
func TestIntervalEquivalence_NonNegativeNominals(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 2))

	for trial := 0; trial < 2000; trial++ {
		// Uncertainty strictly below the nominal keeps the interval positive.
		n1 := rng.Float64()*90 + 10
		n2 := rng.Float64()*90 + 10
		u1 := rng.Float64() * 9
		u2 := rng.Float64() * 9

		got := nu.New(n1, u1).Mul(nu.New(n2, u2)).U
		hw := baseline.IntervalProductHalfWidth(n1, u1, n2, u2)

		// The exact half-width is n1·u2 + n2·u1; the cross term u1·u2
		// cancels between opposite corners.
		assert.InDelta(t, hw, got, 1e-10,
			"interval equivalence for (%v, %v) × (%v, %v)", n1, u1, n2, u2)
	}
}

// TestCommutativity_Exact verifies Add and Mul commute exactly in both
// coordinates.
func TestCommutativity_Exact(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 3))

	for trial := 0; trial < 1000; trial++ {
		a := randomPair(rng)
		b := randomPair(rng)

		assert.Equal(t, a.Add(b), b.Add(a), "Add must commute exactly")
		assert.Equal(t, a.Mul(b).N, b.Mul(a).N, "Mul nominal must commute exactly")
		assert.InDelta(t, a.Mul(b).U, b.Mul(a).U, 1e-12, "Mul uncertainty commutes up to rounding")
	}
}

// TestAssociativity verifies (a∘b)∘c ≈ a∘(b∘c): nominals exactly for Add,
// within rounding for Mul; uncertainties within 1e-6 relative.
func TestAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 4))

	for trial := 0; trial < 1000; trial++ {
		a := randomPair(rng)
		b := randomPair(rng)
		c := randomPair(rng)

		addL := a.Add(b).Add(c)
		addR := a.Add(b.Add(c))
		assert.InDelta(t, addL.N, addR.N, 1e-9)
		assert.InDelta(t, addL.U, addR.U, 1e-9)

		mulL := a.Mul(b).Mul(c)
		mulR := a.Mul(b.Mul(c))
		if mulL.N != 0 {
			assert.InEpsilon(t, mulL.N, mulR.N, 1e-12, "Mul nominal associates up to rounding")
		}
		if mulL.U != 0 {
			assert.InEpsilon(t, mulL.U, mulR.U, 1e-6, "Mul uncertainty associates within 1e-6 relative")
		}
	}
}

// TestIdentityElements verifies (0, 0) under Add and (1, 0) under Mul.
func TestIdentityElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 5))

	for trial := 0; trial < 200; trial++ {
		a := randomPair(rng)

		assert.Equal(t, a, a.Add(nu.Zero()), "Add identity")
		got := a.Mul(nu.One())
		assert.InDelta(t, a.N, got.N, 1e-12, "Mul identity nominal")
		assert.InDelta(t, a.U, got.U, 1e-12, "Mul identity uncertainty")
	}
}

// TestOperationsPreserveInvariantI1 sweeps random operand pairs through
// every operator and checks the result uncertainty never goes negative.
func TestOperationsPreserveInvariantI1(t *testing.T) {
	rng := rand.New(rand.NewPCG(propertySeed, 6))

	for trial := 0; trial < 1000; trial++ {
		a := randomPair(rng)
		b := randomPair(rng)
		k := rng.Float64()*20 - 10

		for _, p := range []nu.Pair{
			a.Add(b), a.Sub(b), a.Mul(b),
			a.Scale(k), a.Affine(k, k), a.Neg(),
			a.Catch(), a.Flip(),
		} {
			assert.GreaterOrEqual(t, p.U, 0.0, "I1 violated by an operator on %v, %v", a, b)
		}
	}
}

// TestMonteCarloNeverExceedsBound draws product samples from every
// distribution family and checks the empirical deviation stays below the
// N/U product bound, mirroring the mc_comparisons validation experiment.
//
// The operands are sign-stable with small relative uncertainty; dominance is
// not a theorem when an interval straddles zero, so the sweep stays inside
// the regime the contract covers.
func TestMonteCarloNeverExceedsBound(t *testing.T) {
	const samples = 20000

	operands := [][2]nu.Pair{
		{nu.New(40, 2), nu.New(35, 3)},
		{nu.New(-25, 1.5), nu.New(30, 2)},
		{nu.New(-50, 2.5), nu.New(-45, 3)},
	}

	for _, dist := range baseline.Distributions() {
		s, err := baseline.NewSampler(dist, rand.NewPCG(propertySeed, 7))
		require.NoError(t, err)

		for _, op := range operands {
			a, b := op[0], op[1]
			prod := a.Mul(b)

			as := s.Sample(a.N, a.U, samples)
			bs := s.Sample(b.N, b.U, samples)
			products := make([]float64, samples)
			for i := range products {
				products[i] = as[i] * bs[i]
			}

			mcStd := baseline.SampleStdDev(products)
			assert.Greater(t, prod.U, mcStd,
				"%s: N/U bound must exceed Monte Carlo deviation for %v × %v", dist, a, b)
		}
	}
}

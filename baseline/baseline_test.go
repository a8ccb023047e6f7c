package baseline_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abba-01/nu-algebra/baseline"
	"github.com/abba-01/nu-algebra/nu"
)

// TestGaussianRSS verifies √(Σu²) on hand-computed cases.
func TestGaussianRSS(t *testing.T) {
	assert.Equal(t, 5.0, baseline.GaussianRSS(3, 4), "3-4-5 triangle")
	assert.Equal(t, 0.0, baseline.GaussianRSS())
	assert.InDelta(t, math.Sqrt(0.05*0.05+0.02*0.02), baseline.GaussianRSS(0.05, 0.02), 1e-15)
}

// TestGaussianProduct verifies the first-order product rule and its
// zero-nominal guard.
func TestGaussianProduct(t *testing.T) {
	// |4·3|·√((0.1/4)² + (0.2/3)²)
	want := 12 * math.Sqrt(0.025*0.025+(0.2/3)*(0.2/3))
	assert.InDelta(t, want, baseline.GaussianProduct(4, 0.1, 3, 0.2), 1e-12)

	assert.Equal(t, 0.0, baseline.GaussianProduct(0, 1, 3, 0.2), "zero nominal is undefined, reported as 0")
	assert.Equal(t, 0.0, baseline.GaussianProduct(4, 0.1, 0, 1))
}

// TestIntervalProductHalfWidth verifies the exact corner computation against
// the closed form n1·u2 + n2·u1 valid when both intervals exclude zero.
func TestIntervalProductHalfWidth(t *testing.T) {
	got := baseline.IntervalProductHalfWidth(10, 1, 5, 0.5)
	assert.InDelta(t, 10*0.5+5*1, got, 1e-12)
}

// TestIntervalProductHalfWidth_StraddlingZero verifies the corner scan picks
// the true extremes when an interval crosses zero.
func TestIntervalProductHalfWidth_StraddlingZero(t *testing.T) {
	// [−1, 3] × [2, 4]: corners −4, −2, 6, 12 → half-width (12 − (−4))/2 = 8.
	got := baseline.IntervalProductHalfWidth(1, 2, 3, 1)
	assert.InDelta(t, 8.0, got, 1e-12)
}

// TestIntervalChainHalfWidth verifies the fold agrees with repeated pairwise
// corner products and with the N/U chain within 1% on a stable chain.
func TestIntervalChainHalfWidth(t *testing.T) {
	pairs := []nu.Pair{
		nu.New(1.5, 0.1),
		nu.New(1.2, 0.05),
		nu.New(1.8, 0.15),
		nu.New(1.1, 0.08),
		nu.New(1.3, 0.12),
	}

	hw := baseline.IntervalChainHalfWidth(pairs)
	prod, err := nu.CumulativeProduct(pairs)
	require.NoError(t, err)

	ratio := prod.U / hw
	assert.Greater(t, ratio, 0.99, "N/U chain must track the interval chain")
	assert.Less(t, ratio, 1.01)

	assert.Equal(t, 0.0, baseline.IntervalChainHalfWidth(nil))
}

// TestNewSampler_UnknownDistribution verifies the constructor rejects names
// outside the supported families.
func TestNewSampler_UnknownDistribution(t *testing.T) {
	_, err := baseline.NewSampler("cauchy", rand.NewPCG(1, 1))
	assert.Error(t, err)
}

// TestSampler_MomentsMatchParameters draws from every family and checks the
// sample mean and standard deviation land near (loc, scale).
func TestSampler_MomentsMatchParameters(t *testing.T) {
	const (
		loc   = 12.5
		scale = 2.0
		n     = 200000
	)

	for _, dist := range baseline.Distributions() {
		s, err := baseline.NewSampler(dist, rand.NewPCG(42, 42))
		require.NoError(t, err)

		xs := s.Sample(loc, scale, n)
		require.Len(t, xs, n)

		var sum float64
		for _, x := range xs {
			sum += x
		}
		mean := sum / n

		// StudentT's deviation is scale·√(ν/(ν−2)) with ν=5; the others are scale.
		wantStd := scale
		if dist == baseline.StudentT {
			wantStd = scale * math.Sqrt(5.0/3.0)
		}

		assert.InDelta(t, loc, mean, 0.1, "%s sample mean", dist)
		assert.InDelta(t, wantStd, baseline.SampleStdDev(xs), 0.2, "%s sample stddev", dist)
	}
}

// TestSampler_DeterministicUnderSeed verifies two samplers with the same
// seed produce identical draws.
func TestSampler_DeterministicUnderSeed(t *testing.T) {
	a, err := baseline.NewSampler(baseline.Gaussian, rand.NewPCG(7, 7))
	require.NoError(t, err)
	b, err := baseline.NewSampler(baseline.Gaussian, rand.NewPCG(7, 7))
	require.NoError(t, err)

	assert.Equal(t, a.Sample(0, 1, 16), b.Sample(0, 1, 16))
}

package baseline

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution names a sampling family for Monte Carlo comparison.
// Gaussian, Uniform and Laplace are parameterized so that (loc, scale) are
// the mean and standard deviation, keeping sample deviations directly
// comparable to an N/U uncertainty bound. StudentT uses scale as the raw
// t scale factor; its standard deviation is scale·√(ν/(ν−2)).
type Distribution string

const (
	Gaussian Distribution = "gaussian"
	Uniform  Distribution = "uniform"
	Laplace  Distribution = "laplace"
	StudentT Distribution = "student_t"
)

// studentTDoF is the degrees of freedom used by the StudentT family.
// ν=5 keeps the variance finite while preserving heavy tails.
const studentTDoF = 5

// Distributions lists every supported family in a stable order.
func Distributions() []Distribution {
	return []Distribution{Gaussian, Uniform, Laplace, StudentT}
}

// Sampler draws values from one distribution family with a deterministic
// source. The zero value is unusable; construct with NewSampler.
type Sampler struct {
	dist Distribution
	rng  *rand.Rand
}

// NewSampler returns a Sampler for the given family backed by src.
// Returns an error for an unknown family name.
func NewSampler(dist Distribution, src rand.Source) (*Sampler, error) {
	switch dist {
	case Gaussian, Uniform, Laplace, StudentT:
		return &Sampler{dist: dist, rng: rand.New(src)}, nil
	default:
		return nil, fmt.Errorf("baseline: unknown distribution %q", dist)
	}
}

// Sample draws n values centered on loc with spread scale, under the
// family's parameterization described on Distribution.
func (s *Sampler) Sample(loc, scale float64, n int) []float64 {
	out := make([]float64, n)
	switch s.dist {
	case Gaussian:
		d := distuv.Normal{Mu: loc, Sigma: scale, Src: s.rng}
		for i := range out {
			out[i] = d.Rand()
		}
	case Uniform:
		// Half-width scale·√3 gives standard deviation exactly scale.
		hw := scale * math.Sqrt(3)
		d := distuv.Uniform{Min: loc - hw, Max: loc + hw, Src: s.rng}
		for i := range out {
			out[i] = d.Rand()
		}
	case Laplace:
		// Laplace variance is 2b²; b = scale/√2 gives standard deviation scale.
		d := distuv.Laplace{Mu: loc, Scale: scale / math.Sqrt2, Src: s.rng}
		for i := range out {
			out[i] = d.Rand()
		}
	case StudentT:
		d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: studentTDoF, Src: s.rng}
		for i := range out {
			out[i] = loc + scale*d.Rand()
		}
	}

	return out
}

// SampleStdDev returns the unbiased sample standard deviation of xs
// (normalized by n−1).
func SampleStdDev(xs []float64) float64 {
	return stat.StdDev(xs, nil)
}

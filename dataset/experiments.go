package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/abba-01/nu-algebra/baseline"
	"github.com/abba-01/nu-algebra/nu"
)

// Sampling envelopes of the reference run.
const (
	sweepNominalLo = -100.0
	sweepNominalHi = 100.0
	sweepUncLo     = 0.1
	sweepUncHi     = 10.0

	intervalNominalLo = 0.1
	intervalNominalHi = 100.0
	intervalUncLo     = 0.01
	intervalUncHi     = 10.0

	chainNominalLo = 0.5
	chainNominalHi = 2.0
	chainUncLo     = 0.01
	chainUncHi     = 0.2

	mcNominalLo = -50.0
	mcNominalHi = 50.0
	mcUncLo     = 1.0
	mcUncHi     = 10.0

	// Addition sweeps sum between 2 and 50 terms.
	additionTermsMin = 2
	additionTermsMax = 50
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// AdditionSweep folds random 2–50 term sums and records the N/U uncertainty
// against the Gaussian root-sum-square of the same terms.
func AdditionSweep(rng *rand.Rand, cases int) []AdditionRow {
	rows := make([]AdditionRow, 0, cases)
	for i := 0; i < cases; i++ {
		k := additionTermsMin + rng.IntN(additionTermsMax-additionTermsMin+1)

		pairs := make([]nu.Pair, k)
		us := make([]float64, k)
		for j := range pairs {
			pairs[j] = nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))
			us[j] = pairs[j].U
		}

		sum, err := nu.CumulativeSum(pairs)
		if err != nil {
			// k >= 2 by construction; an empty fold here is a programmer error.
			panic(err)
		}
		rss := baseline.GaussianRSS(us...)

		ratio := math.NaN()
		if rss > 0 {
			ratio = sum.U / rss
		}
		rows = append(rows, AdditionRow{K: k, SumU: sum.U, RSSU: rss, Ratio: ratio, Diff: sum.U - rss})
	}

	return rows
}

// ProductSweep compares random products against first-order Gaussian
// propagation.
func ProductSweep(rng *rand.Rand, cases int) []ProductRow {
	rows := make([]ProductRow, 0, cases)
	for i := 0; i < cases; i++ {
		a := nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))
		b := nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))

		prod := a.Mul(b)
		gauss := baseline.GaussianProduct(a.N, a.U, b.N, b.U)

		ratio := math.NaN()
		if gauss > 0 {
			ratio = prod.U / gauss
		}
		rows = append(rows, ProductRow{
			N1: a.N, U1: a.U, N2: b.N, U2: b.U,
			UNu: prod.U, UGauss: gauss, Ratio: ratio, Diff: prod.U - gauss,
		})
	}

	return rows
}

// IntervalRelation compares products of positive-nominal pairs against the
// exact interval-arithmetic half-width.
func IntervalRelation(rng *rand.Rand, cases int) []IntervalRow {
	rows := make([]IntervalRow, 0, cases)
	for i := 0; i < cases; i++ {
		a := nu.New(uniform(rng, intervalNominalLo, intervalNominalHi), uniform(rng, intervalUncLo, intervalUncHi))
		b := nu.New(uniform(rng, intervalNominalLo, intervalNominalHi), uniform(rng, intervalUncLo, intervalUncHi))

		prod := a.Mul(b)
		hw := baseline.IntervalProductHalfWidth(a.N, a.U, b.N, b.U)

		diff := prod.U - hw
		relErr := 0.0
		if hw > 0 {
			relErr = math.Abs(diff / hw)
		}
		rows = append(rows, IntervalRow{
			N1: a.N, U1: a.U, N2: b.N, U2: b.U,
			UNu: prod.U, HalfWidth: hw, Diff: diff, RelError: relErr,
		})
	}

	return rows
}

// ChainExperiment folds multiplication chains of each configured length and
// compares against the interval-arithmetic chain.
func ChainExperiment(rng *rand.Rand, trials int, lengths []int) []ChainRow {
	rows := make([]ChainRow, 0, trials*len(lengths))
	for _, l := range lengths {
		for trial := 0; trial < trials; trial++ {
			pairs := make([]nu.Pair, l)
			for j := range pairs {
				pairs[j] = nu.New(uniform(rng, chainNominalLo, chainNominalHi), uniform(rng, chainUncLo, chainUncHi))
			}

			prod, err := nu.CumulativeProduct(pairs)
			if err != nil {
				panic(err) // lengths are validated >= 2
			}
			hw := baseline.IntervalChainHalfWidth(pairs)

			ratio := math.NaN()
			if hw > 0 {
				ratio = prod.U / hw
			}
			rows = append(rows, ChainRow{L: l, NuU: prod.U, IntervalHalf: hw, Ratio: ratio, Diff: prod.U - hw})
		}
	}

	return rows
}

// MonteCarloComparisons samples product distributions from every family and
// records empirical deviations against the N/U bound.
func MonteCarloComparisons(rng *rand.Rand, samples, pairsPerDist int) ([]MonteCarloRow, error) {
	rows := make([]MonteCarloRow, 0, pairsPerDist*len(baseline.Distributions()))

	pairID := 0
	for _, dist := range baseline.Distributions() {
		sampler, err := baseline.NewSampler(dist, rand.NewPCG(rng.Uint64(), rng.Uint64()))
		if err != nil {
			return nil, fmt.Errorf("dataset: monte carlo: %w", err)
		}

		for i := 0; i < pairsPerDist; i++ {
			a := nu.New(uniform(rng, mcNominalLo, mcNominalHi), uniform(rng, mcUncLo, mcUncHi))
			b := nu.New(uniform(rng, mcNominalLo, mcNominalHi), uniform(rng, mcUncLo, mcUncHi))

			prod := a.Mul(b)

			as := sampler.Sample(a.N, a.U, samples)
			bs := sampler.Sample(b.N, b.U, samples)
			products := make([]float64, samples)
			for j := range products {
				products[j] = as[j] * bs[j]
			}
			mcStd := baseline.SampleStdDev(products)

			rows = append(rows, MonteCarloRow{
				PairID: pairID, AN: a.N, AU: a.U, BN: b.N, BU: b.U,
				Dist: string(dist), MCStd: mcStd, UNu: prod.U, Margin: prod.U - mcStd,
			})
			pairID++
		}
	}

	return rows, nil
}

// Invariants-grid extents: a 9-point nominal axis over [−10, 10] crossed
// with a 6-point uncertainty axis over [0, 10].
const (
	invariantGridNominalPoints = 9
	invariantGridUncPoints     = 6
	invariantGridNominalMax    = 10.0
	invariantGridUncMax        = 10.0
)

// InvariantsGrid evaluates Catch/Flip invariant conservation on a fixed
// deterministic grid; no randomness is involved.
func InvariantsGrid() []InvariantRow {
	rows := make([]InvariantRow, 0, invariantGridNominalPoints*invariantGridUncPoints)

	for i := 0; i < invariantGridNominalPoints; i++ {
		n := -invariantGridNominalMax + float64(i)*2*invariantGridNominalMax/float64(invariantGridNominalPoints-1)
		for j := 0; j < invariantGridUncPoints; j++ {
			u := float64(j) * invariantGridUncMax / float64(invariantGridUncPoints-1)

			p := nu.New(n, u)
			m0 := p.Invariant()
			mCatch := p.Catch().Invariant()
			mFlip := p.Flip().Invariant()

			rows = append(rows, InvariantRow{
				N: n, U: u, M0: m0, MCatch: mCatch, MFlip: mFlip,
				MaxAbsErr: math.Max(math.Abs(m0-mCatch), math.Abs(m0-mFlip)),
			})
		}
	}

	return rows
}

// AssociativitySweep compares (a·b)·c against a·(b·c) nominals for random
// triples.
func AssociativitySweep(rng *rand.Rand, cases int) []AssociativityRow {
	rows := make([]AssociativityRow, 0, cases)
	for i := 0; i < cases; i++ {
		a := nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))
		b := nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))
		c := nu.New(uniform(rng, sweepNominalLo, sweepNominalHi), uniform(rng, sweepUncLo, sweepUncHi))

		lhs := a.Mul(b).Mul(c).N
		rhs := a.Mul(b.Mul(c)).N

		absDiff := math.Abs(lhs - rhs)
		relDiff := 0.0
		if lhs != 0 {
			relDiff = absDiff / math.Abs(lhs)
		}
		rows = append(rows, AssociativityRow{LHS: lhs, RHS: rhs, AbsDiff: absDiff, RelDiff: relDiff})
	}

	return rows
}

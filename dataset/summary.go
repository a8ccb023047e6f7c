package dataset

import (
	"math"
	"sort"
)

// Summary aggregates the suite's results the way the reference run's
// summary.json does: extremes and medians of the conservatism ratios plus
// violation counts against the configured tolerances.
type Summary struct {
	RuntimeSec float64 `json:"runtime_sec"`

	Addition SweepStats `json:"addition"`
	Product  SweepStats `json:"product"`

	IntervalRelation IntervalStats      `json:"interval_relation"`
	Chain            ChainStats         `json:"chain"`
	MonteCarlo       MonteCarloStats    `json:"monte_carlo"`
	Invariants       InvariantStats     `json:"invariants"`
	Associativity    AssociativityStats `json:"associativity_nominal"`
	Tolerances       map[string]float64 `json:"tolerances"`
}

// SweepStats summarizes one conservatism sweep (addition or product).
type SweepStats struct {
	Rows        int     `json:"rows"`
	MinRatio    float64 `json:"min_ratio"`
	MedianRatio float64 `json:"median_ratio"`
	MaxRatio    float64 `json:"max_ratio"`
	MinDiff     float64 `json:"min_diff"`
	MaxDiff     float64 `json:"max_diff"`
}

// IntervalStats summarizes the interval-relation experiment.
type IntervalStats struct {
	Rows                int     `json:"rows"`
	MinDiff             float64 `json:"min_diff_nu_minus_interval"`
	MaxDiff             float64 `json:"max_diff_nu_minus_interval"`
	ViolationsBeyondTol int     `json:"violations_beyond_tol"`
}

// RatioStats summarizes the ratio column of one chain length.
type RatioStats struct {
	Count       int     `json:"count"`
	MinRatio    float64 `json:"min_ratio"`
	MedianRatio float64 `json:"median_ratio"`
	MaxRatio    float64 `json:"max_ratio"`
}

// ChainStats summarizes the chain experiment, per length and overall.
type ChainStats struct {
	Rows          int                   `json:"rows"`
	RatioStatsByL map[string]RatioStats `json:"ratio_stats_by_L"`
	MaxDiff       float64               `json:"max_diff"`
}

// MonteCarloStats summarizes the Monte Carlo margins.
type MonteCarloStats struct {
	Rows              int     `json:"rows"`
	MinMargin         float64 `json:"min_margin"`
	MedianMargin      float64 `json:"median_margin"`
	MaxMargin         float64 `json:"max_margin"`
	AnyExceedsWithTol bool    `json:"any_mc_exceeds_nu_with_tol"`
}

// InvariantStats summarizes invariant conservation.
type InvariantStats struct {
	Rows        int     `json:"rows"`
	MaxAbsError float64 `json:"max_abs_error"`
}

// AssociativityStats summarizes the nominal associativity drift.
type AssociativityStats struct {
	Rows                int     `json:"rows"`
	MaxAbsDiff          float64 `json:"max_abs_diff"`
	MedianAbsDiff       float64 `json:"median_abs_diff"`
	ViolationsBeyondTol int     `json:"violations_beyond_tol"`
}

// Results carries every experiment's rows into summary building and writing.
type Results struct {
	Addition      []AdditionRow
	Product       []ProductRow
	Interval      []IntervalRow
	Chain         []ChainRow
	MonteCarlo    []MonteCarloRow
	Invariants    []InvariantRow
	Associativity []AssociativityRow
}

// BuildSummary aggregates results under the configured tolerances.
func BuildSummary(cfg Config, res Results, runtimeSec float64) Summary {
	s := Summary{
		RuntimeSec: runtimeSec,
		Tolerances: map[string]float64{"abs": cfg.AbsTol, "rel": cfg.RelTol},
	}

	addRatios := make([]float64, 0, len(res.Addition))
	addDiffs := make([]float64, 0, len(res.Addition))
	for _, r := range res.Addition {
		addRatios = append(addRatios, r.Ratio)
		addDiffs = append(addDiffs, r.Diff)
	}
	s.Addition = sweepStats(len(res.Addition), addRatios, addDiffs)

	prodRatios := make([]float64, 0, len(res.Product))
	prodDiffs := make([]float64, 0, len(res.Product))
	for _, r := range res.Product {
		prodRatios = append(prodRatios, r.Ratio)
		prodDiffs = append(prodDiffs, r.Diff)
	}
	s.Product = sweepStats(len(res.Product), prodRatios, prodDiffs)

	s.IntervalRelation.Rows = len(res.Interval)
	ivDiffs := make([]float64, 0, len(res.Interval))
	for _, r := range res.Interval {
		ivDiffs = append(ivDiffs, r.Diff)
		if r.RelError > cfg.RelTol {
			s.IntervalRelation.ViolationsBeyondTol++
		}
	}
	s.IntervalRelation.MinDiff, _, s.IntervalRelation.MaxDiff = summarize(ivDiffs)

	s.Chain.Rows = len(res.Chain)
	s.Chain.RatioStatsByL = make(map[string]RatioStats)
	byLen := make(map[int][]float64)
	for _, r := range res.Chain {
		byLen[r.L] = append(byLen[r.L], r.Ratio)
		if d := math.Abs(r.Diff); d > s.Chain.MaxDiff {
			s.Chain.MaxDiff = d
		}
	}
	for l, ratios := range byLen {
		lo, med, hi := summarize(ratios)
		s.Chain.RatioStatsByL[itoa(l)] = RatioStats{Count: len(ratios), MinRatio: lo, MedianRatio: med, MaxRatio: hi}
	}

	s.MonteCarlo.Rows = len(res.MonteCarlo)
	margins := make([]float64, 0, len(res.MonteCarlo))
	for _, r := range res.MonteCarlo {
		margins = append(margins, r.Margin)
		if r.Margin < -cfg.AbsTol {
			s.MonteCarlo.AnyExceedsWithTol = true
		}
	}
	s.MonteCarlo.MinMargin, s.MonteCarlo.MedianMargin, s.MonteCarlo.MaxMargin = summarize(margins)

	s.Invariants.Rows = len(res.Invariants)
	for _, r := range res.Invariants {
		if r.MaxAbsErr > s.Invariants.MaxAbsError {
			s.Invariants.MaxAbsError = r.MaxAbsErr
		}
	}

	s.Associativity.Rows = len(res.Associativity)
	absDiffs := make([]float64, 0, len(res.Associativity))
	for _, r := range res.Associativity {
		absDiffs = append(absDiffs, r.AbsDiff)
		if r.RelDiff > cfg.RelTol {
			s.Associativity.ViolationsBeyondTol++
		}
	}
	_, s.Associativity.MedianAbsDiff, s.Associativity.MaxAbsDiff = summarize(absDiffs)

	return s
}

func sweepStats(rows int, ratios, diffs []float64) SweepStats {
	st := SweepStats{Rows: rows}
	st.MinRatio, st.MedianRatio, st.MaxRatio = summarize(ratios)
	st.MinDiff, _, st.MaxDiff = summarize(diffs)

	return st
}

// summarize returns (min, median, max) of xs, skipping NaN entries the way
// tabular tooling does. All zeros for an empty or all-NaN slice.
func summarize(xs []float64) (lo, median, hi float64) {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}
	if len(clean) == 0 {
		return 0, 0, 0
	}

	sort.Float64s(clean)
	lo = clean[0]
	hi = clean[len(clean)-1]
	mid := len(clean) / 2
	if len(clean)%2 == 1 {
		median = clean[mid]
	} else {
		median = (clean[mid-1] + clean[mid]) / 2
	}

	return lo, median, hi
}

package dataset

import "strconv"

// Row types for each experiment. Column order matches the reference CSVs;
// every type exposes its header and a stringified record for the writer.

// AdditionRow compares one cumulative sum against Gaussian RSS.
type AdditionRow struct {
	K     int     // number of summed terms
	SumU  float64 // N/U uncertainty of the cumulative sum
	RSSU  float64 // Gaussian root-sum-square of the term uncertainties
	Ratio float64 // SumU / RSSU (NaN when RSSU is 0)
	Diff  float64 // SumU − RSSU
}

func (AdditionRow) header() []string {
	return []string{"k", "sum_u_nu", "rss_u", "ratio_nu_over_rss", "nu_minus_rss"}
}

func (r AdditionRow) record() []string {
	return []string{itoa(r.K), ftoa(r.SumU), ftoa(r.RSSU), ftoa(r.Ratio), ftoa(r.Diff)}
}

// ProductRow compares one product against first-order Gaussian propagation.
type ProductRow struct {
	N1, U1, N2, U2 float64
	UNu            float64 // N/U product uncertainty
	UGauss         float64 // first-order Gaussian uncertainty
	Ratio          float64 // UNu / UGauss (NaN when UGauss is 0)
	Diff           float64 // UNu − UGauss
}

func (ProductRow) header() []string {
	return []string{"n1", "u1", "n2", "u2", "u_nu", "u_gauss", "ratio_nu_over_gauss", "diff_nu_minus_gauss"}
}

func (r ProductRow) record() []string {
	return []string{
		ftoa(r.N1), ftoa(r.U1), ftoa(r.N2), ftoa(r.U2),
		ftoa(r.UNu), ftoa(r.UGauss), ftoa(r.Ratio), ftoa(r.Diff),
	}
}

// IntervalRow compares one product against the exact interval half-width.
type IntervalRow struct {
	N1, U1, N2, U2 float64
	UNu            float64
	HalfWidth      float64 // exact interval-arithmetic half-width
	Diff           float64 // UNu − HalfWidth
	RelError       float64 // |Diff| / HalfWidth (0 when HalfWidth is 0)
}

func (IntervalRow) header() []string {
	return []string{"n1", "u1", "n2", "u2", "u_nu", "interval_halfwidth", "nu_minus_interval"}
}

func (r IntervalRow) record() []string {
	return []string{
		ftoa(r.N1), ftoa(r.U1), ftoa(r.N2), ftoa(r.U2),
		ftoa(r.UNu), ftoa(r.HalfWidth), ftoa(r.Diff),
	}
}

func (IntervalRow) headerWithRel() []string {
	return append(IntervalRow{}.header(), "rel_error")
}

func (r IntervalRow) recordWithRel() []string {
	return append(r.record(), ftoa(r.RelError))
}

// ChainRow compares one multiplication chain against the interval chain.
type ChainRow struct {
	L            int     // chain length
	NuU          float64 // final N/U uncertainty
	IntervalHalf float64 // final interval half-width
	Ratio        float64 // NuU / IntervalHalf (NaN when half-width is 0)
	Diff         float64 // NuU − IntervalHalf
}

func (ChainRow) header() []string {
	return []string{"L", "nu_u", "interval_half", "ratio_nu_over_interval", "diff_nu_minus_interval"}
}

func (r ChainRow) record() []string {
	return []string{itoa(r.L), ftoa(r.NuU), ftoa(r.IntervalHalf), ftoa(r.Ratio), ftoa(r.Diff)}
}

// MonteCarloRow compares one product bound against an empirical deviation.
type MonteCarloRow struct {
	PairID         int
	AN, AU, BN, BU float64
	Dist           string  // sampling family name
	MCStd          float64 // sample standard deviation of the products
	UNu            float64
	Margin         float64 // UNu − MCStd
}

func (MonteCarloRow) header() []string {
	return []string{"pair_id", "a_n", "a_u", "b_n", "b_u", "dist", "mc_std", "u_nu", "margin_nu_minus_mc"}
}

func (r MonteCarloRow) record() []string {
	return []string{
		itoa(r.PairID), ftoa(r.AN), ftoa(r.AU), ftoa(r.BN), ftoa(r.BU),
		r.Dist, ftoa(r.MCStd), ftoa(r.UNu), ftoa(r.Margin),
	}
}

// InvariantRow records Catch/Flip invariant conservation at one grid point.
type InvariantRow struct {
	N, U      float64
	M0        float64 // invariant of the original pair
	MCatch    float64 // invariant after Catch
	MFlip     float64 // invariant after Flip
	MaxAbsErr float64 // max deviation from M0
}

func (InvariantRow) header() []string {
	return []string{"n", "u", "M0", "M_catch", "M_flip", "max_abs_error"}
}

func (r InvariantRow) record() []string {
	return []string{ftoa(r.N), ftoa(r.U), ftoa(r.M0), ftoa(r.MCatch), ftoa(r.MFlip), ftoa(r.MaxAbsErr)}
}

// AssociativityRow compares (a·b)·c against a·(b·c) nominals.
type AssociativityRow struct {
	LHS     float64 // (a·b)·c nominal
	RHS     float64 // a·(b·c) nominal
	AbsDiff float64
	RelDiff float64 // AbsDiff / |LHS| (0 when LHS is 0)
}

func (AssociativityRow) header() []string {
	return []string{"nominal_lhs", "nominal_rhs", "abs_diff"}
}

func (r AssociativityRow) record() []string {
	return []string{ftoa(r.LHS), ftoa(r.RHS), ftoa(r.AbsDiff)}
}

func (AssociativityRow) headerExtended() []string {
	return append(AssociativityRow{}.header(), "rel_diff")
}

func (r AssociativityRow) recordExtended() []string {
	return append(r.record(), ftoa(r.RelDiff))
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func itoa(v int) string { return strconv.Itoa(v) }

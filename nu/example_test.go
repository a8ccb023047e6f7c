package nu_test

import (
	"fmt"

	"github.com/abba-01/nu-algebra/nu"
)

// ExamplePair_Add demonstrates summing two voltage readings: uncertainties
// add even though the measurements are independent — the bound is worst-case,
// not statistical.
func ExamplePair_Add() {
	v1 := nu.New(2.00, 0.05)
	v2 := nu.New(1.20, 0.02)

	total := v1.Add(v2)
	fmt.Printf("total = (%.2f, %.2f)\n", total.N, total.U)
	// Output:
	// total = (3.20, 0.07)
}

// ExamplePair_Mul demonstrates an area calculation with the first-order
// worst-case product rule.
func ExamplePair_Mul() {
	length := nu.New(4.0, 0.1)
	width := nu.New(3.0, 0.2)

	area := length.Mul(width)
	fmt.Printf("area = (%.1f, %.1f)\n", area.N, area.U)
	// Output:
	// area = (12.0, 1.1)
}

// ExamplePair_Catch shows the Catch and Flip involutions conserving the
// structural invariant M(n, u) = |n| + u.
func ExamplePair_Catch() {
	p := nu.New(5, 2)

	fmt.Println("catch:", p.Catch())
	fmt.Println("flip: ", p.Flip())
	fmt.Printf("M conserved: %g == %g == %g\n",
		p.Invariant(), p.Catch().Invariant(), p.Flip().Invariant())
	// Output:
	// catch: (0, 7)
	// flip:  (2, 5)
	// M conserved: 7 == 7 == 7
}

// ExamplePair_IsSignStable classifies measurements by whether their sign can
// flip within the bound.
func ExamplePair_IsSignStable() {
	fmt.Println(nu.New(10, 2).IsSignStable())
	fmt.Println(nu.New(3, 5).IsSignStable())
	fmt.Println(nu.New(5, 5).IsSignStable())
	// Output:
	// true
	// false
	// false
}

// ExampleCumulativeSum folds a day of flow readings into one conservative
// total.
func ExampleCumulativeSum() {
	readings := []nu.Pair{
		nu.New(100.0, 2.0),
		nu.New(105.0, 1.5),
		nu.New(102.5, 1.0),
	}

	total, err := nu.CumulativeSum(readings)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("total = (%.1f, %.1f)\n", total.N, total.U)
	// Output:
	// total = (307.5, 4.5)
}

// ExampleWeightedMean combines three study estimates, weighting by sample
// size, with the linear (non-RSS) uncertainty combination.
func ExampleWeightedMean() {
	studies := []nu.Pair{
		nu.New(0.45, 0.12),
		nu.New(0.38, 0.15),
		nu.New(0.52, 0.10),
	}
	weights := []float64{120, 80, 200}

	pooled, err := nu.WeightedMean(studies, weights)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pooled = (%.3f, %.3f)\n", pooled.N, pooled.U)
	// Output:
	// pooled = (0.471, 0.116)
}

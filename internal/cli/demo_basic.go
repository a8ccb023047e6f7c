package cli

import (
	"github.com/abba-01/nu-algebra/nu"
	"github.com/abba-01/nu-algebra/report"
)

// basicDemo walks through the core operations on small measurement
// scenarios: sums, products, scalars, the involutions and the queries.
func basicDemo() string {
	var b report.Builder

	b.Section("Voltage Addition")
	v1 := nu.New(2.00, 0.05)
	v2 := nu.New(1.20, 0.02)
	total := v1.Add(v2)
	b.Pair("v1", v1)
	b.Pair("v2", v2)
	b.Pair("total", total)
	b.Bounds("total", total)
	b.Text("Uncertainties add; the bound is worst-case, never statistical.")
	b.Blank()

	b.Section("Area Calculation")
	length := nu.New(4.0, 0.1)
	width := nu.New(3.0, 0.2)
	area := length.Mul(width)
	b.Pair("length", length)
	b.Pair("width", width)
	b.Pair("area", area)
	b.Relative("area", area)
	b.Blank()

	b.Section("Scalar & Affine Maps")
	x := nu.New(10, 1)
	b.Pair("x", x)
	b.Pair("2.5·x", x.Scale(2.5))
	b.Pair("2x+5", x.Affine(2, 5))
	b.Pair("-x", x.Neg())
	b.Blank()

	b.Section("Catch & Flip")
	p := nu.New(5, 2)
	b.Pair("p", p)
	b.Pair("catch(p)", p.Catch())
	b.Pair("flip(p)", p.Flip())
	b.Value("M(p)", p.Invariant())
	b.Value("M(catch(p))", p.Catch().Invariant())
	b.Value("M(flip(p))", p.Flip().Invariant())
	b.Text("Both involutions conserve M(n,u) = |n| + u exactly.")
	b.Blank()

	b.Section("Sign Stability")
	b.Stability("(10, 2)", nu.New(10, 2))
	b.Stability("(3, 5)", nu.New(3, 5))
	b.Stability("(5, 5)", nu.New(5, 5))
	b.Blank()

	b.Section("Cumulative Sum of Flow Readings")
	readings := []nu.Pair{nu.New(100.0, 2.0), nu.New(105.0, 1.5), nu.New(102.5, 1.0)}
	sum, _ := nu.CumulativeSum(readings)
	b.Pair("day total", sum)

	return b.String()
}

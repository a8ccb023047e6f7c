package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/abba-01/nu-algebra/nu"
)

// sectionWidth is the rule width used around section titles.
const sectionWidth = 70

// Builder accumulates a plain-text report. The zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// Section writes a ruled section header.
func (b *Builder) Section(title string) {
	rule := strings.Repeat("=", sectionWidth)
	fmt.Fprintf(&b.sb, "%s\n%s\n%s\n", rule, title, rule)
}

// Pair writes "label = (n, u)" with fixed four-decimal formatting.
func (b *Builder) Pair(label string, p nu.Pair) {
	fmt.Fprintf(&b.sb, "%s = (%.4f, %.4f)\n", label, p.N, p.U)
}

// Bounds writes the pair's interval as "label range = [lo, hi]".
func (b *Builder) Bounds(label string, p nu.Pair) {
	iv := p.Interval()
	fmt.Fprintf(&b.sb, "%s range = [%.4f, %.4f]\n", label, iv.Lo, iv.Hi)
}

// Relative writes the relative uncertainty as a percentage, or a "fully
// uncertain" verdict for a zero nominal.
func (b *Builder) Relative(label string, p nu.Pair) {
	rel := p.RelativeUncertainty()
	if math.IsInf(rel, 1) {
		fmt.Fprintf(&b.sb, "%s relative uncertainty = fully uncertain\n", label)

		return
	}
	fmt.Fprintf(&b.sb, "%s relative uncertainty = %.2f%%\n", label, rel*100)
}

// Stability writes the sign-stability verdict.
func (b *Builder) Stability(label string, p nu.Pair) {
	verdict := "unstable"
	if p.IsSignStable() {
		verdict = "stable"
	}
	fmt.Fprintf(&b.sb, "%s sign = %s\n", label, verdict)
}

// Value writes a bare scalar with four decimals.
func (b *Builder) Value(label string, v float64) {
	fmt.Fprintf(&b.sb, "%s = %.4f\n", label, v)
}

// Text writes a raw line.
func (b *Builder) Text(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
}

// Blank writes an empty line.
func (b *Builder) Blank() {
	b.sb.WriteByte('\n')
}

// String returns everything written so far.
func (b *Builder) String() string {
	return b.sb.String()
}

package types

import (
	"fmt"
	"math"
)

// BasisPoints is an equity percentage in fixed-point form: 1% = 100 bps.
// All ledger arithmetic is integer arithmetic on this type so that
// thousands of accumulated entries cannot drift the way floating-point
// percentages would.
// Implements: prd001-ledger-core R2 (fixed-point percentages).
type BasisPoints int64

// WholeShare is 100% of a project's equity.
const WholeShare BasisPoints = 10000

// FromPercent converts a percentage to basis points, rounding to the
// nearest whole basis point.
func FromPercent(pct float64) BasisPoints {
	return BasisPoints(math.Round(pct * 100))
}

// Percent returns the percentage this value represents.
func (b BasisPoints) Percent() float64 {
	return float64(b) / 100
}

// String renders the value as a percentage with two decimal places,
// e.g. 3500 bps -> "35.00%".
func (b BasisPoints) String() string {
	return fmt.Sprintf("%.2f%%", b.Percent())
}

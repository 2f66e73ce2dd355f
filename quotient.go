package weight

import (
	"github.com/govalues/decimal"
)

// Quotient is the result of [Weight.QuoWeight].
// It holds either a weight, when a physical weight is divided by a count,
// or a bare ratio, when both operands share a dimension.
// The zero value is a ratio of 0.
type Quotient struct {
	weight   Weight
	ratio    decimal.Decimal
	isWeight bool
}

func weightQuotient(w Weight) Quotient {
	return Quotient{weight: w, isWeight: true}
}

func ratioQuotient(r decimal.Decimal) Quotient {
	return Quotient{ratio: r}
}

// IsRatio returns true if the quotient is a bare ratio rather than a weight.
func (q Quotient) IsRatio() bool {
	return !q.isWeight
}

// Weight returns the quotient as a weight.
// The second result is false if the quotient is a ratio.
func (q Quotient) Weight() (Weight, bool) {
	if q.IsRatio() {
		return Weight{}, false
	}
	return q.weight, true
}

// Ratio returns the quotient as a bare decimal.
// The second result is false if the quotient is a weight.
func (q Quotient) Ratio() (decimal.Decimal, bool) {
	if !q.IsRatio() {
		return decimal.Decimal{}, false
	}
	return q.ratio, true
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quotient) String() string {
	if q.IsRatio() {
		return q.ratio.String()
	}
	return q.weight.String()
}

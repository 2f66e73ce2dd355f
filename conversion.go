package weight

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Operator is the arithmetic operation applied to a magnitude by a [Conversion].
// The zero value marks a missing table entry.
type Operator uint8

const (
	OpMul Operator = iota + 1 // multiply by the factor
	OpQuo                     // divide by the factor
)

// String returns "×" or "÷".
func (op Operator) String() string {
	switch op {
	case OpMul:
		return "×"
	case OpQuo:
		return "÷"
	default:
		return "?"
	}
}

// Reference constants. Every other factor is derived from them by exact
// multiplication, so that both directions of a pair use the same digits.
var (
	identity          = decimal.MustNew(1, 0)
	gramsPerOunce     = decimal.MustParse("28.34952")
	gramsPerPound     = decimal.MustParse("453.59237")
	ouncesPerPound    = decimal.MustNew(16, 0)
	milligramsPerGram = decimal.MustNew(1000, 0)
	kilogramsPerGram  = decimal.MustParse("0.001")
)

var (
	milligramsPerOunce    = mustMul(gramsPerOunce, milligramsPerGram)
	kilogramsPerOunce     = mustMul(gramsPerOunce, kilogramsPerGram)
	milligramsPerPound    = mustMul(gramsPerPound, milligramsPerGram)
	kilogramsPerPound     = mustMul(gramsPerPound, kilogramsPerGram)
	kilogramsPerMilligram = mustMul(milligramsPerGram, milligramsPerGram)
)

func mustMul(d, e decimal.Decimal) decimal.Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("%v.Mul(%v) failed: %v", d, e, err))
	}
	return f.Trim(0)
}

type entry struct {
	op     Operator
	factor decimal.Decimal
}

func mul(f decimal.Decimal) entry { return entry{op: OpMul, factor: f} }
func quo(f decimal.Decimal) entry { return entry{op: OpQuo, factor: f} }

// conversions is indexed by [from][to].
// A count carries no mass dimension, so it converts to and from every
// physical unit with its magnitude unchanged.
var conversions = [unitCount][unitCount]entry{
	Count: {
		Count:     mul(identity),
		Gram:      mul(identity),
		Ounce:     mul(identity),
		Pound:     mul(identity),
		Milligram: mul(identity),
		Kilogram:  mul(identity),
	},
	Gram: {
		Count:     mul(identity),
		Gram:      mul(identity),
		Ounce:     quo(gramsPerOunce),
		Pound:     quo(gramsPerPound),
		Milligram: mul(milligramsPerGram),
		Kilogram:  mul(kilogramsPerGram),
	},
	Ounce: {
		Count:     mul(identity),
		Gram:      mul(gramsPerOunce),
		Ounce:     mul(identity),
		Pound:     quo(ouncesPerPound),
		Milligram: mul(milligramsPerOunce),
		Kilogram:  mul(kilogramsPerOunce),
	},
	Pound: {
		Count:     mul(identity),
		Gram:      mul(gramsPerPound),
		Ounce:     mul(ouncesPerPound),
		Pound:     mul(identity),
		Milligram: mul(milligramsPerPound),
		Kilogram:  mul(kilogramsPerPound),
	},
	Milligram: {
		Count:     mul(identity),
		Gram:      quo(milligramsPerGram),
		Ounce:     quo(milligramsPerOunce),
		Pound:     quo(milligramsPerPound),
		Milligram: mul(identity),
		Kilogram:  quo(kilogramsPerMilligram),
	},
	Kilogram: {
		Count:     mul(identity),
		Gram:      quo(kilogramsPerGram),
		Ounce:     quo(kilogramsPerOunce),
		Pound:     quo(kilogramsPerPound),
		Milligram: mul(kilogramsPerMilligram),
		Kilogram:  mul(identity),
	},
}

// Conversion represents a unidirectional conversion between two units.
// The zero value is not a valid conversion; obtain one with [LookupConv].
// This type is designed to be safe for concurrent use by multiple goroutines.
type Conversion struct {
	from   Unit            // unit being converted
	to     Unit            // unit being obtained
	op     Operator        // how the factor is applied
	factor decimal.Decimal // multiplier or divisor
}

// LookupConv returns the conversion from one unit to another.
//
// LookupConv returns an error wrapping [ErrNoConversion] if either unit is
// outside the conversion table.
func LookupConv(from, to Unit) (Conversion, error) {
	if !from.IsValid() || !to.IsValid() {
		return Conversion{}, noConversion(from, to)
	}
	e := conversions[from][to]
	if e.op == 0 {
		return Conversion{}, noConversion(from, to)
	}
	return Conversion{from: from, to: to, op: e.op, factor: e.factor}, nil
}

func noConversion(from, to Unit) error {
	return fmt.Errorf("%w from %v to %v", ErrNoConversion, from.Name(), to.Name())
}

// MustLookupConv is like [LookupConv] but panics if there is no conversion.
func MustLookupConv(from, to Unit) Conversion {
	c, err := LookupConv(from, to)
	if err != nil {
		panic(fmt.Sprintf("LookupConv(%v, %v) failed: %v", from, to, err))
	}
	return c
}

// From returns the unit being converted.
func (c Conversion) From() Unit {
	return c.from
}

// To returns the unit being obtained.
func (c Conversion) To() Unit {
	return c.to
}

// Operator returns how the factor is applied to a magnitude.
func (c Conversion) Operator() Operator {
	return c.op
}

// Factor returns the multiplier or divisor of the conversion.
func (c Conversion) Factor() decimal.Decimal {
	return c.factor
}

// IsIdentity returns true if the conversion leaves magnitudes unchanged.
func (c Conversion) IsIdentity() bool {
	return c.op == OpMul && c.factor.IsOne()
}

// CanConv returns true if [Conversion.Conv] can be used to convert the given weight.
func (c Conversion) CanConv(w Weight) bool {
	return c.op != 0 && w.Unit() == c.From()
}

// Conv returns the weight converted from the source unit to the target unit.
//
// Conv returns an error if:
//   - the unit of the weight does not match the source unit;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (c Conversion) Conv(w Weight) (Weight, error) {
	if !c.CanConv(w) {
		return Weight{}, fmt.Errorf("converting %v with %v: %w", w, c, noConversion(w.Unit(), c.To()))
	}
	d, err := c.apply(w.Decimal())
	if err != nil {
		return Weight{}, fmt.Errorf("converting %v to %v: %w", w, c.To().Name(), err)
	}
	return newWeightUnsafe(c.To(), d), nil
}

func (c Conversion) apply(d decimal.Decimal) (decimal.Decimal, error) {
	switch c.op {
	case OpMul:
		return d.Mul(c.factor)
	case OpQuo:
		return d.Quo(c.factor)
	default:
		return decimal.Decimal{}, noConversion(c.from, c.to)
	}
}

// Inv returns the conversion in the opposite direction.
// The result is taken from the conversion table rather than computed, so
// the factor keeps its exact digits.
func (c Conversion) Inv() (Conversion, error) {
	return LookupConv(c.to, c.from)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the conversion, such as "g/oz ÷ 28.34952".
// The dimensionless unit is rendered by its display name.
func (c Conversion) String() string {
	return label(c.from) + "/" + label(c.to) + " " + c.op.String() + " " + c.factor.String()
}

func label(u Unit) string {
	if a := u.Abbr(); a != "" {
		return a
	}
	return u.Name()
}

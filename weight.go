package weight

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidArgument is returned when a dynamic entry point, such as
	// [Weight.Scan] or [Weight.UnmarshalJSON], receives non-textual input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidWeight is returned when text does not describe a weight.
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrNoConversion is returned when there is no conversion between two units.
	ErrNoConversion = errors.New("no conversion")
)

// Weight type represents a physical weight.
// Its zero value corresponds to "0", a dimensionless count of zero.
// Weight is designed to be safe for concurrent use by multiple goroutines.
type Weight struct {
	unit  Unit            // unit of mass
	value decimal.Decimal // magnitude expressed in unit
}

func newWeightUnsafe(u Unit, d decimal.Decimal) Weight {
	return Weight{unit: u, value: d}
}

// NewWeight returns a weight equal to coef / 10^scale expressed in the given unit.
//
// NewWeight returns an error if the scale is negative or greater than
// [decimal.MaxScale].
func NewWeight(coef int64, scale int, u Unit) (Weight, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Weight{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return newWeightUnsafe(u, d), nil
}

// MustNewWeight is like [NewWeight] but panics if the weight cannot be constructed.
// It simplifies safe initialization of global variables holding weights.
func MustNewWeight(coef int64, scale int, u Unit) Weight {
	w, err := NewWeight(coef, scale, u)
	if err != nil {
		panic(fmt.Sprintf("NewWeight(%v, %v, %v) failed: %v", coef, scale, u, err))
	}
	return w
}

// NewWeightFromDecimal returns a weight with the specified magnitude and unit.
// See also method [Weight.Decimal].
func NewWeightFromDecimal(d decimal.Decimal, u Unit) Weight {
	return newWeightUnsafe(u, d)
}

// NewWeightFromInt64 returns a weight with an integer magnitude.
func NewWeightFromInt64(n int64, u Unit) Weight {
	return newWeightUnsafe(u, decimal.MustNew(n, 0))
}

// NewWeightFromFloat64 converts a float to a (possibly rounded) weight.
//
// NewWeightFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func NewWeightFromFloat64(f float64, u Unit) (Weight, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Weight{}, fmt.Errorf("converting float: special value %v", f)
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Weight{}, fmt.Errorf("converting float: %w", err)
	}
	return newWeightUnsafe(u, d), nil
}

// ParseWeight converts a string to a weight.
// The input must be a decimal number optionally followed by whitespace and
// a unit, in one of the following formats:
//
//	12
//	3.5 lb
//	0 KG
//
// Leading and trailing whitespace is ignored.
// A number without a unit is a dimensionless [Count].
// Units are looked up case-insensitively, see [ParseUnit].
//
// ParseWeight returns an error wrapping [ErrInvalidWeight] if the number is
// missing or malformed, the unit is unknown, or there are extra tokens.
func ParseWeight(s string) (Weight, error) {
	fields := strings.Fields(s)
	u := Count
	switch len(fields) {
	case 1:
		// dimensionless
	case 2:
		var err error
		u, err = ParseUnit(fields[1])
		if err != nil {
			return Weight{}, fmt.Errorf("parsing weight %q: %w: %w", s, ErrInvalidWeight, err)
		}
	default:
		return Weight{}, fmt.Errorf("parsing weight %q: %w: expected a number and an optional unit", s, ErrInvalidWeight)
	}
	d, err := decimal.Parse(fields[0])
	if err != nil {
		return Weight{}, fmt.Errorf("parsing weight %q: %w: %w", s, ErrInvalidWeight, err)
	}
	return newWeightUnsafe(u, d), nil
}

// MustParseWeight is like [ParseWeight] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding weights.
func MustParseWeight(s string) Weight {
	w, err := ParseWeight(s)
	if err != nil {
		panic(fmt.Sprintf("ParseWeight(%q) failed: %v", s, err))
	}
	return w
}

// Unit returns the unit of the weight.
func (w Weight) Unit() Unit {
	return w.unit
}

// Decimal returns the magnitude of the weight.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// Scale returns the number of digits after the decimal point.
func (w Weight) Scale() int {
	return w.value.Scale()
}

// Sign returns:
//
//	-1 if w < 0
//	 0 if w = 0
//	+1 if w > 0
func (w Weight) Sign() int {
	return w.value.Sign()
}

// IsNeg returns:
//
//	true  if w < 0
//	false otherwise
func (w Weight) IsNeg() bool {
	return w.value.IsNeg()
}

// IsPos returns:
//
//	true  if w > 0
//	false otherwise
func (w Weight) IsPos() bool {
	return w.value.IsPos()
}

// IsZero returns:
//
//	true  if w = 0
//	false otherwise
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// Abs returns the absolute value of the weight.
func (w Weight) Abs() Weight {
	return newWeightUnsafe(w.unit, w.value.Abs())
}

// Neg returns a weight with the opposite sign.
func (w Weight) Neg() Weight {
	return newWeightUnsafe(w.unit, w.value.Neg())
}

// CopySign returns a weight with the same sign as weight v.
// The unit of weight v is ignored.
// CopySign treats 0 as positive.
func (w Weight) CopySign(v Weight) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().CopySign(v.Decimal()))
}

// MinScale returns the smallest scale that the weight can be rescaled to
// without rounding.
// See also method [Weight.Trim].
func (w Weight) MinScale() int {
	return w.Decimal().MinScale()
}

// IsInt returns true if there are no significant digits after the decimal point.
func (w Weight) IsInt() bool {
	return w.Decimal().IsInt()
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (w Weight) Float64() (f float64, ok bool) {
	return w.Decimal().Float64()
}

// Zero returns a weight with a value of 0, having the same unit and scale
// as weight w.
func (w Weight) Zero() Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Zero())
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two weights with the same unit and scale as weight w.
func (w Weight) ULP() Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().ULP())
}

// To returns the weight expressed in the given unit.
// See also function [LookupConv].
//
// To returns an error if:
//   - there is no conversion between the units, see [ErrNoConversion];
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) To(u Unit) (Weight, error) {
	c, err := LookupConv(w.Unit(), u)
	if err != nil {
		return Weight{}, err
	}
	return c.Conv(w)
}

// in returns the magnitude of weight w expressed in unit u.
func (w Weight) in(u Unit) (decimal.Decimal, error) {
	v, err := w.To(u)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return v.Decimal(), nil
}

// Add returns the (possibly rounded) sum of weights w and v.
// Weight v is converted to the unit of weight w, and the result is
// expressed in the unit of weight w.
//
// Add returns an error if:
//   - there is no conversion from the unit of v to the unit of w;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) Add(v Weight) (Weight, error) {
	c, err := w.add(v)
	if err != nil {
		return Weight{}, fmt.Errorf("computing [%v + %v]: %w", w, v, err)
	}
	return c, nil
}

func (w Weight) add(v Weight) (Weight, error) {
	e, err := v.in(w.Unit())
	if err != nil {
		return Weight{}, err
	}
	d, err := w.Decimal().Add(e)
	if err != nil {
		return Weight{}, err
	}
	return newWeightUnsafe(w.Unit(), d), nil
}

// Sub returns the (possibly rounded) difference between weights w and v.
// Weight v is converted to the unit of weight w, and the result is
// expressed in the unit of weight w.
//
// Sub returns an error if:
//   - there is no conversion from the unit of v to the unit of w;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) Sub(v Weight) (Weight, error) {
	c, err := w.sub(v)
	if err != nil {
		return Weight{}, fmt.Errorf("computing [%v - %v]: %w", w, v, err)
	}
	return c, nil
}

func (w Weight) sub(v Weight) (Weight, error) {
	e, err := v.in(w.Unit())
	if err != nil {
		return Weight{}, err
	}
	d, err := w.Decimal().Sub(e)
	if err != nil {
		return Weight{}, err
	}
	return newWeightUnsafe(w.Unit(), d), nil
}

// Mul returns the (possibly rounded) product of weight w and factor e.
//
// Mul returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (w Weight) Mul(e decimal.Decimal) (Weight, error) {
	d, err := w.Decimal().Mul(e)
	if err != nil {
		return Weight{}, fmt.Errorf("computing [%v * %v]: %w", w, e, err)
	}
	return newWeightUnsafe(w.Unit(), d), nil
}

// MulWeight returns the (possibly rounded) product of weights w and v,
// expressed in the unit of weight w.
// If v is a [Count], its magnitude is used as a plain factor.
// Otherwise v is first converted to the unit of w, so multiplying two
// physical weights yields the product of their magnitudes labelled with
// the unit of w.
//
// MulWeight returns an error if:
//   - there is no conversion from the unit of v to the unit of w;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) MulWeight(v Weight) (Weight, error) {
	c, err := w.mulWeight(v)
	if err != nil {
		return Weight{}, fmt.Errorf("computing [%v * %v]: %w", w, v, err)
	}
	return c, nil
}

func (w Weight) mulWeight(v Weight) (Weight, error) {
	e := v.Decimal()
	if v.Unit() != Count {
		var err error
		e, err = v.in(w.Unit())
		if err != nil {
			return Weight{}, err
		}
	}
	d, err := w.Decimal().Mul(e)
	if err != nil {
		return Weight{}, err
	}
	return newWeightUnsafe(w.Unit(), d), nil
}

// Quo returns the (possibly rounded) quotient of weight w and divisor e.
// See also methods [Weight.QuoWeight] and [Weight.Rat].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) Quo(e decimal.Decimal) (Weight, error) {
	d, err := w.Decimal().Quo(e)
	if err != nil {
		return Weight{}, fmt.Errorf("computing [%v / %v]: %w", w, e, err)
	}
	return newWeightUnsafe(w.Unit(), d), nil
}

// QuoWeight divides weight w by weight v.
//
// If v is a [Count] and w is not, the magnitude of v is used as a plain
// divisor and the quotient is a weight in the unit of w.
// Otherwise v is converted to the unit of w and the quotient is the bare
// ratio of their magnitudes.
// See also methods [Weight.Quo] and [Weight.Rat].
//
// QuoWeight returns an error if:
//   - there is no conversion from the unit of v to the unit of w;
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) QuoWeight(v Weight) (Quotient, error) {
	q, err := w.quoWeight(v)
	if err != nil {
		return Quotient{}, fmt.Errorf("computing [%v / %v]: %w", w, v, err)
	}
	return q, nil
}

func (w Weight) quoWeight(v Weight) (Quotient, error) {
	if v.Unit() == Count && w.Unit() != Count {
		d, err := w.Decimal().Quo(v.Decimal())
		if err != nil {
			return Quotient{}, err
		}
		return weightQuotient(newWeightUnsafe(w.Unit(), d)), nil
	}
	r, err := w.rat(v)
	if err != nil {
		return Quotient{}, err
	}
	return ratioQuotient(r), nil
}

// Rat returns the (possibly rounded) ratio between weights w and v,
// after converting v to the unit of w.
// Unlike [Weight.QuoWeight], the result is always a bare decimal.
//
// Rat returns an error if:
//   - there is no conversion from the unit of v to the unit of w;
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (w Weight) Rat(v Weight) (decimal.Decimal, error) {
	r, err := w.rat(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", w, v, err)
	}
	return r, nil
}

func (w Weight) rat(v Weight) (decimal.Decimal, error) {
	e, err := v.in(w.Unit())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return w.Decimal().Quo(e)
}

// Split returns a slice of weights that sum up to the original weight,
// ensuring the parts are as equal as possible.
// If the weight cannot be divided equally at its own scale, the remainder
// is distributed among the first parts of the slice.
// See also method [Weight.QuoWeight].
//
// Split returns an error if the number of parts is not a positive integer.
func (w Weight) Split(parts int) ([]Weight, error) {
	r, err := w.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", w, parts, err)
	}
	return r, nil
}

func (w Weight) split(parts int) ([]Weight, error) {
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}
	if !par.IsPos() {
		return nil, fmt.Errorf("number of parts must be positive")
	}

	quo, err := w.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(w.Scale())

	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = w.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := rem.ULP().CopySign(rem)

	res := make([]Weight, parts)
	for i := range res {
		res[i] = quo
		if !rem.IsZero() {
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
			res[i], err = res[i].Add(ulp)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// Round returns a weight rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// See also methods [Weight.Trunc], [Weight.Ceil], [Weight.Floor].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (w Weight) Round(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Round(scale))
}

// Trunc returns a weight truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (w Weight) Trunc(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Trunc(scale))
}

// Ceil returns a weight rounded up to the specified number of digits after
// the decimal point using [rounding toward positive infinity].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (w Weight) Ceil(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Ceil(scale))
}

// Floor returns a weight rounded down to the specified number of digits after
// the decimal point using [rounding toward negative infinity].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (w Weight) Floor(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Floor(scale))
}

// Trim returns a weight with trailing zeros removed up to the given scale.
func (w Weight) Trim(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Trim(scale))
}

// Rescale returns a weight rounded or zero-padded to the given number of
// digits after the decimal point.
// See also method [Weight.Round].
func (w Weight) Rescale(scale int) Weight {
	return newWeightUnsafe(w.Unit(), w.Decimal().Rescale(scale))
}

// Quantize returns a weight rescaled to the same scale as weight v.
// The unit and the sign of weight v are ignored.
// See also methods [Weight.SameScale], [Weight.Rescale].
func (w Weight) Quantize(v Weight) Weight {
	return w.Rescale(v.Scale())
}

// SameUnit returns true if weights are expressed in the same unit.
func (w Weight) SameUnit(v Weight) bool {
	return w.Unit() == v.Unit()
}

// SameScale returns true if weights have the same scale.
// See also methods [Weight.Scale], [Weight.Quantize].
func (w Weight) SameScale(v Weight) bool {
	return w.Decimal().SameScale(v.Decimal())
}

// Cmp compares weights after converting v to the unit of w and returns:
//
//	-1 if w < v
//	 0 if w = v
//	+1 if w > v
//
// Cmp returns an error if there is no conversion from the unit of v to the
// unit of w, or the converted magnitude overflows.
func (w Weight) Cmp(v Weight) (int, error) {
	e, err := v.in(w.Unit())
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", w, v, err)
	}
	return w.Decimal().Cmp(e), nil
}

// CmpAbs compares absolute values of weights after converting v to the
// unit of w and returns:
//
//	-1 if |w| < |v|
//	 0 if |w| = |v|
//	+1 if |w| > |v|
//
// See also method [Weight.Cmp].
func (w Weight) CmpAbs(v Weight) (int, error) {
	e, err := v.in(w.Unit())
	if err != nil {
		return 0, fmt.Errorf("comparing [abs(%v)] and [abs(%v)]: %w", w, v, err)
	}
	return w.Decimal().CmpAbs(e), nil
}

// Equal returns true if w = v. See also method [Weight.Cmp].
func (w Weight) Equal(v Weight) (bool, error) {
	c, err := w.Cmp(v)
	return c == 0 && err == nil, err
}

// Less returns true if w < v. See also method [Weight.Cmp].
func (w Weight) Less(v Weight) (bool, error) {
	c, err := w.Cmp(v)
	return c < 0 && err == nil, err
}

// LessOrEqual returns true if w <= v. See also method [Weight.Cmp].
func (w Weight) LessOrEqual(v Weight) (bool, error) {
	c, err := w.Cmp(v)
	return c <= 0 && err == nil, err
}

// Greater returns true if w > v. See also method [Weight.Cmp].
func (w Weight) Greater(v Weight) (bool, error) {
	c, err := w.Cmp(v)
	return c > 0 && err == nil, err
}

// GreaterOrEqual returns true if w >= v. See also method [Weight.Cmp].
func (w Weight) GreaterOrEqual(v Weight) (bool, error) {
	c, err := w.Cmp(v)
	return c >= 0 && err == nil, err
}

// Min returns the smaller weight, keeping its own unit.
// If the weights are equal, w is returned.
// See also method [Weight.Cmp].
func (w Weight) Min(v Weight) (Weight, error) {
	switch c, err := w.Cmp(v); {
	case err != nil:
		return Weight{}, err
	case c <= 0: // w <= v
		return w, nil
	default:
		return v, nil
	}
}

// Max returns the larger weight, keeping its own unit.
// If the weights are equal, w is returned.
// See also method [Weight.Cmp].
func (w Weight) Max(v Weight) (Weight, error) {
	switch c, err := w.Cmp(v); {
	case err != nil:
		return Weight{}, err
	case c >= 0: // w >= v
		return w, nil
	default:
		return v, nil
	}
}

// Clamp compares weights and returns:
//
//	min if w < min
//	max if w > max
//	  w otherwise
//
// Bounds keep their own units.
// See also method [Weight.Cmp].
//
// Clamp returns an error if:
//   - there is no conversion between the units;
//   - min is greater than max.
func (w Weight) Clamp(min, max Weight) (Weight, error) {
	switch c, err := min.Cmp(max); {
	case err != nil:
		return Weight{}, err
	case c > 0: // min > max
		return Weight{}, fmt.Errorf("clamping %v: invalid range", w)
	}
	switch c, err := w.Cmp(min); {
	case err != nil:
		return Weight{}, err
	case c < 0: // w < min
		return min, nil
	}
	switch c, err := w.Cmp(max); {
	case err != nil:
		return Weight{}, err
	case c > 0: // w > max
		return max, nil
	}
	return w, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of a weight, such as "3.5 lb".
// A [Count] is rendered without a unit.
// See also methods [Unit.Abbr], [Weight.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (w Weight) String() string {
	return string(w.append(make([]byte, 0, 32)))
}

func (w Weight) append(text []byte) []byte {
	text = append(text, w.Decimal().String()...)
	if a := w.Unit().Abbr(); a != "" {
		text = append(text, ' ')
		text = append(text, a...)
	}
	return text
}

// MarshalJSON implements the [json.Marshaler] interface.
// The weight is encoded as an object holding the exact decimal text and
// the unit identifier:
//
//	{"value":"3.5","unit":"POUND"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Unit().IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", w, errInvalidUnit)
	}
	text := make([]byte, 0, 48)
	text = append(text, `{"value":"`...)
	text = append(text, w.Decimal().String()...)
	text = append(text, `","unit":"`...)
	text = append(text, w.Unit().Code()...)
	text = append(text, `"}`...)
	return text, nil
}

type weightJSON struct {
	Value json.RawMessage `json:"value"`
	Unit  *Unit           `json:"unit"`
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the object produced by [Weight.MarshalJSON], a string in the
// format of [ParseWeight], or null.
// A missing unit in the object means [Count].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (w *Weight) UnmarshalJSON(text []byte) error {
	text = bytes.TrimSpace(text)
	var err error
	switch {
	case string(text) == "null":
		return nil
	case len(text) > 0 && text[0] == '"':
		var s string
		if err = json.Unmarshal(text, &s); err == nil {
			*w, err = ParseWeight(s)
		}
	case len(text) > 0 && text[0] == '{':
		*w, err = unmarshalObject(text)
	default:
		err = fmt.Errorf("%w: JSON value %s is neither a string nor an object", ErrInvalidArgument, text)
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Weight{}, err)
	}
	return nil
}

func unmarshalObject(text []byte) (Weight, error) {
	var obj weightJSON
	if err := json.Unmarshal(text, &obj); err != nil {
		return Weight{}, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}
	if len(obj.Value) == 0 || string(obj.Value) == "null" {
		return Weight{}, fmt.Errorf("%w: missing value", ErrInvalidWeight)
	}
	v := obj.Value
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	d, err := decimal.Parse(string(v))
	if err != nil {
		return Weight{}, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}
	u := Count
	if obj.Unit != nil {
		u = *obj.Unit
	}
	return newWeightUnsafe(u, d), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseWeight].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (w *Weight) UnmarshalText(text []byte) error {
	var err error
	*w, err = ParseWeight(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Weight{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Weight.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (w Weight) AppendText(text []byte) ([]byte, error) {
	if !w.Unit().IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", w, errInvalidUnit)
	}
	return w.append(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Weight.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (w Weight) MarshalText() ([]byte, error) {
	return w.AppendText(nil)
}

// Scan implements the [sql.Scanner] interface.
// The column must hold text in the format of [ParseWeight].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (w *Weight) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*w, err = ParseWeight(value)
	case []byte:
		*w, err = ParseWeight(string(value))
	case nil:
		err = fmt.Errorf("%w: %T does not support null values", ErrInvalidArgument, Weight{})
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidArgument, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Weight{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Weight.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (w Weight) Value() (driver.Value, error) {
	return w.String(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description                  |
//	| ------ | -------- | ---------------------------- |
//	| %s, %v | 3.5 lb   | Magnitude and abbreviation   |
//	| %q     | "3.5 lb" | Quoted weight                |
//	| %f     | 3.5      | Magnitude                    |
//	| %c     | lb       | Abbreviation                 |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the weight.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (w Weight) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = w.String()
	case 'q', 'Q':
		text = strconv.Quote(w.String())
	case 'f', 'F':
		d := w.Decimal()
		if p, ok := state.Precision(); ok {
			d = d.Round(p).Pad(p)
		}
		text = d.String()
	case 'c', 'C':
		text = w.Unit().Abbr()
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(weight.Weight=%s)", verb, w.String())
		return
	}
	writePadded(state, text)
}

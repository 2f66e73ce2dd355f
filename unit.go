package weight

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a unit of mass.
// The zero value is [Count], a dimensionless count of items.
//
// Unit is implemented as an integer index into in-memory arrays that store
// the identifier, display name and abbreviation of each unit.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
//
// When persisting a unit, use the identifier returned by the [Unit.Code]
// method rather than the integer index, as the mapping between index and
// a particular unit may change in future versions.
type Unit uint8

var errInvalidUnit = errors.New("invalid unit")

// ParseUnit converts a string to unit.
// The lookup is case-insensitive and accepts identifiers, abbreviations and
// common spellings, for example:
//
//	KILOGRAM
//	kg
//	Kilos
//
// ParseUnit returns an error if the string does not name a known unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[strings.ToLower(unit)]
	if !ok {
		return Count, fmt.Errorf("%w %q", errInvalidUnit, unit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// IsValid returns true if the unit belongs to the closed set of units.
func (u Unit) IsValid() bool {
	return u < unitCount
}

// Code returns the identifier of the unit, such as "GRAM".
// Units outside the closed set are rendered as "Unit(N)".
func (u Unit) Code() string {
	if !u.IsValid() {
		return u.invalid()
	}
	return codeLookup[u]
}

// Name returns the display name of the unit, such as "gram".
// Units outside the closed set are rendered as "Unit(N)".
func (u Unit) Name() string {
	if !u.IsValid() {
		return u.invalid()
	}
	return nameLookup[u]
}

// Abbr returns the abbreviation of the unit, such as "g".
// The abbreviation of [Count] is an empty string.
func (u Unit) Abbr() string {
	if !u.IsValid() {
		return u.invalid()
	}
	return abbrLookup[u]
}

func (u Unit) invalid() string {
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// String method implements the [fmt.Stringer] interface and returns
// the identifier of the unit.
// See also methods [Unit.Code], [Unit.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Count, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the identifier.
// See also method [Unit.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	if !u.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", u, errInvalidUnit)
	}
	code := u.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Count, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the identifier.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	if !u.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", u, errInvalidUnit)
	}
	return append(text, u.Code()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the identifier.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return u.AppendText(nil)
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	case nil:
		err = fmt.Errorf("%w: %T does not support null values", ErrInvalidArgument, Count)
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidArgument, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Count, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return u.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description         |
//	| ------ | ------- | ------------------- |
//	| %s, %v | GRAM    | Identifier          |
//	| %q     | "GRAM"  | Quoted identifier   |
//	| %c     | g       | Abbreviation        |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'c', 'C':
		text = u.Abbr()
	case 'q', 'Q':
		text = strconv.Quote(u.Code())
	case 's', 'S', 'v', 'V':
		text = u.Code()
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(weight.Unit=%s)", verb, u.Code())
		return
	}
	writePadded(state, text)
}

// writePadded writes text honouring the width and '-' flag of the state.
func writePadded(state fmt.State, text string) {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		//nolint:errcheck
		state.Write([]byte(text))
		return
	}
	pad := strings.Repeat(" ", w-len(text))
	if state.Flag('-') {
		text += pad
	} else {
		text = pad + text
	}
	//nolint:errcheck
	state.Write([]byte(text))
}

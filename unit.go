package measure

import (
	"errors"
	"fmt"
	"sync"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a unit of measurement, such as metre or knot.
// The zero value is [One], which indicates a dimensionless quantity.
//
// Unit is implemented as an integer index into an in-memory array that
// stores properties such as symbol, name, base unit, and the transformation
// to the base unit.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
//
// Units are compatible if they share the same base unit, for example
// [Knot] and [KilometrePerHour] both have the base unit [MetrePerSecond].
// No further dimensional analysis is performed.
//
// When persisting a unit value, use the symbol returned by the
// [Unit.Symbol] method, rather than the integer index, as mapping between
// index and a particular unit may change in future versions.
type Unit uint8

var (
	// ErrUnknownUnit is returned when a string does not name a known unit.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnitMismatch is returned when a conversion between units with
	// different base units is requested.
	ErrUnitMismatch = errors.New("unit mismatch")
)

// unitInfo describes how a value in a unit is converted to the base unit:
// the offset is added first, the result is multiplied by the factor and then
// by the current value of the constant, if any.
type unitInfo struct {
	symbol   string
	name     string
	base     Unit
	factor   string
	offset   string
	constant string
}

// ParseUnit converts a string to a unit.
// The input string can be either a symbol or a name, for example:
//
//	kn
//	knot
//	°C
//	degC
//
// ParseUnit returns an error if the string does not represent a known unit.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitLookup[s]
	if !ok {
		return One, fmt.Errorf("parsing %q: %w", s, ErrUnknownUnit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", s, err))
	}
	return u
}

// Units returns all known units.
func Units() []Unit {
	units := make([]Unit, len(unitTable))
	for i := range unitTable {
		units[i] = Unit(i)
	}
	return units
}

func (u Unit) info() unitInfo {
	if int(u) >= len(unitTable) {
		return unitTable[One]
	}
	return unitTable[u]
}

// Symbol returns the symbol of the unit, such as "kn" for [Knot].
func (u Unit) Symbol() string {
	return u.info().symbol
}

// Name returns the name of the unit, such as "knot" for [Knot].
func (u Unit) Name() string {
	return u.info().name
}

// Base returns the unit all compatible units are converted through,
// such as [MetrePerSecond] for [Knot].
func (u Unit) Base() Unit {
	return u.info().base
}

// Compatible returns true if values can be converted between units u and v.
func (u Unit) Compatible(v Unit) bool {
	return u.Base() == v.Base()
}

var unitConverters = sync.OnceValue(func() []Converter {
	cs := make([]Converter, len(unitTable))
	for i, info := range unitTable {
		cs[i] = info.converter()
	}
	return cs
})

func (info unitInfo) converter() Converter {
	c := Chain(
		NewOffset(MustParseRat(info.offset)),
		MustNewMultiplier(MustParseRat(info.factor)),
	)
	if info.constant != "" {
		k, err := LookupConstant(info.constant)
		if err != nil {
			panic(fmt.Sprintf("unit %q: %v", info.symbol, err))
		}
		c = c.Compose(k.Converter())
	}
	return c
}

// BaseConverter returns the converter from u to its base unit.
func (u Unit) BaseConverter() Converter {
	if int(u) >= len(unitTable) {
		return Identity()
	}
	return unitConverters()[u]
}

// ConverterTo returns the converter from u to v.
// Converters of units based on physical constants, such as [KilogramForce],
// use the current value of the constant every time they are applied.
//
// ConverterTo returns an error if the units are not compatible.
func (u Unit) ConverterTo(v Unit) (Converter, error) {
	if !u.Compatible(v) {
		return Converter{}, fmt.Errorf("converting from %v to %v: %w", u, v, ErrUnitMismatch)
	}
	if u == v {
		return Identity(), nil
	}
	return u.BaseConverter().Compose(v.BaseConverter().Inverse()), nil
}

// String method implements the [fmt.Stringer] interface and returns
// the symbol of the unit.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Symbol()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", One, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the symbol of the unit.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
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
	return u.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted symbol of the unit.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	s := u.Symbol()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

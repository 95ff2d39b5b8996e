package measure

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// ErrUnsupportedNumber is returned when a [Number] has a dynamic type
// that no [NumberSystem] can handle.
var ErrUnsupportedNumber = errors.New("unsupported number type")

// Number is a numeric value accepted by converters and number systems.
// The following dynamic types are supported:
//
//   - exact: [Rational], [decimal.Decimal], *[big.Int], *[big.Rat],
//     int, int8, int16, int32, int64, uint8, uint16, uint32, uint64;
//   - approximate: float32, float64.
//
// Values of any other type are rejected with [ErrUnsupportedNumber].
// Arguments of pointer types are never modified.
type Number = any

// NumberSystem is a strategy that defines how arithmetic on [Number] values
// is carried out.
// The package provides two number systems: [Exact] and [Float].
//
// There is no process-wide current number system: it is passed explicitly
// to every computation (see [Converter.ConvertWith], [Calc] and
// [Quantity.ToWith]), so computations in different number systems can run
// concurrently without affecting each other.
type NumberSystem interface {
	// Name returns the name of the number system, see [ParseNumberSystem].
	Name() string
	Add(x, y Number) (Number, error)
	Sub(x, y Number) (Number, error)
	Mul(x, y Number) (Number, error)
	// Quo returns an error wrapping ErrDivisionByZero if y is 0.
	Quo(x, y Number) (Number, error)
	Neg(x Number) (Number, error)
	// Cmp returns -1, 0 or +1.
	Cmp(x, y Number) (int, error)
	// Narrow returns the canonical representation of x in the number system.
	Narrow(x Number) (Number, error)
}

var (
	// Exact is the number system of exact rational arithmetic.
	// If at least one operand is exact, both operands are converted to
	// [Rational] and the result is a [Rational]; in particular multiplying
	// a Rational by an integer or a decimal never falls back to floating point.
	// Float operands are converted with [NewRatFromFloat64].
	// If both operands are floats, native float64 arithmetic is used.
	Exact NumberSystem = exactSystem{}

	// Float is the number system of native float64 arithmetic.
	// All operands are converted to float64 and precision loss is accepted.
	// Overflow produces infinities, which are propagated rather than trapped.
	Float NumberSystem = floatSystem{}
)

// ParseNumberSystem returns the number system with the given name,
// "exact" or "float" (case-insensitive).
func ParseNumberSystem(name string) (NumberSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "rational":
		return Exact, nil
	case "float", "float64":
		return Float, nil
	}
	return nil, fmt.Errorf("unknown number system %q", name)
}

type numberKind uint8

const (
	kindUnsupported numberKind = iota
	kindExact
	kindFloat
)

func classify(x Number) numberKind {
	switch x.(type) {
	case Rational, decimal.Decimal, *big.Int, *big.Rat,
		int, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		return kindExact
	case float32, float64:
		return kindFloat
	}
	return kindUnsupported
}

func checkNumber(x Number) error {
	if classify(x) == kindUnsupported {
		return fmt.Errorf("%T: %w", x, ErrUnsupportedNumber)
	}
	return nil
}

// toRat converts a number to a rational number without modifying it.
func toRat(x Number) (Rational, error) {
	switch x := x.(type) {
	case Rational:
		return x, nil
	case decimal.Decimal:
		return NewRatFromDecimal(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return newRatUnsafe(new(big.Rat).SetInt(x)), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return newRatUnsafe(new(big.Rat).Set(x)), nil
	case int:
		return NewRatFromInt64(int64(x)), nil
	case int8:
		return NewRatFromInt64(int64(x)), nil
	case int16:
		return NewRatFromInt64(int64(x)), nil
	case int32:
		return NewRatFromInt64(int64(x)), nil
	case int64:
		return NewRatFromInt64(x), nil
	case uint8:
		return NewRatFromInt64(int64(x)), nil
	case uint16:
		return NewRatFromInt64(int64(x)), nil
	case uint32:
		return NewRatFromInt64(int64(x)), nil
	case uint64:
		return newRatUnsafe(new(big.Rat).SetInt(new(big.Int).SetUint64(x))), nil
	case float32:
		return toRat(float64(x))
	case float64:
		r, err := NewRatFromFloat64(x)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: %w", ErrUnsupportedNumber, err)
		}
		return r, nil
	}
	return Rational{}, fmt.Errorf("%T: %w", x, ErrUnsupportedNumber)
}

// toFloat converts a number to the nearest float64.
func toFloat(x Number) (float64, error) {
	switch x := x.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case decimal.Decimal:
		f, _ := x.Float64()
		return f, nil
	}
	r, err := toRat(x)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

type exactSystem struct{}

func (exactSystem) Name() string {
	return "exact"
}

// floats reports whether both operands are floats, in which case native
// arithmetic is used.
func (exactSystem) floats(x, y Number) (bool, error) {
	kx, ky := classify(x), classify(y)
	if kx == kindUnsupported {
		return false, fmt.Errorf("%T: %w", x, ErrUnsupportedNumber)
	}
	if ky == kindUnsupported {
		return false, fmt.Errorf("%T: %w", y, ErrUnsupportedNumber)
	}
	return kx == kindFloat && ky == kindFloat, nil
}

func (s exactSystem) rats(x, y Number) (Rational, Rational, error) {
	d, err := toRat(x)
	if err != nil {
		return Rational{}, Rational{}, err
	}
	e, err := toRat(y)
	if err != nil {
		return Rational{}, Rational{}, err
	}
	return d, e, nil
}

func (s exactSystem) Add(x, y Number) (Number, error) {
	ok, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	if ok {
		return Float.Add(x, y)
	}
	d, e, err := s.rats(x, y)
	if err != nil {
		return nil, err
	}
	return d.Add(e), nil
}

func (s exactSystem) Sub(x, y Number) (Number, error) {
	ok, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	if ok {
		return Float.Sub(x, y)
	}
	d, e, err := s.rats(x, y)
	if err != nil {
		return nil, err
	}
	return d.Sub(e), nil
}

func (s exactSystem) Mul(x, y Number) (Number, error) {
	ok, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	if ok {
		return Float.Mul(x, y)
	}
	d, e, err := s.rats(x, y)
	if err != nil {
		return nil, err
	}
	return d.Mul(e), nil
}

func (s exactSystem) Quo(x, y Number) (Number, error) {
	ok, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	if ok {
		return Float.Quo(x, y)
	}
	d, e, err := s.rats(x, y)
	if err != nil {
		return nil, err
	}
	return d.Quo(e)
}

func (s exactSystem) Neg(x Number) (Number, error) {
	switch classify(x) {
	case kindFloat:
		return Float.Neg(x)
	case kindExact:
		d, err := toRat(x)
		if err != nil {
			return nil, err
		}
		return d.Neg(), nil
	}
	return nil, fmt.Errorf("%T: %w", x, ErrUnsupportedNumber)
}

func (s exactSystem) Cmp(x, y Number) (int, error) {
	ok, err := s.floats(x, y)
	if err != nil {
		return 0, err
	}
	if ok {
		return Float.Cmp(x, y)
	}
	d, e, err := s.rats(x, y)
	if err != nil {
		return 0, err
	}
	return d.Cmp(e), nil
}

func (s exactSystem) Narrow(x Number) (Number, error) {
	switch classify(x) {
	case kindFloat:
		return Float.Narrow(x)
	case kindExact:
		return toRat(x)
	}
	return nil, fmt.Errorf("%T: %w", x, ErrUnsupportedNumber)
}

type floatSystem struct{}

func (floatSystem) Name() string {
	return "float"
}

func (floatSystem) floats(x, y Number) (float64, float64, error) {
	f, err := toFloat(x)
	if err != nil {
		return 0, 0, err
	}
	g, err := toFloat(y)
	if err != nil {
		return 0, 0, err
	}
	return f, g, nil
}

func (s floatSystem) Add(x, y Number) (Number, error) {
	f, g, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	return f + g, nil
}

func (s floatSystem) Sub(x, y Number) (Number, error) {
	f, g, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	return f - g, nil
}

func (s floatSystem) Mul(x, y Number) (Number, error) {
	f, g, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	return f * g, nil
}

func (s floatSystem) Quo(x, y Number) (Number, error) {
	f, g, err := s.floats(x, y)
	if err != nil {
		return nil, err
	}
	if g == 0 {
		return nil, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	return f / g, nil
}

func (floatSystem) Neg(x Number) (Number, error) {
	f, err := toFloat(x)
	if err != nil {
		return nil, err
	}
	return -f, nil
}

func (s floatSystem) Cmp(x, y Number) (int, error) {
	f, g, err := s.floats(x, y)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(f, g), nil
}

func (floatSystem) Narrow(x Number) (Number, error) {
	return toFloat(x)
}

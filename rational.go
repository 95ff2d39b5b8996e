package measure

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrDivisionByZero is returned when a value is divided by zero or
	// when a zero value is inverted.
	ErrDivisionByZero = errors.New("division by zero")
	errInvalidRat     = errors.New("invalid rational number")
)

// Rational represents an exact fraction num / den of arbitrary precision.
// Its zero value corresponds to 0.
//
// A rational number is always kept in lowest terms with a positive
// denominator, so two rational numbers are equal if and only if their
// numerators and denominators are equal.
// Rational is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Rational struct {
	r *big.Rat // never modified after construction, nil means 0
}

// newRatUnsafe wraps r without copying it.
// The caller must not modify r afterwards.
func newRatUnsafe(r *big.Rat) Rational {
	if r.Sign() == 0 {
		return Rational{}
	}
	return Rational{r: r}
}

// NewRat returns a rational number equal to num / den.
//
// NewRat returns an error if the denominator is 0.
func NewRat(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("creating %v/%v: %w", num, den, ErrDivisionByZero)
	}
	return newRatUnsafe(big.NewRat(num, den)), nil
}

// MustNewRat is like [NewRat] but panics if the rational number cannot be constructed.
// It simplifies safe initialization of global variables holding rational numbers.
func MustNewRat(num, den int64) Rational {
	r, err := NewRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewRatFromInt64 returns a rational number equal to the integer n.
func NewRatFromInt64(n int64) Rational {
	return newRatUnsafe(new(big.Rat).SetInt64(n))
}

// NewRatFromBig returns a rational number equal to num / den.
// The arguments are copied and never modified.
//
// NewRatFromBig returns an error if the denominator is 0.
func NewRatFromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("creating %v/%v: %w", num, den, ErrDivisionByZero)
	}
	return newRatUnsafe(new(big.Rat).SetFrac(num, den)), nil
}

// NewRatFromDecimal returns a rational number exactly equal to the decimal d,
// that is coef / 10^scale, reduced to lowest terms.
// For example, 9.80665 is converted to 196133/20000.
func NewRatFromDecimal(d decimal.Decimal) Rational {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	return newRatUnsafe(new(big.Rat).SetFrac(num, den))
}

// NewRatFromFloat64 converts a float to a rational number equal to the
// shortest decimal representation of the float.
// For example, 0.1 is converted to 1/10 rather than to the exact binary
// value of the float.
// See also method [Rational.Float64].
//
// NewRatFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewRatFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("converting float: special value %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	r, err := ParseRat(s)
	if err != nil {
		return Rational{}, fmt.Errorf("converting float: %w", err)
	}
	return r, nil
}

// ParseRat converts a string to a rational number.
// The input string must be in one of the following formats:
//
//	3/4
//	-2
//	9.80665
//	1e-3
//
// ParseRat returns an error if the string does not represent a rational
// number or if its denominator is 0.
func ParseRat(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("parsing %q: %w", s, errInvalidRat)
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if ok && d.Sign() == 0 {
			return Rational{}, fmt.Errorf("parsing %q: %w", s, ErrDivisionByZero)
		}
		if _, ok := new(big.Int).SetString(strings.TrimSpace(num), 10); !ok {
			return Rational{}, fmt.Errorf("parsing %q: %w", s, errInvalidRat)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("parsing %q: %w", s, errInvalidRat)
	}
	return newRatUnsafe(r), nil
}

// MustParseRat is like [ParseRat] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rational numbers.
func MustParseRat(s string) Rational {
	r, err := ParseRat(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRat(%q) failed: %v", s, err))
	}
	return r
}

// rat returns the underlying value.
// The result must not be modified.
func (r Rational) rat() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return r.r
}

// Num returns a copy of the numerator of r.
// The sign of r is carried by the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns a copy of the denominator of r.
// The denominator is always positive.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Big returns a copy of r as a [big.Rat].
func (r Rational) Big() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rational) Sign() int {
	return r.rat().Sign()
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsOne returns:
//
//	true  if r = 1
//	false otherwise
func (r Rational) IsOne() bool {
	q := r.rat()
	return q.IsInt() && q.Num().IsInt64() && q.Num().Int64() == 1
}

// IsInt returns true if the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.rat().IsInt()
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rational) IsNeg() bool {
	return r.Sign() < 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rational) IsPos() bool {
	return r.Sign() > 0
}

// Neg returns a rational number with the opposite sign.
func (r Rational) Neg() Rational {
	return newRatUnsafe(new(big.Rat).Neg(r.rat()))
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	return newRatUnsafe(new(big.Rat).Abs(r.rat()))
}

// Add returns the exact sum r + e.
func (r Rational) Add(e Rational) Rational {
	return newRatUnsafe(new(big.Rat).Add(r.rat(), e.rat()))
}

// Sub returns the exact difference r - e.
func (r Rational) Sub(e Rational) Rational {
	return newRatUnsafe(new(big.Rat).Sub(r.rat(), e.rat()))
}

// Mul returns the exact product r * e.
func (r Rational) Mul(e Rational) Rational {
	return newRatUnsafe(new(big.Rat).Mul(r.rat(), e.rat()))
}

// Quo returns the exact quotient r / e.
//
// Quo returns an error if the divisor is 0.
func (r Rational) Quo(e Rational) (Rational, error) {
	if e.IsZero() {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrDivisionByZero)
	}
	return newRatUnsafe(new(big.Rat).Quo(r.rat(), e.rat())), nil
}

// Inv returns the reciprocal 1 / r, that is the fraction with the numerator
// and the denominator swapped.
//
// Inv returns an error if r is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrDivisionByZero)
	}
	return newRatUnsafe(new(big.Rat).Inv(r.rat())), nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r = e
//	+1 if r > e
func (r Rational) Cmp(e Rational) int {
	return r.rat().Cmp(e.rat())
}

// Equal returns true if r and e represent the same value.
func (r Rational) Equal(e Rational) bool {
	return r.Cmp(e) == 0
}

// Hash returns a hash of the value of r.
// Equal rational numbers have equal hashes.
func (r Rational) Hash() uint64 {
	q := r.rat()
	h := fnv.New64a()
	if q.Sign() < 0 {
		h.Write([]byte{'-'})
	}
	h.Write(q.Num().Bytes())
	h.Write([]byte{'/'})
	h.Write(q.Denom().Bytes())
	return h.Sum64()
}

// Float64 returns the nearest binary floating-point number.
// The exact result is true if the float represents r exactly.
//
// This conversion may lose data, and is intended for display and
// interoperability only.
func (r Rational) Float64() (f float64, exact bool) {
	return r.rat().Float64()
}

// Decimal returns the decimal nearest to r, with as many digits after the
// decimal point as fit into [decimal.MaxPrec] digits and with trailing zeros
// removed.
//
// Decimal returns an error if the integer part of r has more than
// [decimal.MaxPrec] digits.
func (r Rational) Decimal() (decimal.Decimal, error) {
	q := r.rat()
	whole := new(big.Int).Quo(q.Num(), q.Denom())
	scale := decimal.MaxScale
	if whole.Sign() != 0 {
		scale = decimal.MaxPrec - len(whole.Abs(whole).String())
	}
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: integer part has more than %v digits", r, decimal.MaxPrec)
	}
	d, err := decimal.Parse(q.FloatString(scale))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	return d.Trim(0), nil
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation "num/den", or "num" if the denominator is 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	return r.rat().RatString()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRat].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRat(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rational{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted strings and bare numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Rational) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return r.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted canonical string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Rational) MarshalJSON() ([]byte, error) {
	s := r.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

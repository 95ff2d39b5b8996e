package measure

import (
	"fmt"
	"strings"
)

// Quantity represents a numeric value expressed in a unit.
// Its zero value corresponds to "0 1", a dimensionless zero.
//
// A quantity stores its value: once a quantity has been computed, for
// example by [Quantity.To], later changes of a physical [Constant] do not
// affect it.
// Only new conversions use the new value of the constant.
// Quantity is designed to be safe for concurrent use by multiple goroutines.
type Quantity struct {
	unit  Unit
	value Number // Rational or float64, nil means 0
}

// newQuantityUnsafe creates a new quantity without checking the value.
// Use it only if you are absolutely sure that the value is narrowed.
func newQuantityUnsafe(v Number, u Unit) Quantity {
	return Quantity{unit: u, value: v}
}

// NewQuantity returns a quantity with the specified value and unit.
// Exact values are stored as [Rational], floats as float64.
//
// NewQuantity returns an error if the value is not a supported [Number].
func NewQuantity(v Number, u Unit) (Quantity, error) {
	n, err := Exact.Narrow(v)
	if err != nil {
		return Quantity{}, fmt.Errorf("creating quantity: %w", err)
	}
	return newQuantityUnsafe(n, u), nil
}

// MustNewQuantity is like [NewQuantity] but panics if the quantity cannot be constructed.
// It simplifies safe initialization of global variables holding quantities.
func MustNewQuantity(v Number, u Unit) Quantity {
	q, err := NewQuantity(v, u)
	if err != nil {
		panic(fmt.Sprintf("NewQuantity(%v, %v) failed: %v", v, u, err))
	}
	return q
}

// ParseQuantity converts value and unit strings to a quantity with an exact
// value.
// See also constructors [ParseRat] and [ParseUnit].
func ParseQuantity(value, unit string) (Quantity, error) {
	// Unit
	u, err := ParseUnit(unit)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing unit: %w", err)
	}
	// Value
	r, err := ParseRat(value)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing value: %w", err)
	}
	return newQuantityUnsafe(r, u), nil
}

// MustParseQuantity is like [ParseQuantity] but panics if any of the strings cannot be parsed.
func MustParseQuantity(value, unit string) Quantity {
	q, err := ParseQuantity(value, unit)
	if err != nil {
		panic(fmt.Sprintf("ParseQuantity(%q, %q) failed: %v", value, unit, err))
	}
	return q
}

// Unit returns the unit of the quantity.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Value returns the value of the quantity, either a [Rational] or a float64.
func (q Quantity) Value() Number {
	if q.value == nil {
		return Rational{}
	}
	return q.value
}

// Float64 returns the nearest float64 to the value of the quantity.
// This conversion may lose data.
func (q Quantity) Float64() float64 {
	f, err := toFloat(q.Value())
	if err != nil {
		panic(fmt.Sprintf("%v.Float64() failed: %v", q, err))
	}
	return f
}

// To returns the quantity converted to the unit u using the [Exact]
// number system.
// See also method [Quantity.ToWith].
func (q Quantity) To(u Unit) (Quantity, error) {
	return q.ToWith(Exact, u)
}

// ToWith returns the quantity converted to the unit u using the number
// system ns.
//
// ToWith returns an error if:
//   - the units are not compatible;
//   - the conversion fails, see [Converter.ConvertWith].
func (q Quantity) ToWith(ns NumberSystem, u Unit) (Quantity, error) {
	if ns == nil {
		ns = Exact
	}
	c, err := q.Unit().ConverterTo(u)
	if err != nil {
		return Quantity{}, err
	}
	v, err := Calc(ns, q.Value()).Value()
	if err != nil {
		return Quantity{}, err
	}
	v, err = c.ConvertWith(ns, v)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting %v to %v: %w", q, u, err)
	}
	return newQuantityUnsafe(v, u), nil
}

// Add returns the sum of quantities q and p, expressed in the unit of q.
//
// Add returns an error if the units are not compatible.
func (q Quantity) Add(p Quantity) (Quantity, error) {
	r, err := q.add(p)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v + %v]: %w", q, p, err)
	}
	return r, nil
}

func (q Quantity) add(p Quantity) (Quantity, error) {
	p, err := p.To(q.Unit())
	if err != nil {
		return Quantity{}, err
	}
	v, err := Calc(Exact, q.Value()).Add(p.Value()).Value()
	if err != nil {
		return Quantity{}, err
	}
	return newQuantityUnsafe(v, q.Unit()), nil
}

// Sub returns the difference between quantities q and p, expressed in the
// unit of q.
//
// Sub returns an error if the units are not compatible.
func (q Quantity) Sub(p Quantity) (Quantity, error) {
	r, err := q.sub(p)
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v - %v]: %w", q, p, err)
	}
	return r, nil
}

func (q Quantity) sub(p Quantity) (Quantity, error) {
	p, err := p.To(q.Unit())
	if err != nil {
		return Quantity{}, err
	}
	v, err := Calc(Exact, q.Value()).Sub(p.Value()).Value()
	if err != nil {
		return Quantity{}, err
	}
	return newQuantityUnsafe(v, q.Unit()), nil
}

// Mul returns the quantity q scaled by the factor e.
//
// Mul returns an error if the factor is not a supported [Number].
func (q Quantity) Mul(e Number) (Quantity, error) {
	v, err := Calc(Exact, q.Value()).Mul(e).Value()
	if err != nil {
		return Quantity{}, fmt.Errorf("computing [%v * %v]: %w", q, e, err)
	}
	return newQuantityUnsafe(v, q.Unit()), nil
}

// Cmp compares quantities q and p numerically, converting p to the unit of q,
// and returns:
//
//	-1 if q < p
//	 0 if q = p
//	+1 if q > p
//
// Cmp returns an error if the units are not compatible.
func (q Quantity) Cmp(p Quantity) (int, error) {
	r, err := p.To(q.Unit())
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", q, p, err)
	}
	return Exact.Cmp(q.Value(), r.Value())
}

// Equal returns true if quantities have the same unit and numerically
// equal values.
func (q Quantity) Equal(p Quantity) bool {
	if q.Unit() != p.Unit() {
		return false
	}
	n, err := Exact.Cmp(q.Value(), p.Value())
	return err == nil && n == 0
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the quantity, such as "196133/20000 N".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	var b strings.Builder
	fmt.Fprint(&b, q.Value())
	b.WriteByte(' ')
	b.WriteString(q.Unit().Symbol())
	return b.String()
}

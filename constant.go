package measure

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/govalues/decimal"
)

// ErrUnknownConstant is returned when a physical constant is looked up by
// a name that is not registered.
var ErrUnknownConstant = errors.New("unknown constant")

// ValueSetter is implemented by values whose scalar can be replaced after
// construction, such as the [Constant] behind [GravityConverter].
// See also method [Converter.Setter].
type ValueSetter interface {
	SetValue(v Rational) error
}

// Constant represents a physical constant, such as standard gravity, whose
// value can be changed at runtime.
//
// A constant holds its value together with the reciprocal of the value.
// Converters returned by [Constant.Converter] and [Constant.InverseConverter]
// refer to the constant rather than copying its value, so conversions
// performed after [Constant.SetValue] use the new value.
// Values already computed with the old value are not affected.
//
// Constant is safe for concurrent use by multiple goroutines: a conversion
// reads each constant once, so it observes either the old pair of values
// or the new one, never a mix, even if the converter refers to the same
// constant more than once.
type Constant struct {
	name string
	def  Rational

	mu    sync.RWMutex
	value Rational
	recip Rational
}

// NewConstant returns a constant with the given name and default value.
//
// NewConstant returns an error if the value is 0, since its reciprocal
// is undefined.
func NewConstant(name string, v Rational) (*Constant, error) {
	r, err := v.Inv()
	if err != nil {
		return nil, fmt.Errorf("creating constant %q: %w", name, err)
	}
	return &Constant{name: name, def: v, value: v, recip: r}, nil
}

// MustNewConstant is like [NewConstant] but panics if the constant cannot be constructed.
func MustNewConstant(name string, v Rational) *Constant {
	k, err := NewConstant(name, v)
	if err != nil {
		panic(fmt.Sprintf("NewConstant(%q, %v) failed: %v", name, v, err))
	}
	return k
}

// Name returns the name of the constant.
func (k *Constant) Name() string {
	return k.name
}

// Default returns the value the constant was created with.
func (k *Constant) Default() Rational {
	return k.def
}

// Value returns the current value of the constant.
func (k *Constant) Value() Rational {
	return k.snapshot(false)
}

// Reciprocal returns the reciprocal of the current value of the constant.
func (k *Constant) Reciprocal() Rational {
	return k.snapshot(true)
}

// constPair is the value of a constant and its reciprocal, read together.
type constPair struct {
	value, recip Rational
}

func (p constPair) get(inv bool) Rational {
	if inv {
		return p.recip
	}
	return p.value
}

func (k *Constant) pair() constPair {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return constPair{value: k.value, recip: k.recip}
}

func (k *Constant) snapshot(inv bool) Rational {
	return k.pair().get(inv)
}

// snapshots holds the constants read during a single conversion.
type snapshots map[*Constant]constPair

// get returns the value of k, or its reciprocal if inv is true, reading k
// only the first time it is requested.
func (s *snapshots) get(k *Constant, inv bool) Rational {
	p, ok := (*s)[k]
	if !ok {
		if *s == nil {
			*s = make(snapshots)
		}
		p = k.pair()
		(*s)[k] = p
	}
	return p.get(inv)
}

// SetValue replaces the value of the constant with v and its reciprocal
// with 1 / v as a single update.
// SetValue implements the [ValueSetter] interface.
//
// SetValue returns an error if v is 0, in which case the constant
// is left unchanged.
func (k *Constant) SetValue(v Rational) error {
	r, err := v.Inv()
	if err != nil {
		return fmt.Errorf("setting %v to %v: %w", k.name, v, err)
	}
	k.mu.Lock()
	k.value, k.recip = v, r
	k.mu.Unlock()
	return nil
}

// Reset restores the default value of the constant.
func (k *Constant) Reset() {
	if err := k.SetValue(k.def); err != nil {
		panic(fmt.Sprintf("%v.Reset() failed: %v", k.name, err))
	}
}

// Converter returns the converter that multiplies values by the current
// value of the constant.
// It is the only converter of the constant that exposes a [ValueSetter].
func (k *Constant) Converter() Converter {
	return newConstantView(k, false)
}

// InverseConverter returns the converter that multiplies values by the
// reciprocal of the current value of the constant.
func (k *Constant) InverseConverter() Converter {
	return newConstantView(k, true)
}

// String method implements the [fmt.Stringer] interface and returns
// the name and the current value of the constant, such as
// "gravity = 196133/20000".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k *Constant) String() string {
	return k.name + " = " + k.Value().String()
}

// StandardGravity is the standard acceleration of gravity, 9.80665 m/s².
var StandardGravity = NewRatFromDecimal(decimal.MustNew(980665, 5))

var gravity = sync.OnceValue(func() *Constant {
	return MustNewConstant("gravity", StandardGravity)
})

// Gravity returns the process-wide acceleration of gravity used by the
// force units based on mass, such as kilogram-force.
// It is created on first use with the value of [StandardGravity].
func Gravity() *Constant {
	return gravity()
}

// GravityConverter returns the converter that multiplies values by the
// current value of [Gravity].
// Its [Converter.Setter] changes the value of gravity.
func GravityConverter() Converter {
	return Gravity().Converter()
}

// InverseGravityConverter returns the converter that divides values by the
// current value of [Gravity].
func InverseGravityConverter() Converter {
	return Gravity().InverseConverter()
}

var constLookup = map[string]func() *Constant{
	"gravity": Gravity,
	"g":       Gravity,
	"g0":      Gravity,
}

// LookupConstant returns the registered constant with the given name
// (case-insensitive).
// The following names are registered:
//
//	gravity, g, g0
func LookupConstant(name string) (*Constant, error) {
	f, ok := constLookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("looking up %q: %w", name, ErrUnknownConstant)
	}
	return f(), nil
}

// Constants returns the registered constants sorted by name.
func Constants() []*Constant {
	seen := make(map[*Constant]bool, len(constLookup))
	list := make([]*Constant, 0, len(constLookup))
	for _, f := range constLookup {
		k := f()
		if !seen[k] {
			seen[k] = true
			list = append(list, k)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

package measure

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

type convKind uint8

const (
	identityKind convKind = iota
	multiplyKind
	powerKind
	floatKind
	constantKind
	offsetKind
	chainKind
)

// ranks used for ordering converters of different kinds
const (
	identityRank = iota
	scalarRank
	offsetRank
	chainRank
)

// Converter represents a transformation of numeric values from one unit to
// another, such as "feet to metres" or "kilogram-force to newtons".
// Its zero value is the identity converter.
//
// A converter is one of the following kinds:
//
//   - identity: value;
//   - multiply: factor * value, where factor is a non-zero [Rational];
//   - power: base^exp * value, where base and exp are integers;
//   - float multiply: factor * value, where factor is a non-zero float64;
//   - offset: value + offset, where offset is a [Rational];
//   - constant: value * k or value / k, where k is a [Constant];
//   - chain: a sequence of converters applied one after another.
//
// Converter is immutable, except that constant converters always use the
// current value of their constant.
// Converter is designed to be safe for concurrent use by multiple goroutines.
// Converters cannot be compared with ==, use [Converter.Equal] instead.
type Converter struct {
	kind  convKind
	rat   Rational    // multiply: factor, power: base^exp, offset: addend
	base  int64       // power
	exp   int         // power
	float float64     // float multiply
	cnst  *Constant   // constant
	inv   bool        // constant, float multiply: divide instead of multiply
	links []Converter // chain: at least 2 irreducible links, shared and never modified
}

// Identity returns the identity converter.
func Identity() Converter {
	return Converter{}
}

// newMultiplierUnsafe creates a multiply converter without checking the factor.
// Use it only if you are absolutely sure that the factor is not zero.
func newMultiplierUnsafe(f Rational) Converter {
	if f.IsOne() {
		return Identity()
	}
	return Converter{kind: multiplyKind, rat: f}
}

// NewMultiplier returns a converter that multiplies values by the factor f.
// If f is 1, the identity converter is returned.
//
// NewMultiplier returns an error if f is 0, since such a converter
// does not have an inverse.
func NewMultiplier(f Rational) (Converter, error) {
	if f.IsZero() {
		return Converter{}, fmt.Errorf("creating multiplier: zero factor does not have an inverse: %w", ErrDivisionByZero)
	}
	return newMultiplierUnsafe(f), nil
}

// MustNewMultiplier is like [NewMultiplier] but panics if the converter cannot be constructed.
// It simplifies safe initialization of global variables holding converters.
func MustNewMultiplier(f Rational) Converter {
	c, err := NewMultiplier(f)
	if err != nil {
		panic(fmt.Sprintf("NewMultiplier(%v) failed: %v", f, err))
	}
	return c
}

// NewOffset returns a converter that adds the offset o to values.
// If o is 0, the identity converter is returned.
func NewOffset(o Rational) Converter {
	if o.IsZero() {
		return Identity()
	}
	return Converter{kind: offsetKind, rat: o}
}

// maxPowerExp is the largest absolute exponent of a power converter.
const maxPowerExp = 1024

func powRat(base int64, exp int) Rational {
	e := int64(exp)
	if e < 0 {
		e = -e
	}
	n := new(big.Int).Exp(big.NewInt(base), big.NewInt(e), nil)
	r := new(big.Rat).SetInt(n)
	if exp < 0 {
		r.Inv(r)
	}
	return newRatUnsafe(r)
}

// newPowerUnsafe creates a power converter without checking the base.
// Use it only if you are absolutely sure that the base is not zero.
func newPowerUnsafe(base int64, exp int) Converter {
	r := powRat(base, exp)
	if r.IsOne() {
		return Identity()
	}
	return Converter{kind: powerKind, rat: r, base: base, exp: exp}
}

// NewPower returns a converter that multiplies values by base^exp,
// such as the converters of metric prefixes (10^3 for "kilo").
// If base^exp is 1, the identity converter is returned.
//
// NewPower returns an error if:
//   - base is 0;
//   - exp is less than -1024 or greater than 1024.
func NewPower(base int64, exp int) (Converter, error) {
	if base == 0 {
		return Converter{}, fmt.Errorf("creating power: zero base: %w", ErrDivisionByZero)
	}
	if exp < -maxPowerExp || exp > maxPowerExp {
		return Converter{}, fmt.Errorf("creating power: exponent %v out of range [%v, %v]", exp, -maxPowerExp, maxPowerExp)
	}
	return newPowerUnsafe(base, exp), nil
}

// NewFloatMultiplier returns a converter that multiplies values by the
// approximate factor f, for factors that have no exact rational value,
// such as pi.
// The inverse converter divides values by f.
// If f is 1, the identity converter is returned.
//
// NewFloatMultiplier returns an error if:
//   - f is a special value (NaN or Inf);
//   - f is 0.
func NewFloatMultiplier(f float64) (Converter, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Converter{}, fmt.Errorf("creating float multiplier: special value %v", f)
	}
	if f == 0 {
		return Converter{}, fmt.Errorf("creating float multiplier: factor %v does not have an inverse: %w", f, ErrDivisionByZero)
	}
	if f == 1 {
		return Identity(), nil
	}
	return Converter{kind: floatKind, float: f}, nil
}

// newConstantView returns a converter that multiplies values by the current
// value of k, or by its reciprocal if inv is true.
func newConstantView(k *Constant, inv bool) Converter {
	return Converter{kind: constantKind, cnst: k, inv: inv}
}

// chainOf wraps links, which must be pairwise irreducible, into a converter.
func chainOf(links []Converter) Converter {
	switch len(links) {
	case 0:
		return Identity()
	case 1:
		return links[0]
	}
	return Converter{kind: chainKind, links: links}
}

// Chain returns a converter that applies the converters cs in order,
// from first to last.
// It is equivalent to cs[0].Compose(cs[1]).Compose(cs[2])...
func Chain(cs ...Converter) Converter {
	r := Identity()
	for _, c := range cs {
		r = r.Compose(c)
	}
	return r
}

// IsIdentity returns true if the converter is provably the identity.
// Constant converters are never the identity, even if the current value
// of their constant is 1.
func (c Converter) IsIdentity() bool {
	return c.kind == identityKind
}

// Links returns the converters of a chain in the order they are applied.
// For the identity converter it returns an empty slice, and for any other
// converter a slice that contains only the converter itself.
func (c Converter) Links() []Converter {
	return slices.Clone(c.chainLinks())
}

func (c Converter) chainLinks() []Converter {
	switch c.kind {
	case identityKind:
		return nil
	case chainKind:
		return c.links
	}
	return []Converter{c}
}

// Convert returns the value converted using the [Exact] number system.
// See also method [Converter.ConvertWith].
func (c Converter) Convert(x Number) (Number, error) {
	return c.ConvertWith(Exact, x)
}

// ConvertWith returns the value converted using the number system ns.
// The identity converter returns x unchanged.
// If ns is nil, [Exact] is used.
//
// ConvertWith returns an error if:
//   - x is not a supported [Number];
//   - an intermediate result cannot be represented in the number system.
func (c Converter) ConvertWith(ns NumberSystem, x Number) (Number, error) {
	if ns == nil {
		ns = Exact
	}
	if err := checkNumber(x); err != nil {
		return nil, fmt.Errorf("converting %v with %v: %w", x, c, err)
	}
	if c.IsIdentity() {
		return x, nil
	}
	var ks snapshots
	y, err := c.convert(ns, x, &ks)
	if err != nil {
		return nil, fmt.Errorf("converting %v with %v: %w", x, c, err)
	}
	return y, nil
}

// convert applies c to x, reading constants through ks so that every view of
// the same constant uses the same value.
func (c Converter) convert(ns NumberSystem, x Number, ks *snapshots) (Number, error) {
	switch c.kind {
	case identityKind:
		return x, nil
	case multiplyKind, powerKind:
		return Calc(ns, c.rat).Mul(x).Peek()
	case floatKind:
		if c.inv {
			return Calc(ns, x).Quo(c.float).Peek()
		}
		return Calc(ns, c.float).Mul(x).Peek()
	case constantKind:
		return Calc(ns, ks.get(c.cnst, c.inv)).Mul(x).Peek()
	case offsetKind:
		return Calc(ns, x).Add(c.rat).Peek()
	case chainKind:
		var err error
		for _, l := range c.links {
			x, err = l.convert(ns, x, ks)
			if err != nil {
				return nil, err
			}
		}
		return x, nil
	}
	panic(fmt.Sprintf("unknown converter kind %v", c.kind))
}

// Inverse returns the converter that undoes c, such that
// c.Inverse().Inverse() is equal to c.
// The inverse of the identity converter is the identity converter.
func (c Converter) Inverse() Converter {
	switch c.kind {
	case multiplyKind:
		f, err := c.rat.Inv()
		if err != nil {
			panic(fmt.Sprintf("%v.Inverse() failed: %v", c, err))
		}
		return Converter{kind: multiplyKind, rat: f}
	case powerKind:
		return newPowerUnsafe(c.base, -c.exp)
	case floatKind:
		return Converter{kind: floatKind, float: c.float, inv: !c.inv}
	case constantKind:
		return newConstantView(c.cnst, !c.inv)
	case offsetKind:
		return Converter{kind: offsetKind, rat: c.rat.Neg()}
	case chainKind:
		links := make([]Converter, len(c.links))
		for i, l := range c.links {
			links[len(links)-1-i] = l.Inverse()
		}
		return Chain(links...)
	}
	return c
}

// reduce returns a single converter equivalent to applying c and then d,
// if there is one.
func reduce(c, d Converter) (Converter, bool) {
	switch {
	case c.kind == identityKind:
		return d, true
	case d.kind == identityKind:
		return c, true
	case c.kind == powerKind && d.kind == powerKind && c.base == d.base &&
		-maxPowerExp <= c.exp+d.exp && c.exp+d.exp <= maxPowerExp:
		return newPowerUnsafe(c.base, c.exp+d.exp), true
	case c.isExactScalar() && d.isExactScalar():
		return newMultiplierUnsafe(c.rat.Mul(d.rat)), true
	case c.kind == offsetKind && d.kind == offsetKind:
		return NewOffset(c.rat.Add(d.rat)), true
	}
	// constant and float converters are never merged
	return Converter{}, false
}

// CanReduceWith returns true if applying c and then d can be represented
// by a single converter of one of the non-chain kinds.
// See also method [Converter.Compose].
func (c Converter) CanReduceWith(d Converter) bool {
	_, ok := reduce(c, d)
	return ok
}

// Compose returns a converter that applies c first and then d.
// If [Converter.CanReduceWith] holds, the result is a single simplified
// converter, otherwise it is a chain.
// Chains are flat and the converters at the junction are reduced pairwise,
// so composition is associative.
func (c Converter) Compose(d Converter) Converter {
	if r, ok := reduce(c, d); ok {
		return r
	}
	links := slices.Clone(c.chainLinks())
	for _, l := range d.chainLinks() {
		links = pushLink(links, l)
	}
	return chainOf(links)
}

// pushLink appends l to links, merging it with the trailing links while
// they can be reduced.
func pushLink(links []Converter, l Converter) []Converter {
	for len(links) > 0 {
		r, ok := reduce(links[len(links)-1], l)
		if !ok {
			break
		}
		links = links[:len(links)-1]
		l = r
	}
	if l.IsIdentity() {
		return links
	}
	return append(links, l)
}

// Factor returns the scalar factor of multiply, power, float multiply and
// constant converters.
// For constant converters this is the current value of the constant
// or its reciprocal.
// For other converters ok is false.
func (c Converter) Factor() (f Number, ok bool) {
	switch c.kind {
	case multiplyKind, powerKind:
		return c.rat, true
	case floatKind:
		if c.inv {
			return 1 / c.float, true
		}
		return c.float, true
	case constantKind:
		return c.cnst.snapshot(c.inv), true
	}
	return nil, false
}

// Setter returns the setter of the constant of a forward constant
// converter, such as [GravityConverter].
// Configuration tools can use it to change physical constants at runtime.
// For other converters, including inverse constant converters, ok is false.
func (c Converter) Setter() (s ValueSetter, ok bool) {
	if c.kind == constantKind && !c.inv {
		return c.cnst, true
	}
	return nil, false
}

func (c Converter) isExactScalar() bool {
	return c.kind == multiplyKind || c.kind == powerKind
}

func (c Converter) rank() int {
	switch c.kind {
	case identityKind:
		return identityRank
	case offsetKind:
		return offsetRank
	case chainKind:
		return chainRank
	}
	return scalarRank
}

// Cmp compares converters using the [Exact] number system.
// See also method [Converter.CmpWith].
func (c Converter) Cmp(d Converter) int {
	return c.CmpWith(Exact, d)
}

// CmpWith compares converters and returns -1, 0 or +1.
// Converters that have a scalar factor (see [Converter.Factor]) are ordered
// by their factors using the number system ns.
// Other converters are ordered as follows:
//
//	identity < scalar converters < offset converters < chains
//
// Offset converters are ordered by their offsets, chains by their length
// and then link by link.
// CmpWith never panics.
// If ns is nil, [Exact] is used.
func (c Converter) CmpWith(ns NumberSystem, d Converter) int {
	if ns == nil {
		ns = Exact
	}
	if c.Equal(d) {
		return 0
	}
	if rc, rd := c.rank(), d.rank(); rc != rd {
		return cmp.Compare(rc, rd)
	}
	switch c.rank() {
	case scalarRank:
		f, _ := c.Factor()
		g, _ := d.Factor()
		if n, err := ns.Cmp(f, g); err == nil {
			return n
		}
		return cmp.Compare(c.kind, d.kind)
	case offsetRank:
		if n, err := ns.Cmp(c.rat, d.rat); err == nil {
			return n
		}
		return c.rat.Cmp(d.rat)
	case chainRank:
		if n := cmp.Compare(len(c.links), len(d.links)); n != 0 {
			return n
		}
		for i := range c.links {
			if n := c.links[i].CmpWith(ns, d.links[i]); n != 0 {
				return n
			}
		}
	}
	return 0
}

// Equal returns true if converters are of the same kind and have the same
// parameters.
// Multiply and power converters are equal if their factors are equal,
// so 10^3 is equal to 1000.
// Constant converters are equal only if they refer to the same [Constant]
// in the same direction, regardless of the current value of the constant.
func (c Converter) Equal(d Converter) bool {
	if c.isExactScalar() && d.isExactScalar() {
		return c.rat.Equal(d.rat)
	}
	if c.kind != d.kind {
		return false
	}
	switch c.kind {
	case offsetKind:
		return c.rat.Equal(d.rat)
	case floatKind:
		return c.float == d.float && c.inv == d.inv
	case constantKind:
		return c.cnst == d.cnst && c.inv == d.inv
	case chainKind:
		return slices.EqualFunc(c.links, d.links, Converter.Equal)
	}
	return true
}

// Hash returns a hash of the converter.
// Equal converters have equal hashes.
func (c Converter) Hash() uint64 {
	h := fnv.New64a()
	c.hash(h.Write)
	return h.Sum64()
}

func (c Converter) hash(write func([]byte) (int, error)) {
	kind := c.kind
	if c.isExactScalar() {
		kind = multiplyKind
	}
	buf := make([]byte, 0, 17)
	buf = append(buf, byte(kind))
	switch kind {
	case multiplyKind, offsetKind:
		buf = binary.LittleEndian.AppendUint64(buf, c.rat.Hash())
	case floatKind:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c.float))
		if c.inv {
			buf = append(buf, 1)
		}
	case constantKind:
		buf = append(buf, c.cnst.Name()...)
		if c.inv {
			buf = append(buf, 1)
		}
	}
	write(buf)
	for _, l := range c.links {
		l.hash(write)
	}
}

// Literal returns a human-readable description of the transformation,
// such as "196133/20000 * value" or "value + 5463/20".
// It is intended for diagnostics only and is not used for equality.
func (c Converter) Literal() string {
	switch c.kind {
	case multiplyKind:
		return c.rat.String() + " * value"
	case powerKind:
		return strconv.FormatInt(c.base, 10) + "^" + strconv.Itoa(c.exp) + " * value"
	case floatKind:
		if c.inv {
			return "value / " + strconv.FormatFloat(c.float, 'g', -1, 64)
		}
		return strconv.FormatFloat(c.float, 'g', -1, 64) + " * value"
	case constantKind:
		return c.cnst.snapshot(c.inv).String() + " * value"
	case offsetKind:
		if c.rat.IsNeg() {
			return "value - " + c.rat.Abs().String()
		}
		return "value + " + c.rat.String()
	case chainKind:
		s := "value"
		for _, l := range c.links {
			inner := s
			if s != "value" && l.kind != offsetKind {
				inner = "(" + s + ")"
			}
			s = strings.Replace(l.Literal(), "value", inner, 1)
		}
		return s
	}
	return "value"
}

// String method implements the [fmt.Stringer] interface and returns
// the kind of the converter followed by its literal, such as
// "Multiply(900/463 * value)".
// See also method [Converter.Literal].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Converter) String() string {
	var name string
	switch c.kind {
	case identityKind:
		name = "Identity"
	case multiplyKind:
		name = "Multiply"
	case powerKind:
		name = "Power"
	case floatKind:
		name = "FloatMultiply"
	case constantKind:
		name = "Constant[" + c.cnst.Name() + "]"
		if c.inv {
			name = "InverseConstant[" + c.cnst.Name() + "]"
		}
	case offsetKind:
		name = "Offset"
	case chainKind:
		name = "Chain"
	}
	return name + "(" + c.Literal() + ")"
}

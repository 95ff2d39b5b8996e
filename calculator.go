package measure

// Calculator is a fluent accumulator that applies a sequence of operations
// to a running value using a [NumberSystem].
//
// Calculator is immutable: every operation returns a new Calculator and
// leaves the receiver and the seed untouched.
// The first error is sticky: once an operation fails, the following
// operations are skipped and [Calculator.Peek] and [Calculator.Value]
// return that error.
type Calculator struct {
	ns  NumberSystem
	acc Number
	err error
}

// Calc returns a calculator with the running value set to seed.
// If ns is nil, [Exact] is used.
func Calc(ns NumberSystem, seed Number) Calculator {
	if ns == nil {
		ns = Exact
	}
	return Calculator{ns: ns, acc: seed, err: checkNumber(seed)}
}

func (c Calculator) apply(f func(Number) (Number, error)) Calculator {
	if c.err != nil {
		return c
	}
	acc, err := f(c.acc)
	if err != nil {
		return Calculator{ns: c.ns, err: err}
	}
	return Calculator{ns: c.ns, acc: acc}
}

// Add returns a calculator with x added to the running value.
func (c Calculator) Add(x Number) Calculator {
	return c.apply(func(acc Number) (Number, error) { return c.ns.Add(acc, x) })
}

// Sub returns a calculator with x subtracted from the running value.
func (c Calculator) Sub(x Number) Calculator {
	return c.apply(func(acc Number) (Number, error) { return c.ns.Sub(acc, x) })
}

// Mul returns a calculator with the running value multiplied by x.
func (c Calculator) Mul(x Number) Calculator {
	return c.apply(func(acc Number) (Number, error) { return c.ns.Mul(acc, x) })
}

// Quo returns a calculator with the running value divided by x.
func (c Calculator) Quo(x Number) Calculator {
	return c.apply(func(acc Number) (Number, error) { return c.ns.Quo(acc, x) })
}

// Neg returns a calculator with the sign of the running value flipped.
func (c Calculator) Neg() Calculator {
	return c.apply(c.ns.Neg)
}

// Inv returns a calculator with the running value replaced by its reciprocal.
func (c Calculator) Inv() Calculator {
	return c.apply(func(acc Number) (Number, error) {
		if classify(acc) == kindFloat {
			return c.ns.Quo(1.0, acc)
		}
		return c.ns.Quo(1, acc)
	})
}

// Peek returns the running value as is, without normalization.
func (c Calculator) Peek() (Number, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.acc, nil
}

// Value returns the running value in the canonical representation of the
// number system, see [NumberSystem.Narrow].
func (c Calculator) Value() (Number, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.ns.Narrow(c.acc)
}

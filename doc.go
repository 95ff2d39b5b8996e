/*
Package measure implements exact conversions between units of measurement.
It represents unit-to-unit transformations as composable [Converter] values,
evaluates them with a selectable [NumberSystem], and allows physical
constants, such as the acceleration of gravity, to be changed at runtime.

# Features

  - Exact rational arithmetic with [Rational], free of floating-point drift
  - Explicit choice between exact and floating-point arithmetic per operation
  - Composition of converters with pairwise simplification
  - Inversion of every converter
  - Physical constants that can be adjusted at runtime, see [Gravity]
  - Immutable values, ensuring safe usage across multiple goroutines

# Representation

A [Rational] is a fraction of two arbitrary-precision integers kept in
lowest terms.
Decimals from the [decimal] package are converted to rational numbers
without loss of precision.

A [Converter] is a tagged value of one of a small number of kinds:
identity, multiply, power, float multiply, offset, constant, and chain.
Converters that share a scalar factor expose it through [Converter.Factor],
and converters of adjustable constants expose a [ValueSetter] through
[Converter.Setter].

A [Unit] is an index into a built-in catalog of units, and a [Quantity] is
a value expressed in a unit.

# Number Systems

There is no global "current" number system.
Operations that perform arithmetic accept a [NumberSystem] explicitly,
and their short forms use [Exact]:

	c.Convert(x)                    // exact
	c.ConvertWith(measure.Float, x) // float64

The [Exact] number system produces a [Rational] whenever an operand is exact.
The [Float] number system uses native float64 arithmetic.

# Constants

Converters of a [Constant] refer to the constant rather than copying its
value.
After [Constant.SetValue], every new conversion uses the new value,
while quantities that were computed before keep their values.

# Errors

Arithmetic and conversions return errors that wrap [ErrDivisionByZero] or
[ErrUnsupportedNumber], so callers can tell invalid input from an invalid
representation.
Unit lookups and conversions between incompatible units return errors that
wrap [ErrUnknownUnit] and [ErrUnitMismatch].
Floating-point overflow is not trapped and produces infinities.
*/
package measure

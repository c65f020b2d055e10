/*
Package decimal implements immutable decimal numbers for axis tick selection.
It is specifically designed for choosing tick values on interactive plots, where
labels must stay stable while the view is panned and zoomed continuously.
Every decision about whether a tick is visible is made by comparing a decimal
against a float64 exactly, so labels never flicker because of rounding.

# Representation

[Decimal] is a struct with two fields:

  - Coefficient: a signed 64-bit integer representing the numeric value of the
    decimal without the decimal point.
  - Exponent: an integer power of ten.
    For example, a decimal with a coefficient of 12345 and an exponent of -2
    represents the value 123.45.

The numerical value of a decimal is calculated as:

  - Coefficient * 10^Exponent.

Decimals are normalized: trailing zeros of the coefficient are moved into
the exponent, and the exponent of 0 is 0.
In this approach, each numeric value has exactly one representation.
For example, 1, 1.0, and 1.00 all have the coefficient 1 and the exponent 0.

[BinaryDecimal] is a non-negative value Coefficient * 2^BinExp * 10^DecExp
with an unsigned 64-bit coefficient.
It is used as an intermediate representation when comparing a decimal
with a float64, see [Decimal.CmpFloat64] and [SplitFloat64].

Special values such as [NaN], [Infinity], or [negative zeros] are not supported.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Text].
  - from/to float64:
    [NewFromFloat64RoundUp], [NewFromFloat64RoundDown], [Decimal.Float64].
  - from int64:
    [New].

# Tick spacing

The package provides the building blocks for tick generation:

  - [NextIncrement] chooses a spacing of the form 1, 5, or 10 times a power of ten.
  - [NextLogIncrement] chooses the number of decades between log-scale ticks.
  - [LowerBound] and [UpperBound] find the multiples of a spacing around a float64.
  - [FirstMultiple] does the same for a decimal.
  - [MiddleValue] chooses a subdivision between two ticks.

# Comparison

[Decimal.CmpFloat64] is exact unless the decimal exponent has to be removed
with lossy steps, in which case equality is reported as "greater in magnitude".
The result is monotonic: a larger decimal never compares less than a smaller one.

# Errors

All methods are panic-free and pure, except for the Must* helpers.
Errors are returned in the following cases:

  - Invalid Argument.
    NaN or infinite floats, a non-positive spacing, or a malformed string.
    Such errors wrap [ErrInvalidArgument].

  - Overflow.
    A bound or a parsed coefficient that does not fit into 64 bits.
    Such errors wrap [ErrOverflow].

Errors are not returned in the following cases:

  - Arithmetic overflow.
    [Decimal.Add], [Decimal.Sub], [Decimal.Mul], and [Decimal.MulInt64] wrap around
    like standard integers.
    Callers must keep operands within the 64-bit coefficient range.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package decimal

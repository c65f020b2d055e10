package decimal

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	mantBits = 52
	mantMask = 1<<mantBits - 1
	expMask  = 1<<11 - 1
	expBias  = 1023
)

// SplitFloat64 splits a finite non-negative float64 into an exact binary fraction
// such that f = frac * 2^exp.
// For normal numbers frac includes the implicit leading bit, for subnormal
// numbers it does not.
//
// SplitFloat64 returns [ErrInvalidArgument] if f is negative, NaN, or infinite.
// Negative zero is treated as zero.
func SplitFloat64(f float64) (frac uint64, exp int, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, 0, fmt.Errorf("splitting %v: %w", f, ErrInvalidArgument)
	}
	b := math.Float64bits(f)
	frac = b & mantMask
	biased := int(b>>mantBits) & expMask
	if biased == 0 {
		// Subnormal or zero: no implicit bit, exponent of the smallest normal.
		return frac, 1 - expBias - mantBits, nil
	}
	return frac | 1<<mantBits, biased - expBias - mantBits, nil
}

// BinaryDecimal is an exact non-negative value coef * 2^binExp * 10^decExp.
// It is an intermediate representation that allows a decimal to be compared
// against a float64 without rounding.
// The coefficient is not normalized, the same value can have several representations.
//
// BinaryDecimal is immutable and safe for concurrent use.
type BinaryDecimal struct {
	coef   uint64
	binExp int
	decExp int
}

// NewBinaryDecimal returns a binary decimal equal to coef * 2^binExp * 10^decExp.
func NewBinaryDecimal(coef uint64, binExp, decExp int) BinaryDecimal {
	return BinaryDecimal{coef: coef, binExp: binExp, decExp: decExp}
}

// BinaryDecimalFromFloat64 returns a binary decimal exactly equal to f.
// Trailing zero bits of the mantissa are removed.
//
// BinaryDecimalFromFloat64 returns [ErrInvalidArgument] if f is negative, NaN, or infinite.
func BinaryDecimalFromFloat64(f float64) (BinaryDecimal, error) {
	frac, exp, err := SplitFloat64(f)
	if err != nil {
		return BinaryDecimal{}, err
	}
	if frac == 0 {
		return BinaryDecimal{}, nil
	}
	z := bits.TrailingZeros64(frac)
	return BinaryDecimal{coef: frac >> z, binExp: exp + z}, nil
}

// Coef returns the coefficient of b.
func (b BinaryDecimal) Coef() uint64 {
	return b.coef
}

// BinExp returns the binary exponent of b.
func (b BinaryDecimal) BinExp() int {
	return b.binExp
}

// DecExp returns the decimal exponent of b.
func (b BinaryDecimal) DecExp() int {
	return b.decExp
}

// IsZero returns true if b == 0.
func (b BinaryDecimal) IsZero() bool {
	return b.coef == 0
}

// DecDecExp returns a value with the decimal exponent decreased by 1.
// The coefficient is multiplied by 5 and the binary exponent is increased by 1.
// If the multiplication would overflow, the coefficient is first shifted right,
// dropping low bits.
// The result is never greater than b and is within one unit in the last place of b.
// The flag reports whether the result is exactly equal to b.
func (b BinaryDecimal) DecDecExp() (BinaryDecimal, bool) {
	if b.coef == 0 {
		return BinaryDecimal{binExp: b.binExp, decExp: b.decExp - 1}, true
	}
	exact := true
	coef, binExp := b.coef, b.binExp
	for coef > math.MaxUint64/5 {
		exact = exact && coef&1 == 0
		coef >>= 1
		binExp++
	}
	return BinaryDecimal{coef: coef * 5, binExp: binExp + 1, decExp: b.decExp - 1}, exact
}

// IncDecExp returns a value with the decimal exponent increased by 1.
// The coefficient is first shifted left until its highest bit is set,
// then divided by 5 (rounding down), and the binary exponent is decreased by 1.
// The result is never greater than b and is within one unit in the last place of b.
// The flag reports whether the result is exactly equal to b.
func (b BinaryDecimal) IncDecExp() (BinaryDecimal, bool) {
	if b.coef == 0 {
		return BinaryDecimal{binExp: b.binExp, decExp: b.decExp + 1}, true
	}
	z := bits.LeadingZeros64(b.coef)
	coef := b.coef << z
	binExp := b.binExp - z
	q, r := coef/5, coef%5
	return BinaryDecimal{coef: q, binExp: binExp - 1, decExp: b.decExp + 1}, r == 0
}

// Cmp compares b and a non-negative float64 f and returns:
//
//	-1 if b < f
//	 0 if b == f
//	+1 if b > f
//
// The decimal exponent is first reduced to zero.
// If any step of that reduction was inexact, the comparison treats equality as
// b > f, so the result is monotonic in b and never reports b < f when b >= f.
//
// Cmp returns [ErrInvalidArgument] if f is negative, NaN, or infinite.
func (b BinaryDecimal) Cmp(f float64) (int, error) {
	frac, exp, err := SplitFloat64(f)
	if err != nil {
		return 0, err
	}

	// Special cases: zeros
	switch {
	case frac == 0 && b.coef == 0:
		return 0, nil
	case frac == 0:
		return 1, nil
	case b.coef == 0:
		return -1, nil
	}

	// General case
	c := b
	exact := true
	for c.decExp > 0 {
		var ok bool
		c, ok = c.DecDecExp()
		exact = exact && ok
	}
	for c.decExp < 0 {
		var ok bool
		c, ok = c.IncDecExp()
		exact = exact && ok
	}
	if exact {
		return c.cmpRaw(frac, exp, 0), nil
	}
	return c.cmpRaw(frac, exp, 1), nil
}

// cmpRaw compares coef * 2^binExp with frac * 2^exp.
// The mantissa with the larger exponent is shifted left; a shift that would
// overflow means that mantissa is larger.
// cmpRaw returns eq if the values are equal.
// cmpRaw assumes that decExp == 0 and both coefficients are not zero.
func (b BinaryDecimal) cmpRaw(frac uint64, exp, eq int) int {
	x, y := b.coef, frac
	if b.binExp >= exp {
		shift := b.binExp - exp
		if shift > bits.LeadingZeros64(x) {
			return 1
		}
		x <<= shift
	} else {
		shift := exp - b.binExp
		if shift > bits.LeadingZeros64(y) {
			return -1
		}
		y <<= shift
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return eq
	}
}

// Float64 returns an approximation of b.
// The approximation is not monotonic, use [BinaryDecimal.Cmp] for comparisons.
func (b BinaryDecimal) Float64() float64 {
	return math.Ldexp(float64(b.coef), b.binExp) * math.Pow(10, float64(b.decExp))
}

// String returns b in the form "coef*2^binExp*10^decExp".
func (b BinaryDecimal) String() string {
	return fmt.Sprintf("%d*2^%d*10^%d", b.coef, b.binExp, b.decExp)
}

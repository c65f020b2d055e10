package decimal

import (
	"fmt"
	"math"
)

// NewFromFloat64RoundDown returns the decimal with exactly prec significant digits
// that is nearest to f in the direction of zero.
// The result never lies farther from zero than f:
//
//	NewFromFloat64RoundDown(f, prec).CmpFloat64(f) <= 0, if f >= 0
//	NewFromFloat64RoundDown(f, prec).CmpFloat64(f) >= 0, if f < 0
//
// NewFromFloat64RoundDown returns [ErrInvalidArgument] if f is NaN or infinite,
// or if prec is less than 1 or greater than [MaxPrec].
func NewFromFloat64RoundDown(f float64, prec int) (Decimal, error) {
	return newFromFloat64(f, prec, false)
}

// NewFromFloat64RoundUp returns the decimal with exactly prec significant digits
// that is nearest to f in the direction away from zero.
// The result never lies closer to zero than f:
//
//	NewFromFloat64RoundUp(f, prec).CmpFloat64(f) >= 0, if f >= 0
//	NewFromFloat64RoundUp(f, prec).CmpFloat64(f) <= 0, if f < 0
//
// NewFromFloat64RoundUp returns [ErrInvalidArgument] if f is NaN or infinite,
// or if prec is less than 1 or greater than [MaxPrec].
func NewFromFloat64RoundUp(f float64, prec int) (Decimal, error) {
	return newFromFloat64(f, prec, true)
}

func newFromFloat64(f float64, prec int, up bool) (Decimal, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Decimal{}, fmt.Errorf("converting %v: %w", f, ErrInvalidArgument)
	case prec < 1 || prec > MaxPrec:
		return Decimal{}, fmt.Errorf("converting %v to %v digits: %w", f, prec, ErrInvalidArgument)
	case f == 0:
		return Decimal{}, nil
	case f < 0:
		d, err := newFromFloat64(-f, prec, up)
		return d.Neg(), err
	}

	// Estimate
	lo, hi := int64(pow10[prec-1]), int64(pow10[prec])
	exp := int(math.Floor(math.Log10(f))) - prec + 1
	m := scaleFloat(f, -exp)
	if up {
		m = math.Ceil(m)
	} else {
		m = math.Floor(m)
	}
	m = math.Max(m, float64(lo))
	m = math.Min(m, float64(hi-1))
	coef := int64(m)
	if coef >= hi {
		coef = hi - 1
	}

	// Correction
	// The coefficient stays within [lo, hi), so the result has exactly prec digits.
	next := func(coef int64, exp int) (int64, int) {
		if coef+1 == hi {
			return lo, exp + 1
		}
		return coef + 1, exp
	}
	prev := func(coef int64, exp int) (int64, int) {
		if coef == lo {
			return hi - 1, exp - 1
		}
		return coef - 1, exp
	}
	if up {
		for cmpFinite(New(coef, exp), f) < 0 {
			coef, exp = next(coef, exp)
		}
		for {
			c, e := prev(coef, exp)
			if cmpFinite(New(c, e), f) < 0 {
				break
			}
			coef, exp = c, e
		}
	} else {
		for cmpFinite(New(coef, exp), f) > 0 {
			coef, exp = prev(coef, exp)
		}
		for {
			c, e := next(coef, exp)
			if cmpFinite(New(c, e), f) > 0 {
				break
			}
			coef, exp = c, e
		}
	}
	return New(coef, exp), nil
}

// cmpFinite is like [Decimal.CmpFloat64] but assumes that f is finite.
func cmpFinite(d Decimal, f float64) int {
	r, _ := d.CmpFloat64(f)
	return r
}

// scaleFloat returns an approximation of f * 10^shift.
// Large shifts are applied in steps to avoid premature overflow or underflow.
func scaleFloat(f float64, shift int) float64 {
	for ; shift > 300; shift -= 300 {
		f *= 1e300
	}
	for ; shift < -300; shift += 300 {
		f /= 1e300
	}
	return f * math.Pow10(shift)
}

// NextIncrement returns the tick spacing for a minimum interval.
// The interval is rounded up to one significant digit, then the leading digit
// is snapped up: 1 stays 1, 2 to 5 become 5, and 6 to 9 become 10.
// For example, 0.03 gives 0.05 and 0.7 gives 1.
// Rounding is exact, so the float64 0.1, which is slightly above 1/10,
// rounds up to 0.2 and gives 0.5.
//
// NextIncrement returns [ErrInvalidArgument] if minInterval is not a finite
// positive number.
func NextIncrement(minInterval float64) (Decimal, error) {
	if !(minInterval > 0) || math.IsInf(minInterval, 0) {
		return Decimal{}, fmt.Errorf("increment for %v: %w", minInterval, ErrInvalidArgument)
	}
	d, err := NewFromFloat64RoundUp(minInterval, 1)
	if err != nil {
		return Decimal{}, err
	}
	switch {
	case d.coef > 5:
		return New(1, d.exp+1), nil
	case d.coef > 1:
		return New(5, d.exp), nil
	default:
		return d, nil
	}
}

// NextLogIncrement returns the spacing, in decades, between major log-scale ticks.
// It returns 1 if minInterval is less than 1, otherwise the first of 3, 6, 12, 24, ...
// that is greater than minInterval.
func NextLogIncrement(minInterval float64) int {
	if minInterval < 1 {
		return 1
	}
	n := 3
	for float64(n) <= minInterval && n <= math.MaxInt/2 {
		n *= 2
	}
	return n
}

// LowerBound returns the largest multiple of factor that does not exceed v.
// A multiple m does not exceed v if its nearest float64 does not, that is
// m.Float64() <= v, even when the exact m is above v.
// For example, LowerBound(0.3, 0.1) is 0.3, although 0.3.CmpFloat64(0.3) is 1.
// The result is a fixed point:
//
//	LowerBound(LowerBound(v, f).Float64(), f) == LowerBound(v, f)
//
// LowerBound returns [ErrInvalidArgument] if v is NaN or infinite or factor is not positive,
// and [ErrOverflow] if the multiplier does not fit into int64.
func LowerBound(v float64, factor Decimal) (Decimal, error) {
	if err := checkBound(v, factor); err != nil {
		return Decimal{}, err
	}
	if v < 0 {
		d, err := upperBound(-v, factor)
		return d.Neg(), err
	}
	return lowerBound(v, factor)
}

// UpperBound returns the smallest multiple of factor that is not less than v.
// A multiple m is not less than v if its nearest float64 is not, that is
// m.Float64() >= v, even when the exact m is below v.
// For example, UpperBound(0.1, 0.1) is 0.1, although 0.1.CmpFloat64(0.1) is -1.
// The result is a fixed point:
//
//	UpperBound(UpperBound(v, f).Float64(), f) == UpperBound(v, f)
//
// UpperBound returns [ErrInvalidArgument] if v is NaN or infinite or factor is not positive,
// and [ErrOverflow] if the multiplier does not fit into int64.
func UpperBound(v float64, factor Decimal) (Decimal, error) {
	if err := checkBound(v, factor); err != nil {
		return Decimal{}, err
	}
	if v < 0 {
		d, err := lowerBound(-v, factor)
		return d.Neg(), err
	}
	return upperBound(v, factor)
}

func checkBound(v float64, factor Decimal) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("bound of %v: %w", v, ErrInvalidArgument)
	case !factor.IsPos():
		return fmt.Errorf("bound of %v with factor %v: %w", v, factor, ErrInvalidArgument)
	}
	return nil
}

// lowerBound assumes that v >= 0 and factor > 0.
func lowerBound(v float64, factor Decimal) (Decimal, error) {
	if v == 0 {
		return Decimal{}, nil
	}
	k, err := estimate(v, factor, math.Floor)
	if err != nil {
		return Decimal{}, err
	}
	m, err := multiple(factor, k)
	if err != nil {
		return Decimal{}, err
	}
	for m.Float64() > v {
		k--
		if m, err = multiple(factor, k); err != nil {
			return Decimal{}, err
		}
	}
	for {
		n, err := multiple(factor, k+1)
		if err != nil {
			return Decimal{}, err
		}
		if n.Float64() > v {
			return m, nil
		}
		k, m = k+1, n
	}
}

// upperBound assumes that v >= 0 and factor > 0.
func upperBound(v float64, factor Decimal) (Decimal, error) {
	if v == 0 {
		return Decimal{}, nil
	}
	k, err := estimate(v, factor, math.Ceil)
	if err != nil {
		return Decimal{}, err
	}
	m, err := multiple(factor, k)
	if err != nil {
		return Decimal{}, err
	}
	for m.Float64() < v {
		k++
		if m, err = multiple(factor, k); err != nil {
			return Decimal{}, err
		}
	}
	for {
		n, err := multiple(factor, k-1)
		if err != nil {
			return Decimal{}, err
		}
		if n.Float64() < v {
			return m, nil
		}
		k, m = k-1, n
	}
}

// estimate returns round(v / factor) computed in floating point.
func estimate(v float64, factor Decimal, round func(float64) float64) (int64, error) {
	const maxMultiplier = 1 << 62
	q := round(v / factor.Float64())
	if math.IsNaN(q) || math.Abs(q) > maxMultiplier {
		return 0, fmt.Errorf("bound of %v with factor %v: %w", v, factor, ErrOverflow)
	}
	return int64(q), nil
}

// multiple returns factor * k and checks overflow.
func multiple(factor Decimal, k int64) (Decimal, error) {
	if _, ok := abs(factor.coef).mul(abs(k)); !ok {
		return Decimal{}, fmt.Errorf("computing %v * %v: %w", factor, k, ErrOverflow)
	}
	return factor.MulInt64(k), nil
}

// FirstMultiple returns the smallest multiple of factor that is greater than
// or equal to min.
// Unlike [LowerBound] and [UpperBound], FirstMultiple is computed in exact
// decimal arithmetic.
//
// FirstMultiple returns [ErrInvalidArgument] if factor is not positive
// and [ErrOverflow] if the result does not fit into a 64-bit coefficient.
func FirstMultiple(min, factor Decimal) (Decimal, error) {
	if !factor.IsPos() {
		return Decimal{}, fmt.Errorf("first multiple of %v: %w", factor, ErrInvalidArgument)
	}
	if min.IsZero() {
		return Decimal{}, nil
	}

	// Units of 10^factor.exp, rounded up
	var units int64
	switch shift := min.exp - factor.exp; {
	case shift >= 0:
		u, ok := abs(min.coef).lsh(shift)
		if !ok {
			return Decimal{}, fmt.Errorf("first multiple of %v not less than %v: %w", factor, min, ErrOverflow)
		}
		units = int64(u)
		if min.IsNeg() {
			units = -units
		}
	case -shift >= len(pow10):
		// |min| is less than one unit
		if min.IsPos() {
			units = 1
		}
	default:
		units = ceilDiv(min.coef, int64(pow10[-shift]))
	}

	return multiple(factor, ceilDiv(units, factor.coef))
}

// ceilDiv returns x / y rounded towards positive infinity.
// ceilDiv assumes that y > 0.
func ceilDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && x > 0 {
		q++
	}
	return q
}

// MiddleValue returns the best intermediate tick between lo and hi.
// Candidates are the multiples of 10^k strictly above lo up to hi, where 10^k
// is the magnitude of hi - lo, or a tenth of it if hi - lo is exactly 10^k.
// The chosen candidate maximizes its smaller distance to lo and hi in linear
// coordinates, and that distance must be at least minLinearInterval.
// Ties go to the larger candidate.
//
// MiddleValue returns false if no candidate qualifies, or if hi <= lo.
func MiddleValue(lo, hi Decimal, minLinearInterval float64, toLinear func(float64) float64) (Decimal, bool) {
	diff := hi.Sub(lo)
	if !diff.IsPos() {
		return Decimal{}, false
	}

	var (
		step Decimal
		n    int64
	)
	if diff.coef == 1 {
		step, n = New(1, diff.exp-1), 10
	} else {
		step, n = New(1, diff.exp), diff.coef
	}

	var (
		middle Decimal
		found  bool
	)
	loLin, hiLin := toLinear(lo.Float64()), toLinear(hi.Float64())
	best := minLinearInterval
	cand := lo
	for i := int64(0); i < n; i++ {
		cand = cand.Add(step)
		lin := toLinear(cand.Float64())
		if dist := math.Min(hiLin-lin, lin-loLin); dist >= best {
			middle, best, found = cand, dist, true
		}
	}
	return middle, found
}

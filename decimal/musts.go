package decimal

import "fmt"

// MustCmpFloat64 is like [Decimal.CmpFloat64] but panics if f is not finite.
func (d Decimal) MustCmpFloat64(f float64) int {
	r, err := d.CmpFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustCmpFloat64(%v) failed: %v", f, err))
	}
	return r
}

// MustNewFromFloat64RoundUp is like [NewFromFloat64RoundUp] but panics if computing error.
func MustNewFromFloat64RoundUp(f float64, prec int) Decimal {
	d, err := NewFromFloat64RoundUp(f, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64RoundUp(%v, %v) failed: %v", f, prec, err))
	}
	return d
}

// MustNewFromFloat64RoundDown is like [NewFromFloat64RoundDown] but panics if computing error.
func MustNewFromFloat64RoundDown(f float64, prec int) Decimal {
	d, err := NewFromFloat64RoundDown(f, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64RoundDown(%v, %v) failed: %v", f, prec, err))
	}
	return d
}

// MustNextIncrement is like [NextIncrement] but panics if computing error.
func MustNextIncrement(minInterval float64) Decimal {
	d, err := NextIncrement(minInterval)
	if err != nil {
		panic(fmt.Sprintf("MustNextIncrement(%v) failed: %v", minInterval, err))
	}
	return d
}

// MustLowerBound is like [LowerBound] but panics if computing error.
func MustLowerBound(v float64, factor Decimal) Decimal {
	d, err := LowerBound(v, factor)
	if err != nil {
		panic(fmt.Sprintf("MustLowerBound(%v, %v) failed: %v", v, factor, err))
	}
	return d
}

// MustUpperBound is like [UpperBound] but panics if computing error.
func MustUpperBound(v float64, factor Decimal) Decimal {
	d, err := UpperBound(v, factor)
	if err != nil {
		panic(fmt.Sprintf("MustUpperBound(%v, %v) failed: %v", v, factor, err))
	}
	return d
}

package decimal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Decimal type is a representation of a finite floating-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with two parameters:
//
//   - Coefficient: a signed 64-bit integer value of the decimal without the decimal point.
//   - Exponent: an integer power of ten the coefficient is multiplied by.
//
// For example, a decimal with a coefficient of 12345 and an exponent of -2 represents
// the value 123.45.
// Decimals are always normalized: the coefficient is not a multiple of 10
// unless it is 0, and the exponent of 0 is 0.
// As a result, each numeric value has exactly one representation and
// decimals can be compared with the == operator.
type Decimal struct {
	coef int64 // the coefficient of the decimal
	exp  int   // the power of ten of the decimal
}

const (
	MaxPrec = 18 // maximum number of significant digits accepted by rounding constructors
	maxExp  = 1_000_000
)

var (
	// ErrInvalidArgument is returned for non-finite floats, negative values where
	// a non-negative value is required, non-positive factors and malformed text.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a result does not fit into a 64-bit coefficient.
	ErrOverflow = errors.New("coefficient overflow")
)

// New returns a decimal equal to coef * 10^exp.
// The result is normalized, so New(500, -2) and New(5, 0) are equal.
func New(coef int64, exp int) Decimal {
	if coef == 0 {
		return Decimal{}
	}
	n := abs(coef).ntz()
	return Decimal{coef: coef / int64(pow10[n]), exp: exp + n}
}

// Coef returns the coefficient of the decimal.
// The coefficient is not a multiple of 10 unless d is 0.
func (d Decimal) Coef() int64 {
	return d.coef
}

// Exp returns the exponent of the decimal.
func (d Decimal) Exp() int {
	return d.exp
}

// Prec returns the number of digits in the coefficient.
// Prec returns 0 for the zero decimal.
func (d Decimal) Prec() int {
	return abs(d.coef).prec()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.coef < 0:
		return -1
	case d.coef > 0:
		return 1
	default:
		return 0
	}
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef == 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.coef < 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.coef > 0
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return Decimal{coef: -d.coef, exp: d.exp}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	if d.coef < 0 {
		return d.Neg()
	}
	return d
}

// align returns the coefficients of d and e rescaled to the smaller of the two exponents.
// The rescaled coefficient wraps around if it does not fit into int64.
func align(d, e Decimal) (dcoef, ecoef int64, exp int) {
	switch {
	case d.coef == 0:
		return 0, e.coef, e.exp
	case e.coef == 0:
		return d.coef, 0, d.exp
	case d.exp < e.exp:
		return d.coef, e.coef * scale(e.exp-d.exp), d.exp
	default:
		return d.coef * scale(d.exp-e.exp), e.coef, e.exp
	}
}

// scale returns 10^shift with wrap-around for shifts beyond the int64 range.
func scale(shift int) int64 {
	if shift < len(pow10) {
		return int64(pow10[shift])
	}
	z := int64(pow10[len(pow10)-1])
	for shift -= len(pow10) - 1; shift > 0; shift-- {
		z *= 10
	}
	return z
}

// Add returns the (exact) sum d + e.
//
// Add does not check for overflow.
// Operands must be close enough in magnitude for the aligned coefficients
// and their sum to fit into int64.
func (d Decimal) Add(e Decimal) Decimal {
	dcoef, ecoef, exp := align(d, e)
	return New(dcoef+ecoef, exp)
}

// Sub returns the (exact) difference d - e.
// Sub has the same range limitations as [Decimal.Add].
func (d Decimal) Sub(e Decimal) Decimal {
	dcoef, ecoef, exp := align(d, e)
	return New(dcoef-ecoef, exp)
}

// Mul returns the (exact) product d * e.
//
// Mul does not check for overflow: the product of the coefficients
// wraps around if it does not fit into int64.
// Callers must bound the magnitude of the operands.
func (d Decimal) Mul(e Decimal) Decimal {
	return New(d.coef*e.coef, d.exp+e.exp)
}

// MulInt64 returns the (exact) product d * n.
// MulInt64 has the same range limitations as [Decimal.Mul].
func (d Decimal) MulInt64(n int64) Decimal {
	return New(d.coef*n, d.exp)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d == e:
		return 0
	}

	// General case
	r := cmpAbs(abs(d.coef), d.exp, abs(e.coef), e.exp)
	if d.IsNeg() {
		return -r
	}
	return r
}

// cmpAbs compares magnitudes dcoef * 10^dexp and ecoef * 10^eexp.
// An aligned coefficient that overflows is larger, since 2^63 is not a multiple of 10.
func cmpAbs(dcoef fint, dexp int, ecoef fint, eexp int) int {
	var ok bool
	switch {
	case dexp < eexp:
		ecoef, ok = ecoef.lsh(eexp - dexp)
		if !ok {
			return -1
		}
	case eexp < dexp:
		dcoef, ok = dcoef.lsh(dexp - eexp)
		if !ok {
			return 1
		}
	}
	switch {
	case dcoef < ecoef:
		return -1
	case ecoef < dcoef:
		return 1
	default:
		return 0
	}
}

// Min returns the minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// CmpFloat64 compares d and f exactly and returns:
//
//	-1 if d < f
//	 0 if d == f
//	+1 if d > f
//
// The comparison is monotonic in d: if d < e and d.CmpFloat64(f) == 1,
// then e.CmpFloat64(f) == 1 too.
// When the comparison cannot be decided exactly, equality is resolved away
// from zero, so a decimal is never reported to be closer to zero than it is.
//
// CmpFloat64 returns [ErrInvalidArgument] if f is NaN or infinite.
func (d Decimal) CmpFloat64(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("comparing %v with %v: %w", d, f, ErrInvalidArgument)
	}

	// Special case: different signs
	switch {
	case d.IsNeg() && f < 0:
		r, err := NewBinaryDecimal(uint64(abs(d.coef)), 0, d.exp).Cmp(-f)
		if err != nil {
			return 0, err
		}
		return -r, nil
	case d.IsNeg():
		return -1, nil
	case f < 0:
		return 1, nil
	}

	// General case
	return NewBinaryDecimal(uint64(d.coef), 0, d.exp).Cmp(f)
}

// Float64 returns the float64 nearest to d.
// Float64 is monotonic: if d <= e, then d.Float64() <= e.Float64().
func (d Decimal) Float64() float64 {
	const maxExact = 1 << 53

	// Special case: exactly representable coefficient and power of ten
	coef, exp := d.coef, d.exp
	if -maxExact <= coef && coef <= maxExact && -len(fpow10) < exp && exp < len(fpow10) {
		if exp >= 0 {
			return float64(coef) * fpow10[exp]
		}
		return float64(coef) / fpow10[-exp]
	}

	// General case
	// Outside of the float64 range ParseFloat returns ±Inf or ±0 along with an error.
	f, _ := strconv.ParseFloat(d.sci(), 64)
	return f
}

// sci returns d in the form "coefEexp" accepted by [strconv.ParseFloat].
func (d Decimal) sci() string {
	buf := make([]byte, 0, 32)
	buf = strconv.AppendInt(buf, d.coef, 10)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(d.exp), 10)
	return string(buf)
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Trailing zeros do not count towards the coefficient, so "1000000000000000000000"
// is accepted while "1234567890123456789012" is not.
//
// Parse returns [ErrInvalidArgument] if the string does not represent a valid decimal
// and [ErrOverflow] if the significant digits do not fit into a 64-bit coefficient.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    fint
		exp     int
		pending int
		hascoef bool
		ok      bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		return Decimal{}, ErrInvalidArgument
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		coef, pending, ok = appendDigit(coef, pending, s[pos]-'0')
		if !ok {
			return Decimal{}, ErrOverflow
		}
		pos++
		hascoef = true
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			coef, pending, ok = appendDigit(coef, pending, s[pos]-'0')
			if !ok {
				return Decimal{}, ErrOverflow
			}
			exp--
			pos++
			hascoef = true
		}
	}

	if !hascoef {
		return Decimal{}, ErrInvalidArgument
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		var (
			eneg   bool
			e      int
			hasexp bool
		)
		switch {
		case pos == width:
			return Decimal{}, ErrInvalidArgument
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			e = e*10 + int(s[pos]-'0')
			if e > maxExp {
				return Decimal{}, ErrOverflow
			}
			pos++
			hasexp = true
		}
		if !hasexp {
			return Decimal{}, ErrInvalidArgument
		}
		if eneg {
			e = -e
		}
		exp += e
	}

	if pos != width {
		return Decimal{}, ErrInvalidArgument
	}

	c := int64(coef)
	if neg {
		c = -c
	}
	return New(c, exp+pending), nil
}

// appendDigit appends a decimal digit to the coefficient.
// Zeros are accumulated in pending and only applied once a non-zero digit follows,
// so trailing zeros never overflow the coefficient.
func appendDigit(coef fint, pending int, digit byte) (fint, int, bool) {
	if digit == 0 {
		return coef, pending + 1, true
	}
	coef, ok := coef.fsa(pending+1, digit)
	return coef, 0, ok
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return string(appendPlain(nil, d.IsNeg(), abs(d.coef), d.exp))
}

// appendPlain appends coef * 10^exp in plain notation.
func appendPlain(buf []byte, neg bool, coef fint, exp int) []byte {
	if neg && coef != 0 {
		buf = append(buf, '-')
	}
	digits := strconv.AppendUint(make([]byte, 0, 20), uint64(coef), 10)

	// Integer
	if exp >= 0 {
		buf = append(buf, digits...)
		if coef != 0 {
			for i := 0; i < exp; i++ {
				buf = append(buf, '0')
			}
		}
		return buf
	}

	// Fraction
	point := len(digits) + exp
	if point > 0 {
		buf = append(buf, digits[:point]...)
		buf = append(buf, '.')
		return append(buf, digits[point:]...)
	}
	buf = append(buf, '0', '.')
	for i := point; i < 0; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digits...)
}

// Text returns a label representation of the decimal with all of its
// significant digits.
// Plain notation is used unless it would need more than digits padding zeros,
// in which case the result is in scientific notation:
//
//	New(15, -1).Text(5)     = "1.5"
//	New(123456, 0).Text(5)  = "123456"
//	New(1, 5).Text(5)       = "100000"
//	New(1, 6).Text(5)       = "1e6"
//	New(-15, -8).Text(5)    = "-1.5e-7"
//
// If digits is less than 1, it is treated as 1.
// The result can be parsed back with [Parse] to the same decimal.
func (d Decimal) Text(digits int) string {
	if digits < 1 {
		digits = 1
	}
	if d.IsZero() {
		return "0"
	}
	coef, exp := abs(d.coef), d.exp
	prec := coef.prec()

	// Padding
	padding := 0
	switch {
	case exp > 0:
		padding = exp
	case -exp > prec:
		padding = -exp - prec
	}
	if padding <= digits {
		return string(appendPlain(nil, d.IsNeg(), coef, exp))
	}

	// Scientific notation
	buf := make([]byte, 0, 32)
	if d.IsNeg() {
		buf = append(buf, '-')
	}
	s := strconv.AppendUint(make([]byte, 0, 20), uint64(coef), 10)
	buf = append(buf, s[0])
	if len(s) > 1 {
		buf = append(buf, '.')
		buf = append(buf, s[1:]...)
	}
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(exp+prec-1), 10)
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

package decimal

import "math"

// fint (Fast INTeger) is a wrapper around uint64.
// It holds the magnitude of a decimal coefficient.
type fint uint64

// maxFint is a maximum value of fint that still fits into a signed coefficient.
const maxFint = math.MaxInt64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// fpow10 is a cache of powers of 10 that are exactly representable as float64.
var fpow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
	1e21, 1e22,
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x fint) ntz() int {
	if x == 0 {
		return 0
	}
	left, right := 1, x.prec()
	for left < right {
		mid := (left + right) / 2
		if x%pow10[mid] == 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left - 1
}

// abs returns the magnitude of a signed coefficient.
// The magnitude of math.MinInt64 is representable in uint64.
func abs(coef int64) fint {
	if coef < 0 {
		return fint(-uint64(coef))
	}
	return fint(coef)
}

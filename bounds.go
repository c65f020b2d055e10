package plotaxis

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Bounds describes a rectangle by its screen-relative edges.
// Left may be greater than Right, and Top may be greater than Bottom,
// when an axis grows in the opposite direction on screen.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Linear returns the bounds converted from real to linear coordinates.
func (b Bounds) Linear(x, y AxisScale) Bounds {
	return Bounds{
		Left:   x.Linear(b.Left),
		Right:  x.Linear(b.Right),
		Top:    y.Linear(b.Top),
		Bottom: y.Linear(b.Bottom),
	}
}

// Real returns the bounds converted from linear to real coordinates.
func (b Bounds) Real(x, y AxisScale) Bounds {
	return Bounds{
		Left:   x.Real(b.Left),
		Right:  x.Real(b.Right),
		Top:    y.Real(b.Top),
		Bottom: y.Real(b.Bottom),
	}
}

// XRange returns the horizontal edges in ascending order.
func (b Bounds) XRange() (min, max float64) {
	min, max, _ = order(b.Left, b.Right)
	return min, max
}

// YRange returns the vertical edges in ascending order.
func (b Bounds) YRange() (min, max float64) {
	min, max, _ = order(b.Top, b.Bottom)
	return min, max
}

// IsFinite reports whether all edges are finite numbers.
func (b Bounds) IsFinite() bool {
	for _, v := range [...]float64{b.Left, b.Right, b.Top, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String implements the [fmt.Stringer] interface.
func (b Bounds) String() string {
	return fmt.Sprintf("[%v, %v]x[%v, %v]", b.Left, b.Right, b.Top, b.Bottom)
}

// order returns a and b in ascending order.
// The swapped flag reports whether a was greater than b.
func order[T constraints.Ordered](a, b T) (lo, hi T, swapped bool) {
	if a > b {
		return b, a, true
	}
	return a, b, false
}

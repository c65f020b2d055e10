package plotaxis

import (
	"fmt"
	"math"
)

// Constraints limits the visible area of a plot in real coordinates.
// A nil limit leaves that side of the axis unbounded.
type Constraints struct {
	XMin, XMax, YMin, YMax *float64
}

// Limit returns a pointer to v, for use in [Constraints].
func Limit(v float64) *float64 {
	return &v
}

// Validate returns an error if a limit is not a finite number
// or if a minimum is greater than the corresponding maximum.
func (c Constraints) Validate() error {
	if err := validateAxis("x", c.XMin, c.XMax); err != nil {
		return err
	}
	if err := validateAxis("y", c.YMin, c.YMax); err != nil {
		return err
	}
	return nil
}

func validateAxis(name string, min, max *float64) error {
	for _, v := range [...]*float64{min, max} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%v limit %v: %w", name, *v, ErrInvalidConfig)
		}
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%v limits [%v, %v]: %w", name, *min, *max, ErrInvalidConfig)
	}
	return nil
}

// linear converts the limits to linear coordinates.
// A limit that has no finite linear equivalent, such as a non-positive limit
// on a logarithmic axis, is treated as unbounded.
func (c Constraints) linear(x, y AxisScale) Constraints {
	return Constraints{
		XMin: linearLimit(c.XMin, x),
		XMax: linearLimit(c.XMax, x),
		YMin: linearLimit(c.YMin, y),
		YMax: linearLimit(c.YMax, y),
	}
}

func linearLimit(v *float64, s AxisScale) *float64 {
	if v == nil {
		return nil
	}
	lin := s.Linear(*v)
	if math.IsNaN(lin) || math.IsInf(lin, 0) {
		return nil
	}
	return &lin
}

// Apply returns b, given in linear coordinates, adjusted to the limits.
// On each axis, if the bounds span at least the limit span, they are snapped
// to the limits. Otherwise they are translated inwards without changing their span.
// The order of the edges is preserved.
// Apply is idempotent.
func (c Constraints) Apply(b Bounds, x, y AxisScale) Bounds {
	lin := c.linear(x, y)
	b.Left, b.Right = applyAxis(b.Left, b.Right, lin.XMin, lin.XMax)
	b.Top, b.Bottom = applyAxis(b.Top, b.Bottom, lin.YMin, lin.YMax)
	return b
}

func applyAxis(first, second float64, min, max *float64) (float64, float64) {
	lo, hi, swapped := order(first, second)
	switch {
	case min != nil && max != nil && hi-lo >= *max-*min:
		lo, hi = *min, *max
	case min != nil && lo < *min:
		lo, hi = *min, hi+(*min-lo)
	case max != nil && hi > *max:
		lo, hi = lo-(hi-*max), *max
	}
	if swapped {
		return hi, lo
	}
	return lo, hi
}

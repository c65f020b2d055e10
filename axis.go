package plotaxis

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/govalues/plotaxis/decimal"
)

// labelDigits is the number of padding zeros label text may use before
// switching to scientific notation.
const labelDigits = 5

// Decades beyond this range are not representable as float64.
const (
	minLogExp = -323
	maxLogExp = 308
)

// Label is a tick label.
// Value is the position of the label in real coordinates.
type Label struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

func newLabel(d decimal.Decimal) Label {
	return Label{Value: d.Float64(), Text: d.Text(labelDigits)}
}

// AxisScale maps real coordinates to linear coordinates and back,
// and chooses tick labels for a visible range.
//
// Labels returns labels sorted by value whose linear coordinates lie within
// [linearMin, linearMax] and are at least minLinearInterval apart.
// Labels returns an empty result for a degenerate range: non-finite bounds,
// linearMin > linearMax, or a non-positive minLinearInterval.
type AxisScale interface {
	Real(linear float64) float64
	Linear(real float64) float64
	Labels(linearMin, linearMax, minLinearInterval float64) []Label
}

// ParseAxisScale returns the axis scale with the given name,
// either "linear" or "log".
func ParseAxisScale(name string) (AxisScale, error) {
	switch name {
	case "linear", "":
		return LinearScale{}, nil
	case "log":
		return LogScale{}, nil
	default:
		return nil, fmt.Errorf("axis scale %q: %w", name, ErrInvalidConfig)
	}
}

// validRange reports whether a label request describes a non-degenerate range.
func validRange(linearMin, linearMax, minLinearInterval float64) bool {
	switch {
	case math.IsNaN(linearMin) || math.IsInf(linearMin, 0):
		return false
	case math.IsNaN(linearMax) || math.IsInf(linearMax, 0):
		return false
	case !(minLinearInterval > 0) || math.IsInf(minLinearInterval, 0):
		return false
	default:
		return linearMin <= linearMax
	}
}

// LinearScale is the identity axis scale.
// Labels are multiples of 1, 5 or 10 times a power of ten.
type LinearScale struct{}

// Real returns linear.
func (LinearScale) Real(linear float64) float64 {
	return linear
}

// Linear returns real.
func (LinearScale) Linear(real float64) float64 {
	return real
}

// Labels returns consecutive multiples of the spacing chosen by [decimal.NextIncrement].
// Every tick is compared with the range bounds exactly, so a tick
// never appears or disappears because of rounding while the view is zoomed.
func (LinearScale) Labels(linearMin, linearMax, minLinearInterval float64) []Label {
	if !validRange(linearMin, linearMax, minLinearInterval) {
		return nil
	}
	spacing, err := decimal.NextIncrement(minLinearInterval)
	if err != nil {
		return nil
	}
	tick, err := decimal.LowerBound(linearMin, spacing)
	if err != nil {
		return nil
	}
	var labels []Label
	for ; tick.MustCmpFloat64(linearMax) <= 0; tick = tick.Add(spacing) {
		if tick.MustCmpFloat64(linearMin) >= 0 {
			labels = append(labels, newLabel(tick))
		}
	}
	return labels
}

// String returns "linear".
func (LinearScale) String() string {
	return "linear"
}

// LogScale is the base 10 logarithmic axis scale.
// Major labels are placed at powers of ten, and when every decade is labeled,
// the decades are subdivided as long as the labels stay far enough apart.
type LogScale struct{}

// Real returns 10^linear.
func (LogScale) Real(linear float64) float64 {
	return math.Pow(10, linear)
}

// Linear returns log10(real).
func (LogScale) Linear(real float64) float64 {
	return math.Log10(real)
}

// Labels returns powers of ten spaced by [decimal.NextLogIncrement] decades.
// If every decade is labeled, each decade is subdivided with [decimal.MiddleValue].
func (s LogScale) Labels(linearMin, linearMax, minLinearInterval float64) []Label {
	if !validRange(linearMin, linearMax, minLinearInterval) {
		return nil
	}
	lo := math.Max(math.Floor(linearMin), minLogExp)
	hi := math.Min(linearMax, maxLogExp)
	spacing := decimal.NextLogIncrement(minLinearInterval)

	var labels []Label
	for tick := floorDiv(int(lo), spacing) * spacing; float64(tick) <= hi; tick += spacing {
		value := decimal.New(1, tick)
		if float64(tick) >= linearMin {
			labels = append(labels, newLabel(value))
		}
		if spacing == 1 {
			labels = s.fill(labels, value, decimal.New(1, tick+1), linearMin, linearMax, minLinearInterval)
		}
	}
	slices.SortFunc(labels, func(a, b Label) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return labels
}

// interval is a pair of adjacent labels in real coordinates.
type interval struct {
	lo, hi decimal.Decimal
}

// fill subdivides [lo, hi] with a worklist of intervals.
// An interval is split at its middle value and both halves are queued,
// until no middle value is at least minLinearInterval away from both ends.
// Intervals entirely outside [linearMin, linearMax] are dropped.
func (s LogScale) fill(labels []Label, lo, hi decimal.Decimal, linearMin, linearMax, minLinearInterval float64) []Label {
	queue := []interval{{lo: lo, hi: hi}}
	for len(queue) > 0 {
		iv := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if s.Linear(iv.hi.Float64()) < linearMin || s.Linear(iv.lo.Float64()) > linearMax {
			continue
		}
		middle, ok := decimal.MiddleValue(iv.lo, iv.hi, minLinearInterval, s.Linear)
		if !ok {
			continue
		}
		if lin := s.Linear(middle.Float64()); lin >= linearMin && lin <= linearMax {
			labels = append(labels, newLabel(middle))
		}
		queue = append(queue, interval{lo: middle, hi: iv.hi}, interval{lo: iv.lo, hi: middle})
	}
	return labels
}

// String returns "log".
func (LogScale) String() string {
	return "log"
}

// floorDiv returns x / y rounded towards negative infinity.
func floorDiv(x, y int) int {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// Package gonumplot adapts the plotaxis tick labels and axis scales
// to gonum.org/v1/plot.
package gonumplot

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/govalues/plotaxis"
)

// DefaultSpacing is the minimum distance between tick labels.
const DefaultSpacing = vg.Length(40)

// siDecimals is the number of decimal places of SI formatted labels.
const siDecimals = 4

// Ticker is a plot.Ticker that places labels with an axis scale.
// The minimum distance between labels is converted from canvas lengths
// to linear coordinates using the length of the axis.
type Ticker struct {
	// Scale defaults to plotaxis.LinearScale.
	Scale plotaxis.AxisScale
	// Length is the length of the axis on the canvas.
	Length vg.Length
	// Spacing is the minimum distance between labels on the canvas,
	// DefaultSpacing if zero.
	Spacing vg.Length
	// SI formats labels with metric prefixes, as in 1.5k.
	SI bool
}

var _ plot.Ticker = Ticker{}

// Ticks returns the labels for the data range [min, max].
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	s := scaleOrDefault(t.Scale)
	spacing := t.Spacing
	if spacing == 0 {
		spacing = DefaultSpacing
	}
	if !(t.Length > 0) {
		return nil
	}
	lo, hi := s.Linear(min), s.Linear(max)
	if lo > hi {
		lo, hi = hi, lo
	}
	interval := (hi - lo) * float64(spacing/t.Length)
	labels := s.Labels(lo, hi, interval)
	return Ticks(labels, t.SI)
}

// Ticks converts labels to plot ticks.
func Ticks(labels []plotaxis.Label, si bool) []plot.Tick {
	if len(labels) == 0 {
		return nil
	}
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		text := l.Text
		if si {
			text = FormatSI(l.Value)
		}
		ticks[i] = plot.Tick{Value: l.Value, Label: text}
	}
	return ticks
}

// FormatSI formats v with a metric prefix and no space, as in 1.5k or 20µ.
func FormatSI(v float64) string {
	return strings.Replace(humanize.SIWithDigits(v, siDecimals, ""), " ", "", 1)
}

// Normalizer is a plot.Normalizer that maps data through an axis scale.
type Normalizer struct {
	// Scale defaults to plotaxis.LinearScale.
	Scale plotaxis.AxisScale
}

var _ plot.Normalizer = Normalizer{}

// Normalize returns the position of x between min and max in linear coordinates,
// 0 at min and 1 at max.
func (n Normalizer) Normalize(min, max, x float64) float64 {
	s := scaleOrDefault(n.Scale)
	lo, hi := s.Linear(min), s.Linear(max)
	if lo == hi {
		return math.NaN()
	}
	return (s.Linear(x) - lo) / (hi - lo)
}

// Apply makes the axes of p use the axis scales and tick labels of s.
// The plot is assumed to be drawn at the given canvas size.
func Apply(p *plot.Plot, s *plotaxis.Scale, width, height vg.Length) {
	p.X.Scale = Normalizer{Scale: s.XScale()}
	p.Y.Scale = Normalizer{Scale: s.YScale()}
	p.X.Tick.Marker = Ticker{Scale: s.XScale(), Length: width}
	p.Y.Tick.Marker = Ticker{Scale: s.YScale(), Length: height}

	b := s.RealBounds()
	p.X.Min, p.X.Max = b.XRange()
	p.Y.Min, p.Y.Max = b.YRange()
}

func scaleOrDefault(s plotaxis.AxisScale) plotaxis.AxisScale {
	if s == nil {
		return plotaxis.LinearScale{}
	}
	return s
}

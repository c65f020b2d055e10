package plotaxis

import "math"

// DefaultWheelScale is the zoom factor of a single mouse wheel step.
const DefaultWheelScale = 1.2

// Location is the position of a pointer over a plot.
// Absolute coordinates are relative to the top-left corner of the component
// containing the plot. Pixel coordinates are clamped to the plot area.
type Location struct {
	scale *Scale

	left, right, top, bottom int

	absX, absY     int
	pixelX, pixelY int
}

// Locate returns the location of a pointer at the given absolute coordinates,
// for a plot whose top-left pixel is at (leftMargin, topMargin).
func (s *Scale) Locate(leftMargin, topMargin, absX, absY int) Location {
	return Location{
		scale:  s,
		left:   leftMargin,
		right:  leftMargin + s.width - 1,
		top:    topMargin,
		bottom: topMargin + s.height - 1,
		absX:   absX,
		absY:   absY,
		pixelX: clamp(absX-leftMargin, s.PixelXLeft(), s.PixelXRight()),
		pixelY: clamp(absY-topMargin, s.PixelYTop(), s.PixelYBottom()),
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// AbsoluteX returns the absolute x-coordinate of the pointer.
func (l Location) AbsoluteX() int {
	return l.absX
}

// AbsoluteY returns the absolute y-coordinate of the pointer.
func (l Location) AbsoluteY() int {
	return l.absY
}

// RelativeX returns the x-coordinate of the pointer relative to the left edge
// of the plot, or to the right edge if rightEdge is true.
func (l Location) RelativeX(rightEdge bool) int {
	if rightEdge {
		return l.absX - l.right
	}
	return l.absX - l.left
}

// RelativeY returns the y-coordinate of the pointer relative to the top edge
// of the plot, or to the bottom edge if bottomEdge is true.
func (l Location) RelativeY(bottomEdge bool) int {
	if bottomEdge {
		return l.absY - l.bottom
	}
	return l.absY - l.top
}

// InPlot reports whether the pointer is inside the plot, including its boundary pixels.
func (l Location) InPlot() bool {
	return l.absX >= l.left && l.absX <= l.right &&
		l.absY >= l.top && l.absY <= l.bottom
}

// PixelX returns the clamped pixel column of the pointer.
func (l Location) PixelX() int {
	return l.pixelX
}

// PixelY returns the clamped pixel row of the pointer.
func (l Location) PixelY() int {
	return l.pixelY
}

// ScreenX returns the screen x-coordinate of the center of the pointer pixel.
func (l Location) ScreenX() float64 {
	return float64(l.pixelX) + 0.5
}

// ScreenY returns the screen y-coordinate of the center of the pointer pixel.
func (l Location) ScreenY() float64 {
	return float64(l.pixelY) + 0.5
}

// LinearX returns the linear x-coordinate of the center of the pointer pixel.
func (l Location) LinearX() float64 {
	return l.scale.LinearX(l.ScreenX())
}

// LinearY returns the linear y-coordinate of the center of the pointer pixel.
func (l Location) LinearY() float64 {
	return l.scale.LinearY(l.ScreenY())
}

// RealX returns the real x-coordinate of the center of the pointer pixel.
func (l Location) RealX() float64 {
	return l.scale.RealX(l.ScreenX())
}

// RealY returns the real y-coordinate of the center of the pointer pixel.
func (l Location) RealY() float64 {
	return l.scale.RealY(l.ScreenY())
}

// Axis identifies a plot axis.
type Axis int

const (
	NoAxis Axis = iota
	XAxis
	YAxis
)

// String implements the [fmt.Stringer] interface.
func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	default:
		return "none"
	}
}

// WheelZoom zooms the axis the pointer is farther outside of the plot along,
// by wheelScale raised to the power of amount, anchored at the pointer.
// A pointer below or above the plot zooms the x-axis, a pointer to the left or
// right zooms the y-axis. If neither direction dominates, nothing happens.
// WheelZoom returns the zoomed axis.
func (s *Scale) WheelZoom(loc Location, wheelScale, amount float64) Axis {
	xBias := max(-loc.RelativeX(false), loc.RelativeX(true))
	yBias := max(-loc.RelativeY(false), loc.RelativeY(true))
	factor := math.Pow(wheelScale, amount)
	switch {
	case yBias > xBias:
		s.ZoomX(loc.LinearX(), factor)
		return XAxis
	case xBias > yBias:
		s.ZoomY(loc.LinearY(), factor)
		return YAxis
	default:
		return NoAxis
	}
}

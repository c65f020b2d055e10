package plotaxis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a plot configuration cannot describe a view.
var ErrInvalidConfig = errors.New("invalid plot configuration")

// Config describes the initial state of a [Scale].
// Bounds are the real coordinates of the centers of the boundary pixels.
type Config struct {
	Width, Height int
	Bounds        Bounds
	X, Y          AxisScale
	Constraints   Constraints
}

// Validate returns an error if the configuration does not describe a view:
// a non-positive size, a missing axis scale, bounds without finite linear
// coordinates, or invalid constraints.
func (c Config) Validate() error {
	if err := validateSize(c.Width, c.Height); err != nil {
		return err
	}
	if c.X == nil || c.Y == nil {
		return fmt.Errorf("missing axis scale: %w", ErrInvalidConfig)
	}
	if lin := c.Bounds.Linear(c.X, c.Y); !lin.IsFinite() {
		return fmt.Errorf("bounds %v: %w", c.Bounds, ErrInvalidConfig)
	}
	if err := c.Constraints.Validate(); err != nil {
		return err
	}
	return nil
}

func validateSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("size %vx%v: %w", width, height, ErrInvalidConfig)
	}
	return nil
}

// Scale maps between the coordinate systems of a plot:
//
//   - pixel coordinates are integer pixel indices, from 0 to width-1;
//   - screen coordinates are continuous, pixel i covers [i, i+1);
//   - linear coordinates are the axis values after the axis scale transform;
//   - real coordinates are the values of the plotted data.
//
// Scale is not safe for concurrent use.
type Scale struct {
	width, height int
	x, y          AxisScale
	constraints   Constraints

	// chosen are the linear coordinates of the centers of the boundary pixels.
	chosen Bounds
	// edge are the linear coordinates of the outer edges of the boundary pixels.
	edge Bounds
}

// New returns a scale for the validated configuration.
func New(cfg Config) (*Scale, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating scale: %w", err)
	}
	s := &Scale{
		width:       cfg.Width,
		height:      cfg.Height,
		x:           cfg.X,
		y:           cfg.Y,
		constraints: cfg.Constraints,
		chosen:      cfg.Bounds.Linear(cfg.X, cfg.Y),
	}
	s.applyConstraints()
	return s, nil
}

// SetSize sets the plot size in pixels.
// The centers of the boundary pixels keep their coordinates.
func (s *Scale) SetSize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	s.width, s.height = width, height
	s.applyConstraints()
	return nil
}

// SetBounds sets the linear coordinates of the centers of the boundary pixels.
func (s *Scale) SetBounds(b Bounds) {
	s.chosen = b
	s.applyConstraints()
}

// SetRealBounds sets the real coordinates of the centers of the boundary pixels.
func (s *Scale) SetRealBounds(b Bounds) {
	s.SetBounds(b.Linear(s.x, s.y))
}

// ZoomX scales the horizontal view range by the given factor,
// keeping the linear x-coordinate fixed.
// A factor greater than 1 zooms out.
func (s *Scale) ZoomX(x, scale float64) {
	s.chosen.Left = (s.chosen.Left-x)*scale + x
	s.chosen.Right = (s.chosen.Right-x)*scale + x
	s.applyConstraints()
}

// ZoomY scales the vertical view range by the given factor,
// keeping the linear y-coordinate fixed.
func (s *Scale) ZoomY(y, scale float64) {
	s.chosen.Top = (s.chosen.Top-y)*scale + y
	s.chosen.Bottom = (s.chosen.Bottom-y)*scale + y
	s.applyConstraints()
}

// Pan moves the plot contents by the given distances in screen coordinates,
// as when dragging the plot with the pointer.
func (s *Scale) Pan(dx, dy float64) {
	lx := dx * (s.edge.Right - s.edge.Left) / float64(s.width)
	ly := dy * (s.edge.Bottom - s.edge.Top) / float64(s.height)
	s.chosen.Left -= lx
	s.chosen.Right -= lx
	s.chosen.Top -= ly
	s.chosen.Bottom -= ly
	s.applyConstraints()
}

func (s *Scale) applyConstraints() {
	s.chosen = s.constraints.Apply(s.chosen, s.x, s.y)
	s.setEdgeBounds()
}

// setEdgeBounds extends the chosen bounds by half a pixel in every direction.
func (s *Scale) setEdgeBounds() {
	xOffset := (s.chosen.Right - s.chosen.Left) / float64(max(s.width-1, 1)) / 2
	yOffset := (s.chosen.Bottom - s.chosen.Top) / float64(max(s.height-1, 1)) / 2
	s.edge = Bounds{
		Left:   s.chosen.Left - xOffset,
		Right:  s.chosen.Right + xOffset,
		Top:    s.chosen.Top - yOffset,
		Bottom: s.chosen.Bottom + yOffset,
	}
}

// Width returns the plot width in pixels.
func (s *Scale) Width() int {
	return s.width
}

// Height returns the plot height in pixels.
func (s *Scale) Height() int {
	return s.height
}

// XScale returns the horizontal axis scale.
func (s *Scale) XScale() AxisScale {
	return s.x
}

// YScale returns the vertical axis scale.
func (s *Scale) YScale() AxisScale {
	return s.y
}

// Constraints returns the view limits.
func (s *Scale) Constraints() Constraints {
	return s.constraints
}

// ChosenBounds returns the linear coordinates of the centers of the boundary pixels.
func (s *Scale) ChosenBounds() Bounds {
	return s.chosen
}

// EdgeBounds returns the linear coordinates of the outer edges of the plot.
func (s *Scale) EdgeBounds() Bounds {
	return s.edge
}

// RealBounds returns the real coordinates of the outer edges of the plot.
func (s *Scale) RealBounds() Bounds {
	return s.edge.Real(s.x, s.y)
}

// ScreenXLeft returns the left edge of the plot in screen coordinates.
func (s *Scale) ScreenXLeft() float64 {
	return 0
}

// ScreenXRight returns the right edge of the plot in screen coordinates.
func (s *Scale) ScreenXRight() float64 {
	return float64(s.width)
}

// ScreenYTop returns the top edge of the plot in screen coordinates.
func (s *Scale) ScreenYTop() float64 {
	return 0
}

// ScreenYBottom returns the bottom edge of the plot in screen coordinates.
func (s *Scale) ScreenYBottom() float64 {
	return float64(s.height)
}

// PixelXLeft returns the leftmost pixel column.
func (s *Scale) PixelXLeft() int {
	return 0
}

// PixelXRight returns the rightmost pixel column.
func (s *Scale) PixelXRight() int {
	return s.width - 1
}

// PixelYTop returns the topmost pixel row.
func (s *Scale) PixelYTop() int {
	return 0
}

// PixelYBottom returns the bottommost pixel row.
func (s *Scale) PixelYBottom() int {
	return s.height - 1
}

// ScreenX converts a real x-coordinate to screen coordinates.
func (s *Scale) ScreenX(realX float64) float64 {
	return (s.x.Linear(realX) - s.edge.Left) / (s.edge.Right - s.edge.Left) * float64(s.width)
}

// ScreenY converts a real y-coordinate to screen coordinates.
func (s *Scale) ScreenY(realY float64) float64 {
	return (s.y.Linear(realY) - s.edge.Top) / (s.edge.Bottom - s.edge.Top) * float64(s.height)
}

// PixelX converts a real x-coordinate to the pixel column containing it.
func (s *Scale) PixelX(realX float64) int {
	return int(math.Floor(s.ScreenX(realX)))
}

// PixelY converts a real y-coordinate to the pixel row containing it.
func (s *Scale) PixelY(realY float64) int {
	return int(math.Floor(s.ScreenY(realY)))
}

// LinearX converts a screen x-coordinate to linear coordinates.
func (s *Scale) LinearX(screenX float64) float64 {
	return screenX*(s.edge.Right-s.edge.Left)/float64(s.width) + s.edge.Left
}

// LinearY converts a screen y-coordinate to linear coordinates.
func (s *Scale) LinearY(screenY float64) float64 {
	return screenY*(s.edge.Bottom-s.edge.Top)/float64(s.height) + s.edge.Top
}

// RealX converts a screen x-coordinate to real coordinates.
func (s *Scale) RealX(screenX float64) float64 {
	return s.x.Real(s.LinearX(screenX))
}

// RealY converts a screen y-coordinate to real coordinates.
func (s *Scale) RealY(screenY float64) float64 {
	return s.y.Real(s.LinearY(screenY))
}

// LinearWidth converts a horizontal distance from screen to linear coordinates.
// The result does not depend on the plot translation and is never negative.
func (s *Scale) LinearWidth(screenWidth float64) float64 {
	return math.Abs(screenWidth * (s.edge.Right - s.edge.Left) / float64(s.width))
}

// LinearHeight converts a vertical distance from screen to linear coordinates.
// The result does not depend on the plot translation and is never negative.
func (s *Scale) LinearHeight(screenHeight float64) float64 {
	return math.Abs(screenHeight * (s.edge.Bottom - s.edge.Top) / float64(s.height))
}

// XLabels returns the labels of the horizontal axis,
// spaced at least the given number of pixels apart.
func (s *Scale) XLabels(spacing int) []Label {
	lo, hi := s.edge.XRange()
	return s.x.Labels(lo, hi, s.LinearWidth(float64(spacing)))
}

// YLabels returns the labels of the vertical axis,
// spaced at least the given number of pixels apart.
func (s *Scale) YLabels(spacing int) []Label {
	lo, hi := s.edge.YRange()
	return s.y.Labels(lo, hi, s.LinearHeight(float64(spacing)))
}

package plotaxis

// SampleColumns evaluates f at the real x-coordinate of the center of every
// pixel column and returns the results in screen y-coordinates,
// indexed by column. SampleColumns returns nil if f is nil.
func (s *Scale) SampleColumns(f func(x float64) float64) []float64 {
	if f == nil {
		return nil
	}
	ys := make([]float64, s.width)
	off := s.PixelXLeft()
	for i := range ys {
		ys[i] = s.ScreenY(f(s.RealX(float64(i+off) + 0.5)))
	}
	return ys
}

package plotaxis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScale_Locate(t *testing.T) {
	s := newTestScale(t, unitConfig())

	tests := []struct {
		absX, absY        int
		pixelX, pixelY    int
		relLeft, relRight int
		relTop, relBottom int
		inPlot            bool
		linearX, linearY  float64
	}{
		{5, 5, 0, 0, 0, -10, 0, -10, true, 0, 10},
		{10, 12, 5, 7, 5, -5, 7, -3, true, 5, 3},
		{3, 20, 0, 10, -2, -12, 15, 5, false, 0, 0},
		{40, -1, 10, 0, 35, 25, -6, -16, false, 10, 10},
	}
	for _, tt := range tests {
		loc := s.Locate(5, 5, tt.absX, tt.absY)
		if loc.AbsoluteX() != tt.absX || loc.AbsoluteY() != tt.absY {
			t.Errorf("Locate(5, 5, %v, %v) absolute = (%v, %v)", tt.absX, tt.absY, loc.AbsoluteX(), loc.AbsoluteY())
		}
		if loc.PixelX() != tt.pixelX || loc.PixelY() != tt.pixelY {
			t.Errorf("Locate(5, 5, %v, %v) pixel = (%v, %v), want (%v, %v)",
				tt.absX, tt.absY, loc.PixelX(), loc.PixelY(), tt.pixelX, tt.pixelY)
		}
		if loc.RelativeX(false) != tt.relLeft || loc.RelativeX(true) != tt.relRight {
			t.Errorf("Locate(5, 5, %v, %v) relative x = (%v, %v), want (%v, %v)",
				tt.absX, tt.absY, loc.RelativeX(false), loc.RelativeX(true), tt.relLeft, tt.relRight)
		}
		if loc.RelativeY(false) != tt.relTop || loc.RelativeY(true) != tt.relBottom {
			t.Errorf("Locate(5, 5, %v, %v) relative y = (%v, %v), want (%v, %v)",
				tt.absX, tt.absY, loc.RelativeY(false), loc.RelativeY(true), tt.relTop, tt.relBottom)
		}
		if got := loc.InPlot(); got != tt.inPlot {
			t.Errorf("Locate(5, 5, %v, %v).InPlot() = %v, want %v", tt.absX, tt.absY, got, tt.inPlot)
		}
		if got := loc.ScreenX(); got != float64(tt.pixelX)+0.5 {
			t.Errorf("Locate(5, 5, %v, %v).ScreenX() = %v, want %v", tt.absX, tt.absY, got, float64(tt.pixelX)+0.5)
		}
		if got := loc.LinearX(); !cmp.Equal(got, tt.linearX, approx) {
			t.Errorf("Locate(5, 5, %v, %v).LinearX() = %v, want %v", tt.absX, tt.absY, got, tt.linearX)
		}
		if got := loc.LinearY(); !cmp.Equal(got, tt.linearY, approx) {
			t.Errorf("Locate(5, 5, %v, %v).LinearY() = %v, want %v", tt.absX, tt.absY, got, tt.linearY)
		}
		if got := loc.RealX(); !cmp.Equal(got, tt.linearX, approx) {
			t.Errorf("Locate(5, 5, %v, %v).RealX() = %v, want %v", tt.absX, tt.absY, got, tt.linearX)
		}
		if got := loc.RealY(); !cmp.Equal(got, tt.linearY, approx) {
			t.Errorf("Locate(5, 5, %v, %v).RealY() = %v, want %v", tt.absX, tt.absY, got, tt.linearY)
		}
	}
}

func TestScale_WheelZoom(t *testing.T) {
	tests := map[string]struct {
		absX, absY int
		scale      float64
		amount     float64
		wantAxis   Axis
		want       Bounds
	}{
		"below plot": {
			5, 14, 2, 1,
			XAxis, Bounds{-5, 15, 10, 0},
		},
		"left of plot": {
			-3, 5, 2, -1,
			YAxis, Bounds{0, 10, 7.5, 2.5},
		},
		"inside plot": {
			5, 5, 2, 1,
			NoAxis, Bounds{0, 10, 10, 0},
		},
		"corner": {
			-4, -4, 2, 1,
			NoAxis, Bounds{0, 10, 10, 0},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScale(t, unitConfig())
			loc := s.Locate(0, 0, tt.absX, tt.absY)
			if got := s.WheelZoom(loc, tt.scale, tt.amount); got != tt.wantAxis {
				t.Errorf("WheelZoom(%v, %v) = %v, want %v", tt.scale, tt.amount, got, tt.wantAxis)
			}
			if diff := cmp.Diff(tt.want, s.ChosenBounds(), approx); diff != "" {
				t.Errorf("WheelZoom(%v, %v) mismatch (-want +got):\n%s", tt.scale, tt.amount, diff)
			}
		})
	}
}

func TestAxis_String(t *testing.T) {
	tests := []struct {
		a    Axis
		want string
	}{
		{NoAxis, "none"},
		{XAxis, "x"},
		{YAxis, "y"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

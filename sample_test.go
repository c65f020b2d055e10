package plotaxis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScale_SampleColumns(t *testing.T) {
	s := newTestScale(t, unitConfig())

	t.Run("identity", func(t *testing.T) {
		want := make([]float64, 11)
		for i := range want {
			want[i] = 10.5 - float64(i)
		}
		got := s.SampleColumns(func(x float64) float64 { return x })
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("SampleColumns(x) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("log", func(t *testing.T) {
		cfg := unitConfig()
		cfg.Y = LogScale{}
		cfg.Bounds.Top, cfg.Bounds.Bottom = 1e10, 1
		s := newTestScale(t, cfg)
		got := s.SampleColumns(func(x float64) float64 { return math.Pow(10, x) })
		if len(got) != 11 {
			t.Fatalf("SampleColumns(10^x) returned %v columns, want 11", len(got))
		}
		for i, y := range got {
			if want := 10.5 - float64(i); math.Abs(y-want) > 1e-9 {
				t.Errorf("SampleColumns(10^x)[%v] = %v, want %v", i, y, want)
			}
		}
	})

	t.Run("nil", func(t *testing.T) {
		if got := s.SampleColumns(nil); got != nil {
			t.Errorf("SampleColumns(nil) = %v, want nil", got)
		}
	})
}

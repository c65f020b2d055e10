package plotaxis

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/govalues/plotaxis/decimal"
)

func TestParseAxisScale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want AxisScale
		}{
			{"", LinearScale{}},
			{"linear", LinearScale{}},
			{"log", LogScale{}},
		}
		for _, tt := range tests {
			got, err := ParseAxisScale(tt.name)
			if err != nil {
				t.Errorf("ParseAxisScale(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseAxisScale(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := ParseAxisScale("sqrt")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseAxisScale(\"sqrt\") did not fail with %v: %v", ErrInvalidConfig, err)
		}
	})
}

func TestLinearScale_Labels(t *testing.T) {
	tests := map[string]struct {
		min, max, interval float64
		want               []Label
	}{
		"unit range": {
			0, 1, 0.25,
			[]Label{{0, "0"}, {0.5, "0.5"}, {1, "1"}},
		},
		"symmetric": {
			-1, 1, 0.7,
			[]Label{{-1, "-1"}, {0, "0"}, {1, "1"}},
		},
		"tenths": {
			0.05, 0.35, 0.08,
			[]Label{{0.1, "0.1"}, {0.2, "0.2"}, {0.3, "0.3"}},
		},
		"negative": {
			-0.35, -0.05, 0.08,
			[]Label{{-0.3, "-0.3"}, {-0.2, "-0.2"}, {-0.1, "-0.1"}},
		},
		"exact ends": {
			0.1, 0.3, 0.08,
			[]Label{{0.2, "0.2"}},
		},
		"large": {
			0, 3e6, 1e6,
			[]Label{{0, "0"}, {1e6, "1e6"}, {2e6, "2e6"}, {3e6, "3e6"}},
		},
		"no multiple": {
			0.55, 0.95, 1,
			nil,
		},
		"six digits": {
			123453, 123458, 1,
			[]Label{
				{123453, "123453"}, {123454, "123454"}, {123455, "123455"},
				{123456, "123456"}, {123457, "123457"}, {123458, "123458"},
			},
		},
		"deep zoom": {
			1, 1.0000011, 4e-7,
			[]Label{{1, "1"}, {1.0000005, "1.0000005"}, {1.000001, "1.000001"}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := LinearScale{}.Labels(tt.min, tt.max, tt.interval)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Labels(%v, %v, %v) mismatch (-want +got):\n%s", tt.min, tt.max, tt.interval, diff)
			}
			checkLabelText(t, got)
		})
	}
}

// checkLabelText verifies that every label text parses back to its value
// and that neighbouring labels never share a text.
func checkLabelText(t *testing.T, labels []Label) {
	t.Helper()
	for i, l := range labels {
		d, err := decimal.Parse(l.Text)
		if err != nil {
			t.Errorf("decimal.Parse(%q) failed: %v", l.Text, err)
			continue
		}
		if got := d.Float64(); got != l.Value {
			t.Errorf("decimal.Parse(%q).Float64() = %v, want %v", l.Text, got, l.Value)
		}
		if i > 0 && labels[i-1].Text == l.Text {
			t.Errorf("labels[%v] and labels[%v] share text %q", i-1, i, l.Text)
		}
	}
}

func TestLogScale_Labels(t *testing.T) {
	tests := map[string]struct {
		min, max, interval float64
		want               []Label
	}{
		"decade": {
			0, 1, 0.5,
			[]Label{{1, "1"}, {10, "10"}},
		},
		"decade with middle": {
			0, 1, 0.4,
			[]Label{{1, "1"}, {3, "3"}, {10, "10"}},
		},
		"spaced decades": {
			0, 6, 2,
			[]Label{{1, "1"}, {1000, "1000"}, {1e6, "1e6"}},
		},
		"fractions": {
			-1.2, 0.2, 0.5,
			[]Label{{0.1, "0.1"}, {1, "1"}},
		},
		"partial decade": {
			0, 0.6, 0.25,
			[]Label{{1, "1"}, {3, "3"}},
		},
		"pruned middle": {
			0.5, 1, 0.25,
			[]Label{{10, "10"}},
		},
		"no decade": {
			-2.5, -0.5, 3,
			nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := LogScale{}.Labels(tt.min, tt.max, tt.interval)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Labels(%v, %v, %v) mismatch (-want +got):\n%s", tt.min, tt.max, tt.interval, diff)
			}
		})
	}
}

func TestAxisScale_Labels(t *testing.T) {
	scales := []AxisScale{LinearScale{}, LogScale{}}

	t.Run("degenerate", func(t *testing.T) {
		tests := map[string][3]float64{
			"nan min":           {math.NaN(), 1, 0.1},
			"inf max":           {0, math.Inf(1), 0.1},
			"reversed":          {1, 0, 0.1},
			"zero interval":     {0, 1, 0},
			"negative interval": {0, 1, -0.1},
			"nan interval":      {0, 1, math.NaN()},
			"inf interval":      {0, 1, math.Inf(1)},
		}
		for _, s := range scales {
			for name, tt := range tests {
				if got := s.Labels(tt[0], tt[1], tt[2]); got != nil {
					t.Errorf("%v %v: Labels(%v, %v, %v) = %v, want nil", s, name, tt[0], tt[1], tt[2], got)
				}
			}
		}
	})

	t.Run("spacing", func(t *testing.T) {
		tests := []struct {
			s      AxisScale
			ranges [][3]float64
		}{
			{
				LinearScale{},
				[][3]float64{
					{0, 1, 0.01},
					{-7.3, 12.9, 0.3},
					{-1e-9, 1e-9, 1e-11},
					{1e15, 1e15 + 1e4, 100},
					{-3, 4, 0.05},
				},
			},
			{
				LogScale{},
				[][3]float64{
					{0, 1, 0.01},
					{-7.3, 12.9, 0.3},
					{-3, 4, 0.05},
					{-300, 300, 20},
				},
			},
		}
		for _, tt := range tests {
			s := tt.s
			for _, r := range tt.ranges {
				labels := s.Labels(r[0], r[1], r[2])
				if len(labels) == 0 {
					t.Errorf("%v: Labels(%v, %v, %v) is empty", s, r[0], r[1], r[2])
					continue
				}
				for i, l := range labels {
					if lin := s.Linear(l.Value); lin < r[0]-1e-9 || lin > r[1]+1e-9 {
						t.Errorf("%v: Labels(%v, %v, %v)[%v] = %v, outside of range", s, r[0], r[1], r[2], i, l)
					}
					if i == 0 {
						continue
					}
					dist := s.Linear(l.Value) - s.Linear(labels[i-1].Value)
					if dist < r[2]*(1-1e-9) {
						t.Errorf("%v: Labels(%v, %v, %v) places %v and %v %v apart", s, r[0], r[1], r[2], labels[i-1], l, dist)
					}
				}
			}
		}
	})
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{7, 3, 2},
		{6, 3, 2},
		{-7, 3, -3},
		{-6, 3, -2},
		{0, 6, 0},
		{-1, 1, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.x, tt.y); got != tt.want {
			t.Errorf("floorDiv(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/govalues/plotaxis"
	"github.com/govalues/plotaxis/decimal"
)

// axisConfig describes one axis of a view.
// From and To are the real coordinates of the centers of the boundary pixels,
// left to right or top to bottom.
// Min and Max optionally limit the visible range.
type axisConfig struct {
	Scale string           `yaml:"scale"`
	From  decimal.Decimal  `yaml:"from"`
	To    decimal.Decimal  `yaml:"to"`
	Min   *decimal.Decimal `yaml:"min"`
	Max   *decimal.Decimal `yaml:"max"`
}

// viewConfig is the YAML representation of a plot view.
type viewConfig struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	X      axisConfig `yaml:"x"`
	Y      axisConfig `yaml:"y"`
}

func defaultViewConfig() viewConfig {
	return viewConfig{
		Width:  800,
		Height: 600,
		X:      axisConfig{Scale: "linear", From: decimal.New(0, 0), To: decimal.New(10, 0)},
		Y:      axisConfig{Scale: "linear", From: decimal.New(10, 0), To: decimal.New(0, 0)},
	}
}

// loadViewConfig decodes a view from r.
// Keys missing from r keep their default values.
func loadViewConfig(r io.Reader) (viewConfig, error) {
	cfg := defaultViewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return viewConfig{}, fmt.Errorf("decoding view: %w", err)
	}
	return cfg, nil
}

func readViewConfig(path string) (viewConfig, error) {
	if path == "" {
		return defaultViewConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return viewConfig{}, err
	}
	defer f.Close()
	cfg, err := loadViewConfig(f)
	if err != nil {
		return viewConfig{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

// scaleConfig converts the view to a scale configuration.
func (c viewConfig) scaleConfig() (plotaxis.Config, error) {
	x, err := plotaxis.ParseAxisScale(c.X.Scale)
	if err != nil {
		return plotaxis.Config{}, fmt.Errorf("x-axis: %w", err)
	}
	y, err := plotaxis.ParseAxisScale(c.Y.Scale)
	if err != nil {
		return plotaxis.Config{}, fmt.Errorf("y-axis: %w", err)
	}
	return plotaxis.Config{
		Width:  c.Width,
		Height: c.Height,
		Bounds: plotaxis.Bounds{
			Left:   c.X.From.Float64(),
			Right:  c.X.To.Float64(),
			Top:    c.Y.From.Float64(),
			Bottom: c.Y.To.Float64(),
		},
		X: x,
		Y: y,
		Constraints: plotaxis.Constraints{
			XMin: limit(c.X.Min),
			XMax: limit(c.X.Max),
			YMin: limit(c.Y.Min),
			YMax: limit(c.Y.Max),
		},
	}, nil
}

func limit(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	return plotaxis.Limit(d.Float64())
}

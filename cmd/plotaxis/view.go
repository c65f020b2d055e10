package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/govalues/plotaxis"
)

// view builds the scale described by the configuration file
// and applies the view operations given by flags.
func (o *options) view() (*plotaxis.Scale, error) {
	vc, err := readViewConfig(o.configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := vc.scaleConfig()
	if err != nil {
		return nil, err
	}
	s, err := plotaxis.New(cfg)
	if err != nil {
		return nil, err
	}
	o.logger.WithFields(log.Fields{
		"width":  s.Width(),
		"height": s.Height(),
		"bounds": s.ChosenBounds(),
	}).Debug("Created view")

	if err := o.apply(s); err != nil {
		return nil, err
	}
	return s, nil
}

// apply resizes, zooms, pans and scrolls the view, in that order.
func (o *options) apply(s *plotaxis.Scale) error {
	if o.size != nil {
		if len(o.size) != 2 {
			return fmt.Errorf("--size: want width,height, got %v values", len(o.size))
		}
		if err := s.SetSize(o.size[0], o.size[1]); err != nil {
			return err
		}
		o.logger.WithFields(log.Fields{"width": s.Width(), "height": s.Height()}).Debug("Resized view")
	}
	if o.zoomX != nil {
		anchor, scale, err := pair("zoom-x", o.zoomX)
		if err != nil {
			return err
		}
		s.ZoomX(s.XScale().Linear(anchor), scale)
		o.logger.WithField("bounds", s.ChosenBounds()).Debug("Zoomed x-axis")
	}
	if o.zoomY != nil {
		anchor, scale, err := pair("zoom-y", o.zoomY)
		if err != nil {
			return err
		}
		s.ZoomY(s.YScale().Linear(anchor), scale)
		o.logger.WithField("bounds", s.ChosenBounds()).Debug("Zoomed y-axis")
	}
	if o.pan != nil {
		dx, dy, err := pair("pan", o.pan)
		if err != nil {
			return err
		}
		s.Pan(dx, dy)
		o.logger.WithField("bounds", s.ChosenBounds()).Debug("Panned view")
	}
	if o.wheel != nil {
		if len(o.wheel) != 3 {
			return fmt.Errorf("--wheel: want x,y,amount, got %v values", len(o.wheel))
		}
		loc := s.Locate(0, 0, int(o.wheel[0]), int(o.wheel[1]))
		axis := s.WheelZoom(loc, plotaxis.DefaultWheelScale, o.wheel[2])
		o.logger.WithFields(log.Fields{
			"axis":   axis,
			"bounds": s.ChosenBounds(),
		}).Debug("Scrolled mouse wheel")
	}
	return nil
}

func pair(flag string, v []float64) (float64, float64, error) {
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("--%v: want 2 values, got %v", flag, len(v))
	}
	return v[0], v[1], nil
}

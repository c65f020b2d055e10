package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/govalues/plotaxis/decimal"
)

func newConvertCmd(o *options) *cobra.Command {
	var fromReal bool
	cmd := &cobra.Command{
		Use:   "convert X Y",
		Short: "Convert a point between screen, pixel, linear and real coordinates",
		Long: `convert prints a point in screen, pixel, linear and real coordinates.
The point is given in screen coordinates, or in real coordinates with --real.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := decimal.Parse(args[1])
			if err != nil {
				return err
			}
			s, err := o.view()
			if err != nil {
				return err
			}

			screenX, screenY := x.Float64(), y.Float64()
			if fromReal {
				screenX, screenY = s.ScreenX(x.Float64()), s.ScreenY(y.Float64())
			}
			linearX, linearY := s.LinearX(screenX), s.LinearY(screenY)
			realX, realY := s.RealX(screenX), s.RealY(screenY)

			fmt.Fprintf(o.out, "screen\t%g\t%g\n", screenX, screenY)
			fmt.Fprintf(o.out, "pixel\t%d\t%d\n", int(math.Floor(screenX)), int(math.Floor(screenY)))
			fmt.Fprintf(o.out, "linear\t%g\t%g\n", linearX, linearY)
			fmt.Fprintf(o.out, "real\t%g\t%g\n", realX, realY)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromReal, "real", false, "Interpret X and Y as real coordinates")
	return cmd
}

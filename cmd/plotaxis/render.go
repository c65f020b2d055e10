package main

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/govalues/plotaxis/gonumplot"
)

func newRenderCmd(o *options) *cobra.Command {
	var (
		output string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the axes of the view to an image file",
		Long: `render draws the axes and tick labels of the view with gonum/plot.
The image format is chosen by the file extension, one pixel of the view being one point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("missing --output file")
			}
			s, err := o.view()
			if err != nil {
				return err
			}
			w, h := vg.Points(float64(s.Width())), vg.Points(float64(s.Height()))

			p := plot.New()
			p.Title.Text = title
			gonumplot.Apply(p, s, w, h)
			if err := p.Save(w, h, output); err != nil {
				return err
			}
			o.logger.WithFields(log.Fields{"file": output}).Info("Rendered view")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Image file, one of .eps, .jpg, .pdf, .png, .svg, .tex or .tif")
	cmd.Flags().StringVar(&title, "title", "", "Plot title")
	return cmd
}

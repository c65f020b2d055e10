package main

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/govalues/plotaxis"
	"github.com/govalues/plotaxis/gonumplot"
)

// axisLabels is the JSON output of the labels command.
type axisLabels struct {
	X []plotaxis.Label `json:"x"`
	Y []plotaxis.Label `json:"y"`
}

func newLabelsCmd(o *options) *cobra.Command {
	var (
		spacingX, spacingY int
		si, asJSON         bool
	)
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print the tick labels of both axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.view()
			if err != nil {
				return err
			}
			labels := axisLabels{
				X: s.XLabels(spacingX),
				Y: s.YLabels(spacingY),
			}
			if si {
				labels.X = formatSI(labels.X)
				labels.Y = formatSI(labels.Y)
			}
			o.logger.WithFields(log.Fields{
				"x": len(labels.X),
				"y": len(labels.Y),
			}).Info("Computed labels")

			if asJSON {
				enc := json.NewEncoder(o.out)
				enc.SetIndent("", "  ")
				return enc.Encode(labels)
			}
			for _, l := range labels.X {
				fmt.Fprintf(o.out, "x\t%v\t%v\n", l.Text, l.Value)
			}
			for _, l := range labels.Y {
				fmt.Fprintf(o.out, "y\t%v\t%v\n", l.Text, l.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&spacingX, "spacing-x", 50, "Minimum distance between x-axis labels in pixels")
	cmd.Flags().IntVar(&spacingY, "spacing-y", 50, "Minimum distance between y-axis labels in pixels")
	cmd.Flags().BoolVar(&si, "si", false, "Format labels with metric prefixes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print labels as JSON")
	return cmd
}

func formatSI(labels []plotaxis.Label) []plotaxis.Label {
	for i := range labels {
		labels[i].Text = gonumplot.FormatSI(labels[i].Value)
	}
	return labels
}

// Command plotaxis prints the tick labels and coordinate conversions
// of a plot view described by a YAML file.
package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	if err := newRootCmd(os.Stdout, logger).Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// options holds the flags shared by all subcommands.
type options struct {
	out    io.Writer
	logger *log.Logger

	configFile string
	logLevel   string

	size  []int
	zoomX []float64
	zoomY []float64
	pan   []float64
	wheel []float64
}

func newRootCmd(out io.Writer, logger *log.Logger) *cobra.Command {
	o := &options{out: out, logger: logger}

	rootCmd := &cobra.Command{
		Use:   "plotaxis",
		Short: "Tick labels and coordinate conversions of a plot view",
		Long: `plotaxis loads a plot view from a YAML file, applies resize, zoom and pan
operations to it, and prints the resulting axis labels or coordinate conversions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			o.logger.SetLevel(lvl)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "View configuration file (default is an 800x600 view of [0, 10]x[0, 10])")
	flags.StringVar(&o.logLevel, "log-level", "warning", "Log verbosity level")
	flags.IntSliceVar(&o.size, "size", nil, "Resize the view to width,height pixels")
	flags.Float64SliceVar(&o.zoomX, "zoom-x", nil, "Zoom the x-axis by anchor,scale with the anchor in real coordinates")
	flags.Float64SliceVar(&o.zoomY, "zoom-y", nil, "Zoom the y-axis by anchor,scale with the anchor in real coordinates")
	flags.Float64SliceVar(&o.pan, "pan", nil, "Drag the view by dx,dy pixels")
	flags.Float64SliceVar(&o.wheel, "wheel", nil, "Scroll the mouse wheel by x,y,amount at pixel x,y")

	rootCmd.AddCommand(newLabelsCmd(o))
	rootCmd.AddCommand(newConvertCmd(o))
	rootCmd.AddCommand(newRenderCmd(o))
	return rootCmd
}

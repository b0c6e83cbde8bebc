// resultplotter renders classifier evaluation charts from experiment result files.
//
// Without a subcommand it renders the whole experiment batch (k sweeps, training set
// size, distance metrics, feature exclusion and the per-country breakdowns) from
// --data-dir, writing each chart next to its results file. The first failure stops
// the batch and the process exits non-zero.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iafilius/ResultPlotter/src/logging"
	"github.com/iafilius/ResultPlotter/src/plotter"
	"github.com/iafilius/ResultPlotter/src/scenarios"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dataDir  string
	config   string
	format   string
	logLevel string
	width    int
	height   int
}

func (o *rootOptions) renderConfig() scenarios.Config {
	return scenarios.Config{Options: plotter.Options{Format: o.format, Width: o.width, Height: o.height}}
}

// scenarioList returns the scenarios from --config, or the built-in batch.
func (o *rootOptions) scenarioList() ([]scenarios.Scenario, error) {
	if o.config != "" {
		return scenarios.LoadFile(o.config, o.dataDir)
	}
	return scenarios.Defaults(o.dataDir), nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if n, err := strconv.Atoi(envOr(key, "")); err == nil {
		return n
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "resultplotter",
		Short:         "Render classifier metric charts from experiment results",
		Long:          "resultplotter reads experiment result files (CSV or XLSX) and renders accuracy, sensitivity, precision and F1 line charts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLogLevel(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.scenarioList()
			if err != nil {
				return err
			}
			written, err := scenarios.Run(cmd.Context(), list, opts.renderConfig())
			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataDir, "data-dir", envOr("RESULTPLOTTER_DATA_DIR", "data"), "Directory holding results files; relative scenario paths resolve against it")
	pf.StringVar(&opts.config, "config", envOr("RESULTPLOTTER_CONFIG", ""), "Optional JSONC scenario list replacing the built-in batch")
	pf.StringVar(&opts.format, "format", envOr("RESULTPLOTTER_FORMAT", "png"), "Image format for outputs without extension (png|svg)")
	pf.StringVar(&opts.logLevel, "log-level", envOr("RESULTPLOTTER_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	pf.IntVar(&opts.width, "width", envIntOr("RESULTPLOTTER_WIDTH", 800), "Chart width in pixels")
	pf.IntVar(&opts.height, "height", envIntOr("RESULTPLOTTER_HEIGHT", 480), "Chart height in pixels")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newBreakdownCmd(opts))
	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newListCmd(opts))
	return root
}

func main() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

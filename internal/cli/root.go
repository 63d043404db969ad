// Package cli provides the command-line interface for emd.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/emdist/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

type globalFlags struct {
	verbose bool
	logFile string
}

// newRootCmd builds a fresh command tree so tests do not share flag state.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "emd",
		Short: "Earth Mover's Distance between weighted distributions",
		Long: `emd computes the Earth Mover's Distance between two weighted point sets
or histograms by solving the underlying transportation linear program.

Problems are read from a YAML file; see "emd solve --help".`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "also write JSON logs to this file")

	root.AddCommand(newSolveCmd(g))

	return root
}

// logger builds the command logger writing text to errOut and, with
// --log-file, JSON to the file.
func (g *globalFlags) logger(errOut io.Writer) (*slog.Logger, func() error) {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return logging.SetupWithStderr(errOut, g.logFile, level)
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

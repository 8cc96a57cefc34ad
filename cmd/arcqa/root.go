package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arcqa/internal/config"
	"arcqa/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "arcqa",
		Short: "Monte-Carlo arc characterization extraction",
		Long: `arcqa walks a standard-cell template library and emits one
characterization record per timing arc worth simulating.

Cells and arcs are filtered by family rules, index tables are resolved from
templates and overrides, and a deck rule table names the simulation deck for
each arc.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the arcqa config file")

	root.AddCommand(newExtractCmd(a), newCheckCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()

	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		a.cfg = cfg
	}

	logger, err := logging.New(logging.Options{
		Level:    a.cfg.Logging.Level,
		Encoding: a.cfg.Logging.Encoding,
		Verbose:  a.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger = logger

	return nil
}

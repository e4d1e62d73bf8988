package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivtree/internal/config"
)

// app carries flag values and the resolved config/logger shared by all
// subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	format     string
	maxRows    int

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ivtree",
		Short: "Interval tree queries and sweep-line intersection reports",
		Long: `ivtree loads shapes or labelled intervals from a YAML file and reports
which of them intersect.

Commands:
  rects     Pairs of intersecting axis-aligned rectangles
  segments  Crossings between horizontal and vertical segments
  query     Stored intervals overlapping [lo, hi]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	registerPersistentFlags(rootCmd.PersistentFlags(), a)

	rootCmd.AddCommand(rectsCmd(a))
	rootCmd.AddCommand(segmentsCmd(a))
	rootCmd.AddCommand(queryCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup loads the config, applies explicitly set flags on top of it and
// builds the logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed(flagFormat) {
		cfg.Output.Format = a.format
	}
	if flags.Changed(flagMaxRows) {
		cfg.Output.MaxRows = a.maxRows
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	return nil
}

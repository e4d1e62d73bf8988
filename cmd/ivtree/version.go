package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ivtree %s (commit: %s)\n", version, commit)
		},
	}
}

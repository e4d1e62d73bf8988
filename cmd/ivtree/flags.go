package main

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagFormat   = "format"
	flagMaxRows  = "max-rows"
	flagLo       = "lo"
	flagHi       = "hi"
	flagFirst    = "first"
)

// registerPersistentFlags binds the flags shared by every subcommand. Their
// defaults are empty because unset flags defer to the loaded config.
func registerPersistentFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.configPath, flagConfig, "", "config file (default is ./.ivtree.yaml or $HOME/.ivtree.yaml)")
	fs.StringVar(&a.logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
	fs.StringVarP(&a.format, flagFormat, "o", "", "output format: table, yaml")
	fs.IntVar(&a.maxRows, flagMaxRows, 0, "limit listed rows (0 = all)")
}

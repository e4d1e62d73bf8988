// Package config loads ivtree CLI settings from defaults, an optional YAML
// file and IVTREE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/ivtree/internal/report"
)

// Default values.
const (
	DefaultLogLevel     = "info"
	DefaultOutputFormat = string(report.FormatTable)
	DefaultMaxRows      = 0
)

// Sentinel errors for config validation.
var (
	// ErrUnknownLogLevel indicates a log level outside debug|info|warn|error.
	ErrUnknownLogLevel = errors.New("config: unknown log level")

	// ErrNegativeMaxRows indicates output.max_rows < 0.
	ErrNegativeMaxRows = errors.New("config: output.max_rows must be >= 0")
)

// Config is the top-level configuration struct for ivtree.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	MaxRows int    `mapstructure:"max_rows"`
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Log.Level)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Output.MaxRows < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMaxRows, c.Output.MaxRows)
	}

	return nil
}

// SlogLevel returns the slog level for Log.Level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Log.Level)]; ok {
		return lvl
	}

	return slog.LevelInfo
}

// Format returns the parsed output format, falling back to table.
func (c *Config) Format() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatTable
	}

	return f
}

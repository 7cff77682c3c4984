// Package logging builds the zap loggers used by the command line front end
// and handed to msm.Model through msm.WithLogger.
//
// Library packages never construct loggers themselves; they accept a
// *zap.Logger and default to zap.NewNop().
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config carries logger construction parameters.
type Config struct {
	// Level is one of "debug", "info", "warn", "error" (case-insensitive).
	// Empty means "info".
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "console" (default) or "json".
	Format string `mapstructure:"format" yaml:"format"`

	// OutputPaths defaults to ["stderr"].
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths"`
}

// New constructs a zap logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.DisableStacktrace = true
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q (want console or json)", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("logging: unknown level %q: %w", s, err)
	}

	return l, nil
}

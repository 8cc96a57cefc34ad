// Package logging builds the zap logger used by arcqa.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
	// Encoding is "json" or "console"; empty means json.
	Encoding string
	// Verbose forces debug level.
	Verbose bool
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// New builds a production logger adjusted by opts.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}

		config.Level = zap.NewAtomicLevelAt(level)
	}

	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	if opts.Encoding == "console" {
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production JSON logger. When path is set, logs go to that
// file instead of stderr, since the dashboard owns the terminal.
func New(path string, level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "json"

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Level picks debug when verbose is set, otherwise the configured level.
func Level(configured zapcore.Level, verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return configured
}

// Package logging builds the process logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the logger for the selected mode. Interactive mode gets a
// no-op logger: the TUI owns the terminal and stray log lines corrupt
// the display. Callers should defer Sync.
func New(verbose, interactive bool) (*zap.Logger, error) {
	if interactive {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

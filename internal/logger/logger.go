// Package logger builds the leveled loggers used by the millisecond CLI.
//
// Log lines go to stderr so that stdout only ever carries the rendered
// duration and can be piped.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Resolved unit: ms")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sgaunet/bullets"
)

// Levels accepted by [NewLogger].
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a bullets level. Unknown names map to info.
func ParseLevel(logLevel string) bullets.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return bullets.DebugLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a logger writing to stderr at the specified level.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stderr, logLevel)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(ParseLevel(logLevel))
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}

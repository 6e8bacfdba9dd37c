// Package logger provides a simple leveled logger for the application,
// backed by zerolog. It supports three levels: off (no output), normal
// (info/warn/error), and verbose (includes debug). The logger is safe
// for concurrent use.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelOff:
		return zerolog.Disabled
	case LevelVerbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	zl := zerolog.New(cw).Level(level.zerolog()).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

// Package kvlog configures the process-wide zerolog.Logger used by
// cmd/kvcheck and forwarded into runner.Runner.Logger.
package kvlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted by the --log-level flag.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Config selects the verbosity and encoding of the process logger.
type Config struct {
	Level  Level
	JSON   bool
	Output io.Writer
}

// New builds a zerolog.Logger per cfg. A console (human-readable) writer
// is used unless JSON is requested.
func New(cfg Config) zerolog.Logger {
	var level zerolog.Level
	switch cfg.Level {
	case DebugLevel:
		level = zerolog.DebugLevel
	case WarnLevel:
		level = zerolog.WarnLevel
	case ErrorLevel:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.JSON {
		return zerolog.New(output).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

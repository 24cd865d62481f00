// Package logging builds the zerolog logger used by every component.
//
// The TUI owns the terminal, so log output always goes to a rotated file and
// never to stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const fileName = "streamflix.log"

// Logger wraps zerolog together with its file rotator.
type Logger struct {
	zerolog.Logger
	rotator *lumberjack.Logger
}

// Options mirrors config.Logging plus rotation limits.
type Options struct {
	Level      string
	Format     string // "console" or "json"
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New opens (or creates) Dir/streamflix.log. When Dir cannot be created the
// logger discards output instead of failing start-up.
func New(opts Options) *Logger {
	var output io.Writer = io.Discard
	var rotator *lumberjack.Logger

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err == nil {
			maxSize := opts.MaxSizeMB
			if maxSize <= 0 {
				maxSize = 10
			}
			maxBackups := opts.MaxBackups
			if maxBackups <= 0 {
				maxBackups = 3
			}
			maxAge := opts.MaxAgeDays
			if maxAge <= 0 {
				maxAge = 14
			}

			rotator = &lumberjack.Logger{
				Filename:   filepath.Join(opts.Dir, fileName),
				MaxSize:    maxSize,
				MaxBackups: maxBackups,
				MaxAge:     maxAge,
				Compress:   true,
				LocalTime:  true,
			}
			output = rotator
		}
	}

	if opts.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	logger := zerolog.New(output).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, rotator: rotator}
}

// Path returns the log file path, or "" when logging is discarded.
func (l *Logger) Path() string {
	if l.rotator == nil {
		return ""
	}
	return l.rotator.Filename
}

func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// ParseLevel converts a level name to zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

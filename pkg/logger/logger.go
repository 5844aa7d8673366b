// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type settings struct {
	level   zerolog.Level
	writers []io.Writer
	file    *os.File
}

// Option configures Setup.
type Option func(*settings) error

// WithConsole writes human-readable lines to w (stdout when nil).
func WithConsole(w io.Writer) Option {
	return func(s *settings) error {
		if w == nil {
			w = os.Stdout
		}
		s.writers = append(s.writers, zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
		return nil
	}
}

// WithLevel sets the minimum level.
func WithLevel(level zerolog.Level) Option {
	return func(s *settings) error {
		s.level = level
		return nil
	}
}

// WithFile appends uncolored lines to path. An empty path is ignored.
func WithFile(path string) Option {
	return func(s *settings) error {
		if path == "" {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		s.file = f
		s.writers = append(s.writers, zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true})
		return nil
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Setup installs the global logger. The returned closer releases the log
// file, if any.
func Setup(opts ...Option) (io.Closer, error) {
	s := &settings{level: zerolog.InfoLevel}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}
	if len(s.writers) == 0 {
		s.writers = append(s.writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(s.writers...)).
		Level(s.level).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(s.level)

	return closer{s.file}, nil
}

type closer struct{ f *os.File }

func (c closer) Close() error {
	if c.f == nil {
		return nil
	}
	return c.f.Close()
}

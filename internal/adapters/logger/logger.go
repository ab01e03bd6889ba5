// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing human-readable lines to stderr at info level.
func New() *Logger {
	l := &Logger{
		level:  new(slog.LevelVar),
		output: os.Stderr,
	}
	l.level.Set(slog.LevelInfo)
	l.logger = slog.New(l.handler(os.Stderr))
	return l
}

// NewWithWriter creates a Logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	l := New()
	l.level.Set(level)
	l.SetOutput(w)
	return l
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler(w))
}

// SetJSON switches between JSON and text output, keeping the current destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler(l.output))
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error together with the metadata attached along its zerr chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	args := []any{"error", err.Error()}
	seen := make(map[string]bool)
	walkChain(err, func(e error) {
		zErr, ok := e.(*zerr.Error)
		if !ok {
			return
		}
		meta := zErr.Metadata()
		for _, key := range slices.Sorted(maps.Keys(meta)) {
			if seen[key] {
				continue
			}
			seen[key] = true
			args = append(args, key, meta[key])
		}
	})
	l.logger.Error("operation failed", args...)
}

// walkChain visits err and every error it wraps, following joined errors too.
func walkChain(err error, visit func(error)) {
	for err != nil {
		visit(err)
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walkChain(inner, visit)
			}
			return
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		default:
			return
		}
	}
}

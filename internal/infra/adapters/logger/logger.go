// logger is an slog.Logger adapter to store an slog.Logger (using
// logger.WithLogger) into a context.Context and later retrieve it
// (using logger.FromContext). The default logger is
// github.com/charmbracelet/log writing to stderr, leaving stdout to
// rendered feeds and diffs.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

var loggerKey = &contextKey{}

// WithLogger returns a context with l as slog.Logger based off the
// ctx context. Retrieve the logger using FromContext.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithDefaultLogger returns a context with DefaultLogger set as the
// slog.Logger based off the ctx context.
func WithDefaultLogger(ctx context.Context) context.Context {
	return WithLogger(ctx, DefaultLogger())
}

// FromContext retrieves an slog.Logger saved by WithLogger from
// ctx. If there is not such logger in the context,
// logger.DefaultLogger() is returned ensuring this function will
// always return a valid slog.Logger.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return DefaultLogger()
	}
	return l
}

// DefaultLogger returns an info level logger.
func DefaultLogger() *slog.Logger {
	return New(log.InfoLevel)
}

// New returns a charmbracelet/log backed slog.Logger at level.
func New(level log.Level) *slog.Logger {
	return slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}))
}

// ParseLevel accepts debug, info, warn, error and fatal (any case).
func ParseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

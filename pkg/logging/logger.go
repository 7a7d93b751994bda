// Package logging provides structured logging for the go-hovercraft
// application. It wraps Go's standard slog package so every component logs
// the same way: JSON output, env-configured level, context-aware helpers.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with application-specific helpers
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with JSON output and a configurable level.
// The level is controlled via the HOVERCRAFT_LOG_LEVEL environment variable.
// Valid levels: DEBUG, INFO, WARN, ERROR. Defaults to INFO.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: getLogLevelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// NewNopLogger creates a Logger that discards everything. Used by tests and
// by components that receive no logger.
func NewNopLogger() *Logger {
	handler := slog.NewJSONHandler(nopWriter{}, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	})
	return &Logger{slog.New(handler)}
}

// Debug logs a debug message with context
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs an informational message with context
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Log(ctx, slog.LevelError, msg, args...)
}

// getLogLevelFromEnv reads the log level from the environment
func getLogLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("HOVERCRAFT_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

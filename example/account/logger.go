package main

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger provides structured and formatted logging for the example service.
// The interface is implementation-agnostic so a different backend (zap,
// logrus, slog) can stand in without touching call sites.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// slogLogger backs Logger with the standard library's structured logger.
type slogLogger struct {
	base *slog.Logger
}

// NewLogger builds a Logger writing JSON lines to stderr.
func NewLogger() Logger {
	return &slogLogger{base: slog.New(slog.NewJSONHandler(os.Stderr, nil))}
}

func (l *slogLogger) Info(msg string, keysAndValues ...any) { l.base.Info(msg, keysAndValues...) }
func (l *slogLogger) Error(msg string, keysAndValues ...any) { l.base.Error(msg, keysAndValues...) }
func (l *slogLogger) Infof(format string, args ...any)       { l.base.Info(fmt.Sprintf(format, args...)) }
func (l *slogLogger) Errorf(format string, args ...any)      { l.base.Error(fmt.Sprintf(format, args...)) }

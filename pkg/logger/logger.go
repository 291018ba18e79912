package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"pdf-triage/internal/domain"
)

// AppLogger implements the domain.Logger interface on top of zerolog.
type AppLogger struct {
	zl zerolog.Logger
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(levelStr string) domain.Logger {
	return NewWithWriter(levelStr, os.Stderr)
}

// NewWithWriter creates a logger writing to the given writer. Used by
// tests to capture output.
func NewWithWriter(levelStr string, w io.Writer) domain.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &AppLogger{zl: zl}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.emit(l.zl.Info(), msg, fields)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.emit(l.zl.Error().Err(err), msg, fields)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.emit(l.zl.Debug(), msg, fields)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.emit(l.zl.Warn(), msg, fields)
}

// emit attaches variadic key-value pairs to the event. A trailing key
// without a value is dropped.
func (l *AppLogger) emit(e *zerolog.Event, msg string, fields []interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		e = e.Interface(fmt.Sprint(fields[i]), fields[i+1])
	}
	e.Msg(msg)
}

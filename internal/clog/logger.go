package clog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes leveled "[LEVEL] message" lines to one writer.
type Logger struct {
	mu    sync.Mutex
	level Level     // minimum level to log
	out   io.Writer // nil disables output
}

// NewLogger creates a logger writing warnings and errors to stderr.
func NewLogger() *Logger {
	return &Logger{
		level: LevelWarn,
		out:   os.Stderr,
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput sets the writer for log output. Pass nil to disable logging.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.out == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.out, "[%s] %s\n", level, msg)
}

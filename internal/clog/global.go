package clog

import "io"

// std is the global logger instance used by package-level functions.
var std = NewLogger()

// Configure sets the global level: Debug when debug is true, Warn otherwise.
func Configure(debug bool) {
	level := LevelWarn
	if debug {
		level = LevelDebug
	}
	std.SetLevel(level)
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// SetOutput sets the writer for the global logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	std.Error(format, args...)
}

// Reset restores the global logger to its defaults.
// Primarily useful for testing.
func Reset() {
	std = NewLogger()
}

// Discard silences the global logger.
func Discard() {
	std.SetOutput(nil)
}

// TestLogger returns a debug-level logger that writes to w.
func TestLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetOutput(w)
	l.SetLevel(LevelDebug)
	return l
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Callers should restore the original when done.
func ReplaceGlobal(l *Logger) *Logger {
	old := std
	std = l
	return old
}

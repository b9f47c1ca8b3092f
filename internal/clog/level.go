// Package clog provides diagnostic logging for seedgen.
// It never writes to stdout, which carries only the generated value
// (see internal/term).
//
// Levels:
//   - Debug: derivation and dispatch details, only with --debug
//   - Info: normal events
//   - Warn: unexpected but harmless conditions
//   - Error: failures that end the invocation
//
// All output goes to a single writer, stderr by default. The default
// level is Warn so a normal invocation logs nothing.
package clog

import "strings"

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for verbose diagnostic information.
	LevelDebug Level = iota
	// LevelInfo is for normal events.
	LevelInfo
	// LevelWarn is for unexpected conditions that don't stop generation.
	LevelWarn
	// LevelError is for failures.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive).
// Unrecognised names yield LevelWarn, the CLI default.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error", "err":
		return LevelError
	default:
		return LevelWarn
	}
}

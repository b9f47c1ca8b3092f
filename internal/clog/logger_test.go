package clog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := TestLogger(&buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	for _, want := range []string{
		"[DEBUG] debug message\n",
		"[INFO] info message\n",
		"[WARN] warn message\n",
		"[ERROR] error message\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("debug/info should be filtered by default, got: %s", output)
	}
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("expected warn message, got: %s", output)
	}
	if l.Level() != LevelWarn {
		t.Errorf("Level() = %v, want WARN", l.Level())
	}
}

func TestLogger_NilOutput(t *testing.T) {
	l := NewLogger()
	l.SetOutput(nil)
	l.Error("should not panic")
}

func TestLogger_FormatWithArgs(t *testing.T) {
	var buf bytes.Buffer
	l := TestLogger(&buf)

	l.Debug("effective seed %d (seed %d + length %d)", 792, 787, 5)

	want := "[DEBUG] effective seed 792 (seed 787 + length 5)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

package cmd

import (
	"errors"
	"testing"
)

func TestExitCodeError(t *testing.T) {
	t.Run("Error without cause reports the code", func(t *testing.T) {
		err := &ExitCodeError{Code: 42}
		want := "exit code 42"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("Error with cause reports the cause", func(t *testing.T) {
		err := &ExitCodeError{Code: ExitFailure, Err: errors.New("write output: closed")}
		if err.Error() != "write output: closed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("errors.As matches wrapped ExitCodeError", func(t *testing.T) {
		wrapped := errors.Join(errors.New("wrapper"), &ExitCodeError{Code: 5})
		var exitErr *ExitCodeError
		if !errors.As(wrapped, &exitErr) {
			t.Fatal("errors.As failed to match wrapped ExitCodeError")
		}
		if exitErr.Code != 5 {
			t.Errorf("Code = %d, want 5", exitErr.Code)
		}
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("cause")
		err := &ExitCodeError{Code: 1, Err: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is failed to find cause")
		}
	})
}

func TestUsageError(t *testing.T) {
	t.Run("wraps plain errors with usage code", func(t *testing.T) {
		cause := errors.New("bad flag")
		err := usageError(cause)
		if err.Code != ExitUsage {
			t.Errorf("Code = %d, want %d", err.Code, ExitUsage)
		}
		if !errors.Is(err, cause) {
			t.Error("usageError lost the cause")
		}
	})

	t.Run("keeps existing exit code", func(t *testing.T) {
		orig := &ExitCodeError{Code: ExitFailure, Err: errors.New("write")}
		if got := usageError(orig); got != orig {
			t.Errorf("usageError() = %v, want original error", got)
		}
	})

	t.Run("usageErrorf formats", func(t *testing.T) {
		err := usageErrorf("invalid seed %q", "abc")
		if err.Error() != `invalid seed "abc"` {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Code != ExitUsage {
			t.Errorf("Code = %d, want %d", err.Code, ExitUsage)
		}
	})
}

package cmd

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitFailure = 1 // output could not be written
	ExitUsage   = 2 // invalid arguments
)

// ExitCodeError carries a process exit code back to main.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// usageError marks err as an argument problem. Errors that already carry an
// exit code are returned unchanged.
func usageError(err error) *ExitCodeError {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}

func usageErrorf(format string, args ...any) *ExitCodeError {
	return &ExitCodeError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

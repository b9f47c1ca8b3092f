// Package testutil provides shared test helpers for seedgen tests.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// BinaryEnvVar overrides the location of the seedgen binary used by
// end-to-end tests.
const BinaryEnvVar = "SEEDGEN_BINARY"

// BinaryPath returns the seedgen binary path: $SEEDGEN_BINARY if set,
// otherwise ./seedgen at the repository root.
func BinaryPath() (string, error) {
	if p := os.Getenv(BinaryEnvVar); p != "" {
		return p, nil
	}
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("could not determine test file location")
	}
	repoRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")
	return filepath.Join(repoRoot, "seedgen"), nil
}

// RequireBinary returns the seedgen binary path, skipping the test if the
// binary has not been built.
func RequireBinary(t *testing.T) string {
	t.Helper()

	path, err := BinaryPath()
	if err != nil {
		t.Skip(err.Error())
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("seedgen binary not found at %s (run 'go build ./cmd/seedgen' first)", path)
	}
	return path
}

// Result is the outcome of one binary invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the binary at path with args and collects its output.
// A non-zero exit is reported in Result, not as an error.
func Run(t *testing.T, path string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	c := exec.Command(path, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		t.Fatalf("run %s: %v", path, err)
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: c.ProcessState.ExitCode(),
	}
}

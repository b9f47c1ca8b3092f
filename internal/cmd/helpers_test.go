package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdg/seedgen/internal/clog"
	"github.com/xdg/seedgen/internal/term"
)

// runCLI executes the CLI with args and captures stdout and stderr.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	term.SetOutput(&out)
	term.SetErrOutput(&errOut)
	resetFlags(rootCmd)
	t.Cleanup(func() {
		term.Reset()
		clog.Reset()
		resetFlags(rootCmd)
	})

	err = execute(args)
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default. Cobra keeps parsed values
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	exitErr, ok := err.(*ExitCodeError)
	if !ok {
		t.Fatalf("error %v (%T) is not *ExitCodeError", err, err)
	}
	return exitErr.Code
}

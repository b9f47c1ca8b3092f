// Package cmd implements the CLI commands for seedgen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/seedgen/internal/clog"
	"github.com/xdg/seedgen/internal/generate"
	"github.com/xdg/seedgen/internal/term"
	"github.com/xdg/seedgen/internal/version"
)

var (
	debugLogs bool
	logLevel  string

	// positional holds the raw <seed> <length> arguments of the current run.
	positional []string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seedgen <seed> <length> <command>",
	Short: "Deterministic pseudo-random value generator",
	Long: fmt.Sprintf(`Seedgen prints a pseudo-random value derived only from a seed and a length.

The same seed, length and command always print the same value, on every
platform and in every release. Length is between 0 and %d.

Examples:
  seedgen 787 5 num          # 84531
  seedgen 787 5 num --hex    # 14A33
  seedgen 44 8 text          # nmZnzCvv`, generate.MaxLength),
	Version:           versionString(),
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugLogs {
			clog.Configure(true)
		} else {
			clog.SetLevel(clog.ParseLevel(logLevel))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return usageErrorf("missing subcommand: expected num, text, or ascii")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "log derivation details to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(err)
	})
}

func versionString() string {
	if version.IsDev() {
		return "dev (development build)"
	}
	return version.Version
}

// Execute runs the root command with the process arguments and returns any
// error. Returned errors are always *ExitCodeError.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	rootCmd.SetOut(term.Stdout())
	rootCmd.SetErr(term.Stderr())
	clog.SetOutput(term.Stderr())

	var rest []string
	positional, rest = splitArgs(rootCmd, args)
	if rest == nil {
		// cobra falls back to os.Args on nil
		rest = []string{}
	}
	rootCmd.SetArgs(rest)

	c, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		exitErr = usageError(err)
	}
	term.Error("%v", exitErr)
	if exitErr.Code == ExitUsage && c != nil {
		_, _ = fmt.Fprint(term.Stderr(), c.UsageString())
	}
	return exitErr
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/seedgen/internal/clog"
	"github.com/xdg/seedgen/internal/generate"
	"github.com/xdg/seedgen/internal/term"
)

var numHex bool

var numCmd = &cobra.Command{
	Use:   "num",
	Short: "Print a whole number of <length> digits",
	Long: `Print a whole number built from <length> pseudo-random digits.

Each digit is drawn from 0 to 8. A leading zero is dropped from the output,
so the number may print with fewer than <length> digits. With --hex the
value is printed in uppercase hexadecimal, padded to at least two digits.`,
	Aliases: generate.KindNumber.Aliases(),
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

var textCmd = &cobra.Command{
	Use:     "text",
	Short:   "Print <length> characters from a-z, A-Z and 0-9",
	Aliases: generate.KindText.Aliases(),
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

var asciiCmd = &cobra.Command{
	Use:   "ascii",
	Short: "Print <length> printable ASCII characters",
	Long: `Print <length> characters from the printable ASCII range, space through '~'.

The output may contain spaces, quotes and backslashes; quote it accordingly.`,
	Aliases: generate.KindASCII.Aliases(),
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

func init() {
	numCmd.Flags().BoolVar(&numHex, "hex", false, "print the number in uppercase hexadecimal")

	rootCmd.AddCommand(numCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(asciiCmd)
}

// runGenerate is shared by the subcommands; the kind comes from the
// command's own name.
func runGenerate(cmd *cobra.Command, _ []string) error {
	kind, err := generate.ParseKind(cmd.Name())
	if err != nil {
		return usageError(err)
	}
	req, err := parseRequest(positional, kind, kind == generate.KindNumber && numHex)
	if err != nil {
		return err
	}

	clog.Debug("effective seed %d (seed %d + length %d)", req.EffectiveSeed(), req.Seed, req.Length)
	clog.Debug("generating %s output, hex=%v", req.Kind, req.Hex)

	stream := generate.NewStream(req.Seed, req.Length)
	out := req.GenerateFrom(stream)
	clog.Debug("drew %d words", stream.WordPos())

	if err := term.Write(out); err != nil {
		return &ExitCodeError{Code: ExitFailure, Err: err}
	}
	return nil
}

package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/seedgen/internal/generate"
)

// splitArgs separates the leading <seed> <length> positionals from the
// arguments cobra should see. Cobra resolves its first bare argument as a
// subcommand, so positionals are taken out before dispatch. Flags (and the
// value of a non-boolean long flag) stay with cobra. Scanning stops at the
// first command name, at "--", or once both positionals are found.
func splitArgs(root *cobra.Command, args []string) (positional, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return positional, append(rest, args[i:]...)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			rest = append(rest, arg)
			if flagTakesValue(root, arg) && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
		case len(positional) < 2 && !isCommandName(root, arg):
			positional = append(positional, arg)
		default:
			return positional, append(rest, args[i:]...)
		}
	}
	return positional, rest
}

// flagTakesValue reports whether arg is a long persistent flag of root that
// expects its value in the next argument.
func flagTakesValue(root *cobra.Command, arg string) bool {
	name, ok := strings.CutPrefix(arg, "--")
	if !ok || strings.Contains(name, "=") {
		return false
	}
	f := root.PersistentFlags().Lookup(name)
	return f != nil && f.NoOptDefVal == ""
}

func isCommandName(root *cobra.Command, arg string) bool {
	if arg == "help" {
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}

// parseRequest builds a validated request from the raw positionals.
func parseRequest(positional []string, kind generate.Kind, hex bool) (generate.Request, error) {
	if len(positional) != 2 {
		return generate.Request{}, usageErrorf("expected <seed> <length> before the subcommand, got %d argument(s)", len(positional))
	}

	seed, err := parseUnsigned(positional[0], 64)
	if err != nil {
		return generate.Request{}, usageErrorf("invalid seed %q: must be an unsigned 64-bit integer", positional[0])
	}

	length, err := parseUnsigned(positional[1], 8)
	if err != nil {
		return generate.Request{}, usageErrorf("invalid length %q: must be an integer between 0 and %d", positional[1], generate.MaxLength)
	}

	req := generate.Request{
		Seed:   seed,
		Length: uint8(length),
		Kind:   kind,
		Hex:    hex,
	}
	if err := req.Validate(); err != nil {
		return generate.Request{}, usageError(err)
	}
	return req, nil
}

// parseUnsigned parses a decimal unsigned integer of the given bit size.
// A single leading '+' is accepted.
func parseUnsigned(s string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bitSize)
}

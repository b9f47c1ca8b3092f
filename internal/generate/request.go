package generate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind selects the output encoding.
type Kind int

const (
	// KindNumber is a decimal or hexadecimal number.
	KindNumber Kind = iota
	// KindText is alphanumeric text drawn from Alphabet.
	KindText
	// KindASCII is printable ASCII text.
	KindASCII
)

// ErrUnknownKind is returned by ParseKind for an unrecognised name.
var ErrUnknownKind = errors.New("unknown output kind")

// kindNames lists each kind's subcommand name followed by its aliases.
var kindNames = map[Kind][]string{
	KindNumber: {"num", "number"},
	KindText:   {"text", "alnum"},
	KindASCII:  {"ascii", "printable"},
}

// String returns the subcommand name of the kind.
func (k Kind) String() string {
	if names, ok := kindNames[k]; ok {
		return names[0]
	}
	return "unknown"
}

// Aliases returns the alternative names accepted for the kind.
func (k Kind) Aliases() []string {
	names := kindNames[k]
	if len(names) < 2 {
		return nil
	}
	return append([]string(nil), names[1:]...)
}

// ParseKind parses a kind name or alias (case-insensitive).
func ParseKind(s string) (Kind, error) {
	lower := strings.ToLower(s)
	for k, names := range kindNames {
		if slices.Contains(names, lower) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Request describes one generation.
type Request struct {
	Seed   uint64
	Length uint8
	Kind   Kind
	Hex    bool // only meaningful for KindNumber
}

// Validate checks that the request can be generated.
func (r Request) Validate() error {
	if r.Length > MaxLength {
		return fmt.Errorf("%w: length must be between 0 and %d, got %d", ErrLengthOutOfRange, MaxLength, r.Length)
	}
	switch r.Kind {
	case KindNumber, KindText, KindASCII:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(r.Kind))
	}
	return nil
}

// EffectiveSeed returns the seed the request's stream is built from.
func (r Request) EffectiveSeed() uint64 {
	return EffectiveSeed(r.Seed, r.Length)
}

// GenerateFrom renders r using draws from s. Callers validate r first; s is
// normally NewStream(r.Seed, r.Length).
func (r Request) GenerateFrom(s Stream) string {
	switch r.Kind {
	case KindText:
		return Text(s, r.Length)
	case KindASCII:
		return ASCII(s, r.Length)
	default:
		return FormatNumber(Number(s, r.Length), r.Hex)
	}
}

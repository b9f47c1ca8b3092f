// Package generate maps a (seed, length, kind) request to deterministic text.
//
// Every request builds a fresh stream from its effective seed, performs
// exactly length draws (plus any rejection redraws) and renders the result.
// Numbers use digit accumulation: each draw yields one digit and the value
// is built as value*10 + digit. The range-based alternative, one draw in
// [10^(length-1), 10^length), is not supported.
package generate

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/xdg/seedgen/internal/rng"
)

// MaxLength is the largest supported output length. 38 decimal digits is the
// most a 128-bit unsigned accumulator can hold.
const MaxLength = 38

// Alphabet holds the symbols used for alphanumeric text, in draw-index order.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bounds of the printable ASCII range, inclusive.
const (
	asciiFirst = ' '
	asciiLast  = '~'
)

// digitSpan is the exclusive upper bound of a single digit draw. Digits are
// drawn from [0, 9), so 9 never appears in a number.
const digitSpan = 9

// ErrLengthOutOfRange is returned when a requested length exceeds MaxLength.
var ErrLengthOutOfRange = errors.New("length out of range")

// Stream is the draw interface used by the generators.
type Stream = rng.Source32

// EffectiveSeed combines seed and length. The addition wraps on overflow.
func EffectiveSeed(seed uint64, length uint8) uint64 {
	return seed + uint64(length)
}

// NewStream returns the stream for a (seed, length) pair.
func NewStream(seed uint64, length uint8) *rng.ChaCha {
	return rng.FromUint64(EffectiveSeed(seed, length))
}

// Number draws length digits and returns their accumulated value.
func Number(s Stream, length uint8) *big.Int {
	n := new(big.Int)
	ten := big.NewInt(10)
	digit := new(big.Int)
	for i := 0; i < int(length); i++ {
		digit.SetUint64(uint64(rng.Uint32N(s, digitSpan)))
		n.Mul(n, ten)
		n.Add(n, digit)
	}
	return n
}

// FormatNumber renders n in decimal, or in uppercase hexadecimal padded to
// at least two digits.
func FormatNumber(n *big.Int, hex bool) string {
	if hex {
		return fmt.Sprintf("%02X", n)
	}
	return n.String()
}

// Text draws length symbols from Alphabet.
func Text(s Stream, length uint8) string {
	var b strings.Builder
	b.Grow(int(length))
	for i := 0; i < int(length); i++ {
		b.WriteByte(Alphabet[rng.Uint32Inclusive(s, 0, uint32(len(Alphabet)-1))])
	}
	return b.String()
}

// ASCII draws length bytes from the printable range ' ' through '~'.
// The result is always valid UTF-8.
func ASCII(s Stream, length uint8) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rng.Uint32Inclusive(s, asciiFirst, asciiLast))
	}
	return string(b)
}

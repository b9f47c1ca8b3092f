// Package rng provides the seeded pseudo-random stream behind seedgen.
//
// The stream is the ChaCha keystream with 12 rounds, a 64-bit block counter
// and a 64-bit stream id, keyed from a 64-bit seed through a PCG32 expansion.
// Words are read in keystream order and buffered four blocks at a time. Together
// with the range sampling in uniform.go this fixes the exact draw-to-value
// mapping, so every output of seedgen is reproducible from (seed, length).
//
// The algorithm, including the seed expansion, is part of the output
// contract. Changing any step changes every generated value.
package rng

import (
	"encoding/binary"
	"fmt"

	"github.com/aead/chacha20/chacha"
)

const (
	blockWords = 16
	bufBlocks  = 4
	bufWords   = blockWords * bufBlocks

	// SeedSize is the size of a ChaCha key in bytes.
	SeedSize = 32

	// StdRounds is the number of rounds used by the seedgen stream.
	StdRounds = 12
)

// ChaCha is a buffered ChaCha keystream used as a pseudo-random source.
// It is not safe for concurrent use.
type ChaCha struct {
	cipher *chacha.Cipher
	blocks uint64 // blocks generated so far
	raw    [bufWords * 4]byte
	buf    [bufWords]uint32
	idx    int // next unread word in buf
}

// newChaCha keys a stream with the given round count (8, 12 or 20).
// The 8-byte zero nonce selects the 64-bit block counter layout with
// stream id 0.
func newChaCha(seed [SeedSize]byte, rounds int) *ChaCha {
	var nonce [chacha.NonceSize]byte
	c, err := chacha.NewCipher(nonce[:], seed[:], rounds)
	if err != nil {
		panic(fmt.Sprintf("rng: %v", err))
	}
	return &ChaCha{cipher: c, idx: bufWords}
}

// NewChaCha12 returns a 12-round stream keyed with seed.
func NewChaCha12(seed [SeedSize]byte) *ChaCha {
	return newChaCha(seed, StdRounds)
}

// FromUint64 returns the 12-round stream for a 64-bit seed.
func FromUint64(seed uint64) *ChaCha {
	return NewChaCha12(SeedFromUint64(seed))
}

// Uint32 returns the next keystream word.
func (c *ChaCha) Uint32() uint32 {
	if c.idx >= bufWords {
		c.refill()
	}
	v := c.buf[c.idx]
	c.idx++
	return v
}

// WordPos returns the number of 32-bit words consumed so far.
func (c *ChaCha) WordPos() uint64 {
	return c.blocks*blockWords - uint64(bufWords-c.idx)
}

func (c *ChaCha) refill() {
	clear(c.raw[:])
	c.cipher.XORKeyStream(c.raw[:], c.raw[:])
	for i := range c.buf {
		c.buf[i] = binary.LittleEndian.Uint32(c.raw[4*i:])
	}
	c.blocks += bufBlocks
	c.idx = 0
}

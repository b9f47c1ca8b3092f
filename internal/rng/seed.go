package rng

import (
	"encoding/binary"
	"math/bits"
)

// PCG32 parameters used to expand a 64-bit seed into a ChaCha key.
const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 11634580027462260723
)

// SeedFromUint64 expands a 64-bit seed into a 32-byte key. Each 4-byte chunk
// is one PCG32 (XSH-RR) output, written little-endian.
func SeedFromUint64(state uint64) [SeedSize]byte {
	var seed [SeedSize]byte
	for i := 0; i < SeedSize; i += 4 {
		state = state*pcgMultiplier + pcgIncrement
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(seed[i:], bits.RotateLeft32(xorshifted, -rot))
	}
	return seed
}

package rng

import "math/bits"

// Source32 is a source of uniformly distributed 32-bit words.
type Source32 interface {
	Uint32() uint32
}

// Uint32Inclusive returns a uniform value in [low, high].
//
// The value is the high word of word*range. When the low word lands in the
// biased zone a second word is drawn and its high word decides whether to
// round up. This consumes one or two words and is nearly unbiased.
// It panics if low > high.
func Uint32Inclusive(src Source32, low, high uint32) uint32 {
	if low > high {
		panic("rng: empty range")
	}
	span := high - low + 1
	if span == 0 {
		return src.Uint32()
	}

	result, lo := bits.Mul32(src.Uint32(), span)
	if lo > -span {
		next, _ := bits.Mul32(src.Uint32(), span)
		if _, carry := bits.Add32(lo, next, 0); carry != 0 {
			result++
		}
	}
	return low + result
}

// Uint32N returns a uniform value in [0, n). It panics if n == 0.
func Uint32N(src Source32, n uint32) uint32 {
	if n == 0 {
		panic("rng: invalid argument to Uint32N")
	}
	return Uint32Inclusive(src, 0, n-1)
}

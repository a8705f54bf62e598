// Package bitutil implements bit manipulation helpers used by the
// movegen package.
package bitutil

import "math/bits"

// PopLSB clears the least significant set bit of bb and returns its index.
// Calling PopLSB on a zero bitboard is undefined.
func PopLSB(bb *uint64) int {
	lsb := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return lsb
}

// BitScan returns the index of the least significant set bit of bb without
// clearing it.
func BitScan(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

// CountBits returns the number of set bits (population count) of bb.
func CountBits(bb uint64) int {
	return bits.OnesCount64(bb)
}

package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes returns a word with the high bit set in every byte of v that is
// zero (Hacker's Delight). Only the lowest set bit is exact, which is all
// the callers use.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// memchrGeneric searches 8 bytes at a time: the needle is broadcast to every
// byte of a word, XORed with the haystack chunk, and matching bytes show up
// as zero bytes.
func memchrGeneric(haystack []byte, needle byte) int {
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memchr2Generic is memchrGeneric for two needles; the zero-byte masks of
// both comparisons are ORed so the first match of either wins.
func memchr2Generic(haystack []byte, needle1, needle2 byte) int {
	m1 := uint64(needle1) * lo8
	m2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk^m1) | zeroBytes(chunk^m2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

// memchr3Generic is memchr2Generic with a third needle.
func memchr3Generic(haystack []byte, needle1, needle2, needle3 byte) int {
	m1 := uint64(needle1) * lo8
	m2 := uint64(needle2) * lo8
	m3 := uint64(needle3) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk^m1) | zeroBytes(chunk^m2) | zeroBytes(chunk^m3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}

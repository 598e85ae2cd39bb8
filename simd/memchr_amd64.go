//go:build amd64

// Package simd provides fast byte and substring search for candidate
// scanning. On x86-64 CPUs with AVX2 the single-byte search is routed to the
// runtime's vectorized bytes.IndexByte; everywhere else a SWAR (SIMD Within
// A Register) implementation processes 8 bytes per step.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 is detected once at package initialization.
var hasAVX2 = cpu.X86.HasAVX2

// vectorThreshold is the haystack length below which the vectorized path is
// not worth its setup cost.
const vectorThreshold = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first byte equal to needle1 or needle2,
// or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first byte equal to any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// Accelerated reports whether a vectorized implementation is in use.
func Accelerated() bool {
	return hasAVX2
}

//go:build !amd64

package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// On non-AMD64 platforms this is the SWAR implementation.
func Memchr(haystack []byte, needle byte) int {
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
	return false
}

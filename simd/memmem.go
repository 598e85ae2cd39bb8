package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. An empty needle matches at 0, as with
// bytes.Index.
//
// Candidates are found by scanning for the needle's last byte with Memchr
// and then verified in full. Literals extracted from patterns tend to end
// in their most distinctive byte, which keeps the candidate count low.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world"))
//	// pos == 6
func Memmem(haystack, needle []byte) int {
	switch n := len(needle); {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	last := len(needle) - 1
	rare := needle[last]
	// The rare byte of a match can never sit before index last.
	at := last
	for at < len(haystack) {
		pos := Memchr(haystack[at:], rare)
		if pos < 0 {
			return -1
		}
		end := at + pos + 1
		start := end - len(needle)
		if bytes.Equal(haystack[start:end], needle) {
			return start
		}
		at = end
	}
	return -1
}

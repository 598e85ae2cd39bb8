// Package conv provides checked integer narrowing.
//
// The conversions panic on overflow: an out-of-range value means an
// automaton grew past what its state IDs can address, which is a bug
// rather than an input error.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

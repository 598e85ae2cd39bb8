// Package prefilter finds candidate match positions from extracted literals.
//
// Every match of a pattern starts with one of its prefix literals, so a
// search can jump between occurrences of those literals instead of testing
// every position. The builder picks the cheapest searcher for the literal
// set:
//   - one single-byte literal → memchr
//   - two or three single-byte literals → memchr2 / memchr3
//   - one longer literal → memmem
//   - anything else → Aho-Corasick automaton
//
// Example usage:
//
//	tree, _ := syntax.Parse("hello|world")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(tree)
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("say hello"), 0) // 4
package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/resyntax/literal"
	"github.com/coregx/resyntax/simd"
)

// Prefilter reports candidate positions in a haystack.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1.
	// A candidate is a position where one of the literals begins.
	Find(haystack []byte, start int) int

	// IsComplete reports whether every candidate is a full match of the
	// pattern the literals were extracted from.
	IsComplete() bool

	// LiteralLen returns the length of a complete match when it is fixed,
	// or 0 otherwise.
	LiteralLen() int

	// String names the strategy, for diagnostics.
	String() string
}

// Builder selects and builds a Prefilter from a prefix literal set.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for prefixes. A nil or empty set builds no
// prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the prefilter for the literal set, or nil when the set
// cannot narrow a search (it is empty or contains the empty string).
func (b *Builder) Build() Prefilter {
	if b.prefixes.IsEmpty() {
		return nil
	}

	seq := b.prefixes.Clone()
	seq.Dedup()
	seq.Minimize()
	if seq.Get(0).Len() == 0 {
		// Minimize sorts shortest first, so an empty literal is at 0.
		return nil
	}

	complete := seq.AllComplete()
	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return newMemchrPrefilter(lit.Bytes[0], complete)
		}
		return newMemmemPrefilter(lit.Bytes, complete)
	}

	if seq.Len() <= 3 && maxLen(seq) == 1 {
		set := make([]byte, seq.Len())
		for i, lit := range seq.Literals() {
			set[i] = lit.Bytes[0]
		}
		return newByteSetPrefilter(set, complete)
	}

	pf, err := newAhoCorasickPrefilter(seq, complete)
	if err != nil {
		return nil
	}
	return pf
}

func maxLen(seq *literal.Seq) int {
	n := 0
	for _, lit := range seq.Literals() {
		n = max(n, lit.Len())
	}
	return n
}

// memchrPrefilter finds a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.Memchr(haystack[start:], p.needle)
	if pos == -1 {
		return -1
	}
	return start + pos
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) String() string { return fmt.Sprintf("memchr(%q)", p.needle) }

// byteSetPrefilter finds any of two or three bytes.
type byteSetPrefilter struct {
	set      []byte
	complete bool
}

func newByteSetPrefilter(set []byte, complete bool) Prefilter {
	return &byteSetPrefilter{set: set, complete: complete}
}

func (p *byteSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	h := haystack[start:]
	var pos int
	if len(p.set) == 2 {
		pos = simd.Memchr2(h, p.set[0], p.set[1])
	} else {
		pos = simd.Memchr3(h, p.set[0], p.set[1], p.set[2])
	}
	if pos == -1 {
		return -1
	}
	return start + pos
}

func (p *byteSetPrefilter) IsComplete() bool { return p.complete }

func (p *byteSetPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *byteSetPrefilter) String() string {
	return fmt.Sprintf("memchr%d(%q)", len(p.set), p.set)
}

// memmemPrefilter finds a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{needle: needle, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	pos := simd.Memmem(haystack[start:], p.needle)
	if pos == -1 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) String() string { return fmt.Sprintf("memmem(%q)", p.needle) }

// ahoCorasickPrefilter finds any literal of a larger set with a single
// automaton pass.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	literals [][]byte
	maxLen   int
	complete bool
}

func newAhoCorasickPrefilter(seq *literal.Seq, complete bool) (Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	literals := make([][]byte, 0, seq.Len())
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit.Bytes)
		literals = append(literals, lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build aho-corasick automaton: %w", err)
	}
	return &ahoCorasickPrefilter{
		auto:     auto,
		literals: literals,
		maxLen:   maxLen(seq),
		complete: complete,
	}, nil
}

// Find returns the leftmost start of any literal at or after start.
//
// The automaton reports the occurrence that ends first. An occurrence that
// starts earlier ends no sooner, so it begins within maxLen bytes of that
// end; those positions are checked directly.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	for pos := max(start, m.End-p.maxLen); pos < m.Start; pos++ {
		if p.hasLiteralAt(haystack, pos) {
			return pos
		}
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) hasLiteralAt(haystack []byte, pos int) bool {
	for _, lit := range p.literals {
		if bytes.HasPrefix(haystack[pos:], lit) {
			return true
		}
	}
	return false
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen is 0: matches of different literals differ in length.
func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

func (p *ahoCorasickPrefilter) String() string {
	return fmt.Sprintf("aho-corasick(%d literals)", len(p.literals))
}

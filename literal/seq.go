// Package literal extracts literal byte strings from parsed patterns.
//
// A pattern like "(foo|bar)baz" can only match text that starts with "foobaz"
// or "barbaz". Knowing such literals lets a search skip straight to candidate
// positions before any full matching work is done (see package prefilter).
//
// Key concepts:
//   - A Literal is a byte string that may be a whole match (Complete) or only
//     the start or end of one
//   - A Seq is a set of alternative literals, one of which every match has
//   - The Extractor walks a syntax tree and produces prefix, suffix and exact
//     literal sets
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte string extracted from a pattern.
//
// Complete reports whether the literal is an entire match of the pattern.
// When false, the literal is only a required prefix (or suffix) of a match.
//
// Example:
//   - Pattern "abc"  → prefix Literal{"abc", true}
//   - Pattern "ab+c" → prefix Literal{"ab", false}
type Literal struct {
	// Bytes holds the UTF-8 encoding of the literal characters.
	Bytes []byte

	// Complete is true when matching Bytes is a full match.
	Complete bool
}

// NewLiteral creates a Literal.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"), true)
//	fmt.Println(lit) // literal{hello, complete=true}
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String formats the literal as "literal{bytes, complete=bool}".
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals.
//
// Every match of the pattern the Seq was extracted from begins (or ends, for
// suffix sets) with at least one of its literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Println(seq.Len()) // 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence holding lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals. A nil Seq has length zero.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal. It panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Literals returns the literals of the sequence. The slice must not be
// modified.
func (s *Seq) Literals() []Literal {
	if s == nil {
		return nil
	}
	return s.literals
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// IsFinite reports whether the sequence describes a finite set of literals.
// Any non-empty sequence is finite.
func (s *Seq) IsFinite() bool {
	return !s.IsEmpty()
}

// AllComplete reports whether the sequence is non-empty and every literal is
// a complete match.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	out := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		out[i] = Literal{Bytes: append([]byte(nil), lit.Bytes...), Complete: lit.Complete}
	}
	return &Seq{literals: out}
}

// Dedup removes repeated literals, keeping the first occurrence. When the
// same bytes appear both complete and incomplete, the kept literal is
// marked incomplete.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("ab"), true),
//	    literal.NewLiteral([]byte("ab"), false),
//	)
//	seq.Dedup()
//	fmt.Println(seq.Get(0)) // literal{ab, complete=false}
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	index := make(map[string]int, len(s.literals))
	kept := s.literals[:0]
	for _, lit := range s.literals {
		if i, ok := index[string(lit.Bytes)]; ok {
			kept[i].Complete = kept[i].Complete && lit.Complete
			continue
		}
		index[string(lit.Bytes)] = len(kept)
		kept = append(kept, lit)
	}
	s.literals = kept
}

// Minimize drops literals that are covered by a shorter one.
//
// For candidate search, "foobar" is redundant next to "foo": every position
// where "foobar" starts is also a position where "foo" starts. The remaining
// literals are ordered shortest first.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foobar"), true),
//	    literal.NewLiteral([]byte("foo"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // 1
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, lit := range s.literals {
		covered := false
		for _, k := range kept {
			if bytes.HasPrefix(lit.Bytes, k.Bytes) {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest prefix shared by all literals, or
// an empty slice when there is none.
//
// Example:
//
//	// ["hello", "help", "hero"] → "he"
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = commonPrefix(prefix, lit.Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}
	return append([]byte(nil), prefix...)
}

// LongestCommonSuffix returns the longest suffix shared by all literals, or
// an empty slice when there is none.
//
// Example:
//
//	// ["cat", "bat", "rat"] → "at"
func (s *Seq) LongestCommonSuffix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	suffix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		suffix = commonSuffix(suffix, lit.Bytes)
		if len(suffix) == 0 {
			return []byte{}
		}
	}
	return append([]byte(nil), suffix...)
}

// hasEmpty reports whether any literal is the empty string.
func (s *Seq) hasEmpty() bool {
	for _, lit := range s.Literals() {
		if len(lit.Bytes) == 0 {
			return true
		}
	}
	return false
}

func commonPrefix(a, b []byte) []byte {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func commonSuffix(a, b []byte) []byte {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return a[len(a)-i:]
		}
	}
	return a[len(a)-n:]
}

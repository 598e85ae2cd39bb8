// Package resyntax is the front end of a regular-expression toolchain: it
// turns pattern text into a syntax tree and derives the literal facts a
// matcher can use to search quickly.
//
// The pattern language is small: literal characters, the postfix
// quantifiers + * ?, alternation with |, grouping with ( ), and backslash
// escapes for exactly those metacharacters.
//
// Basic usage:
//
//	// Parse a pattern
//	p, err := resyntax.Parse(`(foo|bar)+\?`)
//	if err != nil {
//	    log.Fatal(err) // ParseError: ...
//	}
//
//	fmt.Println(p.Tree())
//	// Seq([Plus(Or(Seq([...]), Seq([...]))), Char('?')])
//
//	// Find where a match could start
//	pos := p.FindCandidate([]byte("a foobar?"), 0) // 2
//
//	// Find the match itself
//	loc := p.FindIndex([]byte("a foobar?")) // [2 9]
//
// The syntax tree is built by package syntax, literals by package literal,
// candidate search by package prefilter and matching by package nfa.
// Parsing has no shared state; Parse is safe to call from multiple
// goroutines, and a Pattern may be used concurrently.
package resyntax

import (
	"fmt"
	"sync"

	"github.com/coregx/resyntax/literal"
	"github.com/coregx/resyntax/nfa"
	"github.com/coregx/resyntax/prefilter"
	"github.com/coregx/resyntax/syntax"
)

// Pattern is a parsed pattern together with the literals extracted from it.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	pattern   string
	tree      *syntax.Node
	prefixes  *literal.Seq
	suffixes  *literal.Seq
	exact     *literal.Seq
	prefilter prefilter.Prefilter

	vm     *nfa.PikeVM
	states sync.Pool // *nfa.PikeVMState
}

// Parse parses a pattern using DefaultConfig.
//
// A non-nil error is a *syntax.ParseError.
//
// Example:
//
//	p, err := resyntax.Parse("a|b|c")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(pattern string) (*Pattern, error) {
	return ParseWithConfig(pattern, DefaultConfig())
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
//
// Example:
//
//	var greeting = resyntax.MustParse("hel+o")
func MustParse(pattern string) *Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic("resyntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return p
}

// ParseWithConfig parses a pattern and extracts literals as configured.
//
// An invalid config is reported as *ConfigError before the pattern is
// looked at.
func ParseWithConfig(pattern string, config Config) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	automaton, err := nfa.Compile(tree)
	if err != nil {
		return nil, fmt.Errorf("resyntax: compile %q: %w", pattern, err)
	}

	p := &Pattern{pattern: pattern, tree: tree, vm: nfa.NewPikeVM(automaton)}
	p.states.New = func() any { return p.vm.NewState() }
	if !config.ExtractLiterals {
		return p, nil
	}

	extractor := literal.New(config.extractorConfig())
	p.prefixes = extractor.ExtractPrefixes(tree)
	p.suffixes = extractor.ExtractSuffixes(tree)
	p.exact = extractor.ExtractExact(tree)

	if config.EnablePrefilter {
		p.prefilter = prefilter.NewBuilder(p.prefixes).Build()
	}
	return p, nil
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Tree returns the syntax tree. It must not be modified.
func (p *Pattern) Tree() *syntax.Node {
	return p.tree
}

// Prefixes returns literals one of which starts every match. The set is
// empty when no prefix is required or extraction is disabled.
func (p *Pattern) Prefixes() *literal.Seq {
	if p.prefixes == nil {
		return literal.NewSeq()
	}
	return p.prefixes
}

// Suffixes returns literals one of which ends every match.
func (p *Pattern) Suffixes() *literal.Seq {
	if p.suffixes == nil {
		return literal.NewSeq()
	}
	return p.suffixes
}

// Exact returns every string the pattern matches, or nil when that set is
// infinite, too large, or extraction is disabled.
func (p *Pattern) Exact() *literal.Seq {
	return p.exact
}

// IsLiteral reports whether the pattern matches exactly one string.
func (p *Pattern) IsLiteral() bool {
	return p.exact.Len() == 1
}

// Prefilter returns the candidate finder, or nil if none applies.
func (p *Pattern) Prefilter() prefilter.Prefilter {
	return p.prefilter
}

// FindCandidate returns the first position at or after start where a match
// could begin, or -1 if there is none. Without a prefilter every position
// is a candidate, so start itself is returned while it is in range.
//
// Example:
//
//	p := resyntax.MustParse("world")
//	p.FindCandidate([]byte("hello world"), 0) // 6
func (p *Pattern) FindCandidate(haystack []byte, start int) int {
	if p.prefilter != nil {
		return p.prefilter.Find(haystack, start)
	}
	if start < 0 || start > len(haystack) {
		return -1
	}
	return start
}

// Match reports whether b contains a match of the pattern.
func (p *Pattern) Match(b []byte) bool {
	at := 0
	if p.prefilter != nil {
		at = p.prefilter.Find(b, 0)
		if at < 0 {
			return false
		}
		if p.prefilter.IsComplete() {
			return true
		}
	}

	state := p.states.Get().(*nfa.PikeVMState)
	defer p.states.Put(state)
	return p.vm.IsMatch(state, b, at)
}

// MatchString reports whether s contains a match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// FindIndex returns the location of the leftmost-first match in b as
// b[loc[0]:loc[1]], or nil if there is none. Quantifiers are greedy and
// alternation prefers its left branch.
//
// Example:
//
//	p := resyntax.MustParse("ab|a")
//	p.FindIndex([]byte("xab")) // [1 3]
func (p *Pattern) FindIndex(b []byte) []int {
	at := 0
	if p.prefilter != nil {
		at = p.prefilter.Find(b, 0)
		if at < 0 {
			return nil
		}
		// A single exact literal: the candidate is the match.
		if p.IsLiteral() {
			return []int{at, at + p.exact.Get(0).Len()}
		}
	}

	state := p.states.Get().(*nfa.PikeVMState)
	defer p.states.Put(state)
	start, end, ok := p.vm.Search(state, b, at)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex but searches s.
func (p *Pattern) FindStringIndex(s string) []int {
	return p.FindIndex([]byte(s))
}

// QuoteMeta returns a pattern that matches s literally by escaping every
// metacharacter.
//
// Example:
//
//	resyntax.QuoteMeta("1+1=2?") // `1\+1=2\?`
func QuoteMeta(s string) string {
	n := 0
	for _, c := range s {
		if syntax.IsEscapable(c) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]rune, 0, len(s)+n)
	for _, c := range s {
		if syntax.IsEscapable(c) {
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

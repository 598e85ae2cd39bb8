package literal

import (
	"unicode/utf8"

	"github.com/coregx/resyntax/syntax"
)

// ExtractorConfig limits literal extraction.
//
//   - MaxLiterals: caps the size of a literal set; alternations like
//     (a|b)(c|d)(e|f)... grow multiplicatively
//   - MaxLiteralLen: longer literals are truncated and marked incomplete
//   - MaxDepth: trees nested deeper than this are treated as unknown
type ExtractorConfig struct {
	// MaxLiterals is the largest set the extractor will build. Default: 64.
	MaxLiterals int

	// MaxLiteralLen is the longest literal in bytes. Default: 64.
	MaxLiteralLen int

	// MaxDepth bounds recursion over the tree. Default: 100.
	MaxDepth int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxDepth:      100,
	}
}

// Extractor extracts literal sets from syntax trees.
//
// The extraction rules per node:
//   - Char: the character itself, complete
//   - Seq: the cross product of its children's literals, extended while
//     literals stay complete
//   - Or: the union of both sides
//   - Question: the empty string plus the child's literals
//   - Star: the empty string plus the child's literals, marked incomplete
//   - Plus: the child's literals, marked incomplete
//
// Example:
//
//	tree, _ := syntax.Parse("(foo|bar)+baz")
//	e := literal.New(literal.DefaultConfig())
//	prefixes := e.ExtractPrefixes(tree)
//	// prefixes = [foo (incomplete), bar (incomplete)]
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor. Non-positive limits are replaced by defaults.
func New(config ExtractorConfig) *Extractor {
	def := DefaultConfig()
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = def.MaxDepth
	}
	return &Extractor{config: config}
}

// ExtractPrefixes returns literals one of which starts every match.
//
// Examples:
//
//	"hello"      → [hello (complete)]
//	"a(b|c)d"    → [abd, acd (complete)]
//	"ab+c"       → [ab (incomplete)]
//	"a*b"        → [b (complete), a (incomplete)]
//	"a?"         → [] (may match the empty string)
//
// The result is empty when no prefix is required.
func (e *Extractor) ExtractPrefixes(n *syntax.Node) *Seq {
	return e.usable(e.extract(n, false, 0))
}

// ExtractSuffixes returns literals one of which ends every match.
//
// Examples:
//
//	"world"      → [world (complete)]
//	"a+bc"       → [abc (incomplete)]
//	"(x|y)z"     → [xz, yz (complete)]
//
// The result is empty when no suffix is required.
func (e *Extractor) ExtractSuffixes(n *syntax.Node) *Seq {
	return e.usable(e.extract(n, true, 0))
}

// ExtractExact returns every string the pattern matches, or nil if that
// set is infinite or larger than the configured limits.
//
// Unlike prefix sets, the result may contain the empty string:
//
//	"ab?"        → [a, ab]
//	"(a|b)c"     → [ac, bc]
//	"a+"         → nil
func (e *Extractor) ExtractExact(n *syntax.Node) *Seq {
	seq := e.extract(n, false, 0)
	if !seq.AllComplete() {
		return nil
	}
	seq.Dedup()
	return seq
}

// usable drops sets that cannot narrow a search: a set holding the empty
// string matches at every position.
func (e *Extractor) usable(seq *Seq) *Seq {
	if seq.IsEmpty() || seq.hasEmpty() {
		return NewSeq()
	}
	seq.Dedup()
	return seq
}

// unknown is the set used when nothing is known: every match starts with
// the empty string, and more follows.
func unknown() *Seq {
	return NewSeq(NewLiteral(nil, false))
}

// extract computes the literal set of n. With reverse set, literals are
// built from the end of the pattern (suffixes).
func (e *Extractor) extract(n *syntax.Node, reverse bool, depth int) *Seq {
	if n == nil || depth > e.config.MaxDepth {
		return unknown()
	}

	switch n.Op {
	case syntax.OpChar:
		return NewSeq(NewLiteral(utf8.AppendRune(nil, n.Char), true))

	case syntax.OpSeq:
		return e.extractConcat(n.Sub, reverse, depth)

	case syntax.OpOr:
		left := e.extract(n.Sub[0], reverse, depth+1)
		right := e.extract(n.Sub[1], reverse, depth+1)
		if left.Len()+right.Len() > e.config.MaxLiterals {
			return unknown()
		}
		lits := make([]Literal, 0, left.Len()+right.Len())
		lits = append(lits, left.Literals()...)
		lits = append(lits, right.Literals()...)
		return NewSeq(lits...)

	case syntax.OpQuestion:
		sub := e.extract(n.Sub[0], reverse, depth+1)
		if sub.Len()+1 > e.config.MaxLiterals {
			return unknown()
		}
		return NewSeq(append([]Literal{NewLiteral(nil, true)}, sub.Literals()...)...)

	case syntax.OpStar:
		sub := e.extract(n.Sub[0], reverse, depth+1)
		if sub.Len()+1 > e.config.MaxLiterals {
			return unknown()
		}
		lits := []Literal{NewLiteral(nil, true)}
		for _, lit := range sub.Literals() {
			lits = append(lits, NewLiteral(lit.Bytes, false))
		}
		return NewSeq(lits...)

	case syntax.OpPlus:
		sub := e.extract(n.Sub[0], reverse, depth+1)
		lits := make([]Literal, sub.Len())
		for i, lit := range sub.Literals() {
			lits[i] = NewLiteral(lit.Bytes, false)
		}
		return NewSeq(lits...)

	default:
		return unknown()
	}
}

// extractConcat crosses the literal sets of subs in order (or in reverse
// order for suffixes). Incomplete literals are never extended. When the
// cross product would exceed MaxLiterals, extension stops and the literals
// built so far are kept as incomplete.
func (e *Extractor) extractConcat(subs []*syntax.Node, reverse bool, depth int) *Seq {
	acc := []Literal{NewLiteral(nil, true)}

	for i := range subs {
		sub := subs[i]
		if reverse {
			sub = subs[len(subs)-1-i]
		}
		if !anyComplete(acc) {
			break
		}

		next := e.extract(sub, reverse, depth+1)
		size := 0
		for _, lit := range acc {
			if lit.Complete {
				size += next.Len()
			} else {
				size++
			}
		}
		if size > e.config.MaxLiterals {
			return NewSeq(markIncomplete(acc)...)
		}

		crossed := make([]Literal, 0, size)
		for _, lit := range acc {
			if !lit.Complete {
				crossed = append(crossed, lit)
				continue
			}
			for _, nl := range next.Literals() {
				crossed = append(crossed, e.join(lit, nl, reverse))
			}
		}
		acc = crossed
	}
	return NewSeq(acc...)
}

// join concatenates a and b (b before a when reverse) and truncates the
// result to MaxLiteralLen.
func (e *Extractor) join(a, b Literal, reverse bool) Literal {
	buf := make([]byte, 0, len(a.Bytes)+len(b.Bytes))
	if reverse {
		buf = append(append(buf, b.Bytes...), a.Bytes...)
	} else {
		buf = append(append(buf, a.Bytes...), b.Bytes...)
	}
	complete := a.Complete && b.Complete

	if limit := e.config.MaxLiteralLen; len(buf) > limit {
		if reverse {
			buf = buf[len(buf)-limit:]
		} else {
			buf = buf[:limit]
		}
		complete = false
	}
	return NewLiteral(buf, complete)
}

func anyComplete(lits []Literal) bool {
	for _, lit := range lits {
		if lit.Complete {
			return true
		}
	}
	return false
}

func markIncomplete(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, lit := range lits {
		out[i] = NewLiteral(lit.Bytes, false)
	}
	return out
}

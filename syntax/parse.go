package syntax

// IsEscapable reports whether c may be escaped with a backslash.
func IsEscapable(c rune) bool {
	switch c {
	case '\\', '(', ')', '|', '+', '*', '?':
		return true
	}
	return false
}

// parseEscape resolves the character after a backslash at offset pos.
// Only metacharacters may be escaped; anything else is InvalidEscape.
func parseEscape(pos int, c rune) (*Node, error) {
	if !IsEscapable(c) {
		return nil, errInvalidEscape(pos, c)
	}
	return NewChar(c), nil
}

// applyRepetition replaces the last node of seq with a quantifier of kind op
// wrapping it. seq is returned unchanged with NoPrev if it is empty.
func applyRepetition(seq []*Node, op Op, pos int) ([]*Node, error) {
	if len(seq) == 0 {
		return seq, errNoPrev(pos)
	}
	last := len(seq) - 1
	seq[last] = newRepetition(op, seq[last])
	return seq, nil
}

// foldOr combines alternatives into a single node.
//
// A single alternative is returned as-is and an empty list yields nil. Two or
// more are folded to the right, so [b0, b1, b2] becomes Or(b0, Or(b1, b2)).
func foldOr(alts []*Node) *Node {
	if len(alts) == 0 {
		return nil
	}
	n := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		n = NewOr(alts[i], n)
	}
	return n
}

// frame is the enclosing scope saved when a group is opened.
type frame struct {
	seq []*Node
	alt []*Node
}

// parser holds the accumulators of a single Parse call.
type parser struct {
	seq     []*Node // current concatenation
	alt     []*Node // finished alternatives of the current group
	stack   []frame // one entry per open '('
	escaped bool    // previous character was an unconsumed '\'
}

// Parse converts pattern into a syntax tree.
//
// Offsets in errors count characters (runes), not bytes. The first error
// stops the scan; at end of input an unterminated group is reported before
// an empty pattern. A non-nil error is always a *ParseError.
//
// Example:
//
//	tree, err := syntax.Parse("a|b|c")
//	// tree: Or(Seq([Char('a')]), Or(Seq([Char('b')]), Seq([Char('c')])))
//
//	_, err = syntax.Parse("(ab")
//	// err: ParseError: no right parenthesis
func Parse(pattern string) (*Node, error) {
	var p parser
	pos := 0
	for _, c := range pattern {
		if err := p.step(pos, c); err != nil {
			return nil, err
		}
		pos++
	}
	return p.finish()
}

// step consumes the character c found at offset pos.
func (p *parser) step(pos int, c rune) error {
	if p.escaped {
		p.escaped = false
		n, err := parseEscape(pos, c)
		if err != nil {
			return err
		}
		p.seq = append(p.seq, n)
		return nil
	}

	var err error
	switch c {
	case '+':
		p.seq, err = applyRepetition(p.seq, OpPlus, pos)
	case '*':
		p.seq, err = applyRepetition(p.seq, OpStar, pos)
	case '?':
		p.seq, err = applyRepetition(p.seq, OpQuestion, pos)
	case '(':
		p.openGroup()
	case ')':
		err = p.closeGroup(pos)
	case '|':
		err = p.alternate(pos)
	case '\\':
		p.escaped = true
	default:
		p.seq = append(p.seq, NewChar(c))
	}
	return err
}

func (p *parser) openGroup() {
	p.stack = append(p.stack, frame{seq: p.seq, alt: p.alt})
	p.seq = nil
	p.alt = nil
}

// closeGroup folds the current group and appends it to the enclosing
// sequence. An empty group contributes nothing.
func (p *parser) closeGroup(pos int) error {
	if len(p.stack) == 0 {
		return errInvalidRightParen(pos)
	}
	outer := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.seq) > 0 {
		p.alt = append(p.alt, NewSeq(p.seq...))
	}
	if group := foldOr(p.alt); group != nil {
		outer.seq = append(outer.seq, group)
	}
	p.seq = outer.seq
	p.alt = outer.alt
	return nil
}

func (p *parser) alternate(pos int) error {
	if len(p.seq) == 0 {
		return errNoPrev(pos)
	}
	p.alt = append(p.alt, NewSeq(p.seq...))
	p.seq = nil
	return nil
}

// finish applies the end-of-input checks. A trailing lone backslash adds
// nothing to the tree.
func (p *parser) finish() (*Node, error) {
	if len(p.stack) > 0 {
		return nil, &ParseError{Kind: NoRightParen, Pos: NoPos}
	}
	if len(p.seq) > 0 {
		p.alt = append(p.alt, NewSeq(p.seq...))
	}
	root := foldOr(p.alt)
	if root == nil {
		return nil, &ParseError{Kind: Empty, Pos: NoPos}
	}
	return root, nil
}

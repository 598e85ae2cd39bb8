package nfa

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/resyntax/syntax"
)

// hole is a transition left open in a fragment: the next target of a
// ByteRange or Epsilon state, or the right target of a Split state.
type hole struct {
	id    StateID
	split bool
}

// frag is a compiled piece of automaton with one entry and open exits.
type frag struct {
	start StateID
	holes []hole
}

// Compiler compiles syntax trees into Thompson NFAs
type Compiler struct {
	builder *Builder
}

// NewCompiler creates a new NFA compiler
func NewCompiler() *Compiler {
	return &Compiler{builder: NewBuilder()}
}

// Compile compiles tree into an NFA using a fresh Compiler.
func Compile(tree *syntax.Node) (*NFA, error) {
	return NewCompiler().Compile(tree)
}

// Compile compiles tree into an NFA.
//
// The tree is walked in post-order with an explicit stack, so nesting depth
// is bounded only by memory. Quantifier and alternation splits put the
// greedy or leftmost choice on the left.
func (c *Compiler) Compile(tree *syntax.Node) (*NFA, error) {
	if tree == nil {
		return nil, &BuildError{Message: "nil syntax tree", StateID: InvalidState}
	}
	c.builder = NewBuilder()

	type item struct {
		node     *syntax.Node
		expanded bool
	}
	stack := []item{{node: tree}}
	var frags []frag

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !top.expanded && len(top.node.Sub) > 0 {
			stack = append(stack, item{node: top.node, expanded: true})
			for i := len(top.node.Sub) - 1; i >= 0; i-- {
				stack = append(stack, item{node: top.node.Sub[i]})
			}
			continue
		}

		k := len(top.node.Sub)
		f, err := c.compileNode(top.node, frags[len(frags)-k:])
		if err != nil {
			return nil, err
		}
		frags = append(frags[:len(frags)-k], f)
	}

	root := frags[0]
	match := c.builder.AddMatch()
	if err := c.patch(root.holes, match); err != nil {
		return nil, err
	}
	c.builder.SetStart(root.start)

	return c.builder.Build()
}

// compileNode builds the fragment for n from the fragments of its children.
func (c *Compiler) compileNode(n *syntax.Node, subs []frag) (frag, error) {
	switch n.Op {
	case syntax.OpChar:
		return c.compileChar(n.Char), nil

	case syntax.OpSeq:
		if len(subs) == 0 {
			eps := c.builder.AddEpsilon(InvalidState)
			return frag{start: eps, holes: []hole{{id: eps}}}, nil
		}
		for i := 1; i < len(subs); i++ {
			if err := c.patch(subs[i-1].holes, subs[i].start); err != nil {
				return frag{}, err
			}
		}
		return frag{start: subs[0].start, holes: subs[len(subs)-1].holes}, nil

	case syntax.OpOr:
		if len(subs) != 2 {
			return frag{}, c.arityError(n, 2)
		}
		split := c.builder.AddSplit(subs[0].start, subs[1].start)
		holes := make([]hole, 0, len(subs[0].holes)+len(subs[1].holes))
		holes = append(holes, subs[0].holes...)
		holes = append(holes, subs[1].holes...)
		return frag{start: split, holes: holes}, nil

	case syntax.OpStar, syntax.OpPlus, syntax.OpQuestion:
		if len(subs) != 1 {
			return frag{}, c.arityError(n, 1)
		}
		return c.compileRepetition(n.Op, subs[0])

	default:
		return frag{}, &BuildError{
			Message: fmt.Sprintf("unsupported node %s", n.Op),
			StateID: InvalidState,
		}
	}
}

// compileChar chains one ByteRange state per byte of the UTF-8 encoding.
func (c *Compiler) compileChar(r rune) frag {
	encoded := utf8.AppendRune(nil, r)

	first, prev := InvalidState, InvalidState
	for _, b := range encoded {
		id := c.builder.AddByteRange(b, b, InvalidState)
		if prev == InvalidState {
			first = id
		} else {
			// prev is a ByteRange state, so Patch cannot fail.
			_ = c.builder.Patch(prev, id)
		}
		prev = id
	}
	return frag{start: first, holes: []hole{{id: prev}}}
}

func (c *Compiler) compileRepetition(op syntax.Op, sub frag) (frag, error) {
	split := c.builder.AddSplit(sub.start, InvalidState)
	exit := hole{id: split, split: true}

	switch op {
	case syntax.OpStar:
		// split -> sub -> split, exit on the right
		if err := c.patch(sub.holes, split); err != nil {
			return frag{}, err
		}
		return frag{start: split, holes: []hole{exit}}, nil

	case syntax.OpPlus:
		// sub -> split -> sub, exit on the right
		if err := c.patch(sub.holes, split); err != nil {
			return frag{}, err
		}
		return frag{start: sub.start, holes: []hole{exit}}, nil

	default:
		// split -> sub, or skip it on the right
		return frag{start: split, holes: append(sub.holes, exit)}, nil
	}
}

// patch points every hole at target.
func (c *Compiler) patch(holes []hole, target StateID) error {
	for _, h := range holes {
		var err error
		if h.split {
			err = c.builder.PatchSplit(h.id, c.builder.states[h.id].left, target)
		} else {
			err = c.builder.Patch(h.id, target)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) arityError(n *syntax.Node, want int) error {
	return &BuildError{
		Message: fmt.Sprintf("%s node has %d children, want %d", n.Op, len(n.Sub), want),
		StateID: InvalidState,
	}
}

// Package syntax parses textual regular-expression patterns into an abstract
// syntax tree.
//
// The supported syntax is intentionally small:
//   - literal characters
//   - postfix quantifiers: + (one or more), * (zero or more), ? (zero or one)
//   - alternation with |
//   - grouping with ( and )
//   - escaping of the metacharacters \ ( ) | + * ? with a backslash
//
// The parser is a single-pass scanner that keeps nested groups on an explicit
// stack, so nesting depth is bounded by memory rather than by the goroutine
// stack.
//
// Basic usage:
//
//	tree, err := syntax.Parse("a(b|c)+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tree) // Seq([Char('a'), Plus(Or(Seq([Char('b')]), Seq([Char('c')])))])
package syntax

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Op identifies the kind of a Node.
type Op uint8

const (
	// OpChar matches a single literal character (Node.Char).
	OpChar Op = iota + 1

	// OpPlus matches Sub[0] one or more times.
	OpPlus

	// OpStar matches Sub[0] zero or more times.
	OpStar

	// OpQuestion matches Sub[0] zero or one time.
	OpQuestion

	// OpOr matches Sub[0] or Sub[1].
	OpOr

	// OpSeq matches Sub[0], Sub[1], ... in order.
	OpSeq
)

// String returns the name used in the tree rendering.
func (op Op) String() string {
	switch op {
	case OpChar:
		return "Char"
	case OpPlus:
		return "Plus"
	case OpStar:
		return "Star"
	case OpQuestion:
		return "Question"
	case OpOr:
		return "Or"
	case OpSeq:
		return "Seq"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Node is a node of the syntax tree.
//
// The shape of Sub depends on Op:
//   - OpChar: no children, the character is in Char
//   - OpPlus, OpStar, OpQuestion: exactly one child
//   - OpOr: exactly two children (left, right)
//   - OpSeq: one or more children, in pattern order
//
// Every child is owned by exactly one parent. Trees returned by Parse are
// never mutated afterwards.
type Node struct {
	Op   Op
	Char rune
	Sub  []*Node
}

// NewChar returns a node matching the literal character c.
func NewChar(c rune) *Node {
	return &Node{Op: OpChar, Char: c}
}

// NewPlus wraps sub in a one-or-more quantifier.
func NewPlus(sub *Node) *Node {
	return &Node{Op: OpPlus, Sub: []*Node{sub}}
}

// NewStar wraps sub in a zero-or-more quantifier.
func NewStar(sub *Node) *Node {
	return &Node{Op: OpStar, Sub: []*Node{sub}}
}

// NewQuestion wraps sub in a zero-or-one quantifier.
func NewQuestion(sub *Node) *Node {
	return &Node{Op: OpQuestion, Sub: []*Node{sub}}
}

// NewOr returns the alternation of left and right.
func NewOr(left, right *Node) *Node {
	return &Node{Op: OpOr, Sub: []*Node{left, right}}
}

// NewSeq returns the concatenation of subs.
func NewSeq(subs ...*Node) *Node {
	return &Node{Op: OpSeq, Sub: subs}
}

// newRepetition builds the quantifier node for op.
func newRepetition(op Op, sub *Node) *Node {
	return &Node{Op: op, Sub: []*Node{sub}}
}

// Equal reports whether n and other describe the same tree.
func (n *Node) Equal(other *Node) bool {
	type pair struct{ a, b *Node }
	stack := []pair{{n, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Op != p.b.Op || p.a.Char != p.b.Char || len(p.a.Sub) != len(p.b.Sub) {
			return false
		}
		for i := range p.a.Sub {
			stack = append(stack, pair{p.a.Sub[i], p.b.Sub[i]})
		}
	}
	return true
}

// String renders the tree in a compact debug form, for example
// Or(Seq([Char('a')]), Seq([Char('b')])).
func (n *Node) String() string {
	var b strings.Builder
	render(n, func(n *Node) (string, string) {
		switch n.Op {
		case OpChar:
			return "Char('" + string(n.Char) + "')", ""
		case OpSeq:
			return "Seq([", "])"
		default:
			return n.Op.String() + "(", ")"
		}
	}, ", ", "<nil>", &b)
	return b.String()
}

// MarshalJSON encodes the tree as nested {"op", "char", "sub"} objects.
// encoding/json rejects output nested deeper than 10000 levels.
func (n *Node) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	render(n, func(n *Node) (string, string) {
		if n.Op == OpChar {
			char, _ := json.Marshal(string(n.Char))
			return `{"op":"Char","char":` + string(char) + "}", ""
		}
		if len(n.Sub) == 0 {
			return `{"op":"` + n.Op.String() + `"}`, ""
		}
		return `{"op":"` + n.Op.String() + `","sub":[`, "]}"
	}, ",", "null", &b)
	return []byte(b.String()), nil
}

// render writes n using an explicit stack. For each node, wrap returns the
// text before and after its children; children are separated by sep and
// nil nodes are written as null.
func render(n *Node, wrap func(*Node) (before, after string), sep, null string, b *strings.Builder) {
	type item struct {
		node *Node
		text string
	}
	stack := []item{{node: n, text: null}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node == nil {
			b.WriteString(top.text)
			continue
		}

		before, after := wrap(top.node)
		b.WriteString(before)
		if after == "" {
			continue
		}
		stack = append(stack, item{text: after})
		for i := len(top.node.Sub) - 1; i >= 0; i-- {
			stack = append(stack, item{node: top.node.Sub[i], text: null})
			if i > 0 {
				stack = append(stack, item{text: sep})
			}
		}
	}
}

// Walk visits n and its descendants in pre-order. If fn returns false the
// children of that node are skipped.
//
// Walk uses an explicit stack, so arbitrarily deep trees are safe to visit.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top) {
			continue
		}
		// Push in reverse so the leftmost child is visited first.
		for i := len(top.Sub) - 1; i >= 0; i-- {
			stack = append(stack, top.Sub[i])
		}
	}
}

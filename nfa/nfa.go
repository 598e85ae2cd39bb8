// Package nfa compiles syntax trees into Thompson NFAs and runs them with a
// PikeVM.
//
// The automaton works on bytes: a Char becomes a chain of single-byte
// transitions for its UTF-8 encoding. Quantifiers are greedy and
// alternation prefers its left branch, so searches report the leftmost-first
// match, the same match Go's regexp package reports for an equivalent
// pattern.
//
// Example:
//
//	tree, _ := syntax.Parse("(foo|bar)+")
//	n, _ := nfa.Compile(tree)
//	vm := nfa.NewPikeVM(n)
//	start, end, ok := vm.Search(vm.NewState(), []byte("a foobar"), 0) // 2, 8, true
package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState marks an unset transition target.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which
// transitions are valid.
type StateKind uint8

const (
	// StateMatch is the accepting state.
	StateMatch StateKind = iota

	// StateByteRange consumes one byte in [lo, hi].
	StateByteRange

	// StateSplit follows two epsilon transitions; left has priority.
	StateSplit

	// StateEpsilon follows one epsilon transition.
	StateEpsilon
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateByteRange:
		return "ByteRange"
	case StateSplit:
		return "Split"
	case StateEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State represents a single NFA state with its transitions.
// The state's kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	// ByteRange
	lo, hi byte

	// ByteRange and Epsilon
	next StateID

	// Split
	left, right StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is a match state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// ByteRange returns the byte range for ByteRange states.
// Returns (0, 0, InvalidState) for non-ByteRange states.
func (s *State) ByteRange() (lo, hi byte, next StateID) {
	if s.kind == StateByteRange {
		return s.lo, s.hi, s.next
	}
	return 0, 0, InvalidState
}

// Split returns the two target states for Split states.
// Returns (InvalidState, InvalidState) for non-Split states.
func (s *State) Split() (left, right StateID) {
	if s.kind == StateSplit {
		return s.left, s.right
	}
	return InvalidState, InvalidState
}

// Epsilon returns the target state for Epsilon states.
// Returns InvalidState for non-Epsilon states.
func (s *State) Epsilon() StateID {
	if s.kind == StateEpsilon {
		return s.next
	}
	return InvalidState
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateByteRange:
		if s.lo == s.hi {
			return fmt.Sprintf("State(%d, ByteRange %q -> %d)", s.id, s.lo, s.next)
		}
		return fmt.Sprintf("State(%d, ByteRange [%q-%q] -> %d)", s.id, s.lo, s.hi, s.next)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.left, s.right)
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> %d)", s.id, s.next)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA is a compiled Thompson NFA. It is immutable and safe for concurrent
// use.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is a match state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}

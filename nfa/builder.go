package nfa

import (
	"fmt"

	"github.com/coregx/resyntax/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// Compile drives it; it is exported for tests and hand-built automata.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddMatch adds a match (accepting) state and returns its ID
func (b *Builder) AddMatch() StateID {
	return b.add(State{kind: StateMatch})
}

// AddByteRange adds a state that transitions on a single byte or byte range [lo, hi].
// For a single byte, set lo == hi.
func (b *Builder) AddByteRange(lo, hi byte, next StateID) StateID {
	return b.add(State{kind: StateByteRange, lo: lo, hi: hi, next: next})
}

// AddSplit adds a state with epsilon transitions to two states. The left
// target has priority over the right one.
func (b *Builder) AddSplit(left, right StateID) StateID {
	return b.add(State{kind: StateSplit, left: left, right: right})
}

// AddEpsilon adds a state with a single epsilon transition (no input consumed)
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.add(State{kind: StateEpsilon, next: next})
}

// Patch updates the target of a ByteRange or Epsilon state. This is used
// during compilation to fill in forward references.
func (b *Builder) Patch(stateID, target StateID) error {
	if !b.valid(stateID) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	switch s.kind {
	case StateByteRange, StateEpsilon:
		s.next = target
		return nil
	default:
		return &BuildError{
			Message: fmt.Sprintf("cannot patch state of kind %s", s.kind),
			StateID: stateID,
		}
	}
}

// PatchSplit updates the left and right targets of a Split state
func (b *Builder) PatchSplit(stateID StateID, left, right StateID) error {
	if !b.valid(stateID) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	if s.kind != StateSplit {
		return &BuildError{
			Message: fmt.Sprintf("expected Split state, got %s", s.kind),
			StateID: stateID,
		}
	}

	s.left = left
	s.right = right
	return nil
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed: the start state is set and
// every transition points at an existing state.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if !b.valid(b.start) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
		}
	}

	for i := range b.states {
		s := &b.states[i]
		switch s.kind {
		case StateByteRange, StateEpsilon:
			if !b.valid(s.next) {
				return &BuildError{
					Message: fmt.Sprintf("invalid next state %d", s.next),
					StateID: s.id,
				}
			}
		case StateSplit:
			if !b.valid(s.left) {
				return &BuildError{
					Message: fmt.Sprintf("invalid left state %d", s.left),
					StateID: s.id,
				}
			}
			if !b.valid(s.right) {
				return &BuildError{
					Message: fmt.Sprintf("invalid right state %d", s.right),
					StateID: s.id,
				}
			}
		}
	}

	return nil
}

func (b *Builder) valid(id StateID) bool {
	return id != InvalidState && int(id) < len(b.states)
}

// Build validates and returns the constructed NFA.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &NFA{
		states: b.states,
		start:  b.start,
	}, nil
}

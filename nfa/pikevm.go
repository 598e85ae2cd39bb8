package nfa

import (
	"github.com/coregx/resyntax/internal/conv"
	"github.com/coregx/resyntax/internal/sparse"
)

// PikeVM implements the Pike VM algorithm for NFA execution.
// It simulates the NFA by advancing every live thread one byte at a time,
// so a search takes O(len(haystack) * states) time regardless of the
// pattern.
//
// Threads are kept in priority order. When a thread reaches the match
// state, every lower-priority thread is dropped, which yields
// leftmost-first semantics.
//
// Thread safety: PikeVM is immutable after creation. Each goroutine must
// search with its own PikeVMState.
type PikeVM struct {
	nfa *NFA
}

// PikeVMState holds mutable per-search state for PikeVM.
// It can be reused across searches (for example via sync.Pool) but not
// shared between concurrent searches.
type PikeVMState struct {
	curr, next queue

	// stack drives the epsilon closure without recursion.
	stack []StateID
}

// queue is one generation of threads in priority order.
type queue struct {
	set     *sparse.SparseSet
	threads []thread
}

func (q *queue) reset() {
	q.set.Clear()
	q.threads = q.threads[:0]
}

// thread is a position in the automaton plus where its match began.
type thread struct {
	state StateID
	start int
}

// NewPikeVM creates a new PikeVM for executing the given NFA
func NewPikeVM(nfa *NFA) *PikeVM {
	return &PikeVM{nfa: nfa}
}

// NewState allocates a search state sized for this PikeVM's NFA.
func (p *PikeVM) NewState() *PikeVMState {
	capacity := max(p.nfa.States(), 16)
	newQueue := func() queue {
		return queue{
			set:     sparse.NewSparseSet(conv.IntToUint32(capacity)),
			threads: make([]thread, 0, capacity),
		}
	}
	return &PikeVMState{
		curr:  newQueue(),
		next:  newQueue(),
		stack: make([]StateID, 0, capacity),
	}
}

// NumStates returns the number of NFA states.
func (p *PikeVM) NumStates() int {
	return p.nfa.States()
}

// Search returns the leftmost-first match that starts at or after at.
// Returns (-1, -1, false) if there is none or at is out of range.
func (p *PikeVM) Search(state *PikeVMState, haystack []byte, at int) (start, end int, ok bool) {
	return p.search(state, haystack, at, false)
}

// IsMatch reports whether a match starts at or after at. It stops at the
// first match state reached rather than looking for the preferred one.
func (p *PikeVM) IsMatch(state *PikeVMState, haystack []byte, at int) bool {
	_, _, ok := p.search(state, haystack, at, true)
	return ok
}

func (p *PikeVM) search(state *PikeVMState, haystack []byte, at int, earliest bool) (int, int, bool) {
	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}

	curr, next := &state.curr, &state.next
	curr.reset()

	start, end, matched := -1, -1, false
	for pos := at; ; pos++ {
		// A new thread may begin here until some match is found; it has
		// the lowest priority.
		if !matched {
			p.addThread(state, curr, p.nfa.start, pos)
		}
		if len(curr.threads) == 0 {
			break
		}

		next.reset()
		hasByte := pos < len(haystack)
		var b byte
		if hasByte {
			b = haystack[pos]
		}

		for _, t := range curr.threads {
			s := &p.nfa.states[t.state]
			if s.kind == StateMatch {
				start, end, matched = t.start, pos, true
				if earliest {
					return start, end, true
				}
				// Lower-priority threads cannot beat this match.
				break
			}
			if hasByte && s.lo <= b && b <= s.hi {
				p.addThread(state, next, s.next, t.start)
			}
		}

		if !hasByte {
			break
		}
		curr, next = next, curr
	}

	return start, end, matched
}

// addThread adds the epsilon closure of id to q in priority order.
// States already in q are skipped: an earlier thread reached them with
// higher priority.
func (p *PikeVM) addThread(state *PikeVMState, q *queue, id StateID, start int) {
	stack := append(state.stack[:0], id)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !q.set.Insert(uint32(id)) {
			continue
		}

		s := &p.nfa.states[id]
		switch s.kind {
		case StateEpsilon:
			stack = append(stack, s.next)
		case StateSplit:
			// Push right first so left is explored first.
			stack = append(stack, s.right, s.left)
		default:
			q.threads = append(q.threads, thread{state: id, start: start})
		}
	}
	state.stack = stack
}

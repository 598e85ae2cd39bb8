// Package sparse provides the state set used by NFA simulation.
//
// A sparse set supports constant-time insert, membership and clear over a
// fixed universe [0, capacity) while remembering insertion order. The NFA
// simulator clears one per input byte, which is why Clear must not touch
// every slot.
package sparse

// SparseSet is a set of uint32 values below a fixed capacity.
// The dense slice holds members in insertion order; sparse maps each
// member to its index in dense.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates an empty set accepting values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value and reports whether it was not already present.
// Values at or above the capacity are never stored and report false.
func (s *SparseSet) Insert(value uint32) bool {
	if int(value) >= len(s.sparse) || s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: len(dense) < len(sparse), which fits uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear empties the set without touching the sparse slots.
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no members.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Capacity returns the exclusive upper bound on storable values.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Values returns the members in insertion order. The slice is valid until
// the next Insert or Clear.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}

// Package stateset implements a sparse set of small non-negative integers,
// adapted from a PikeVM "threads alive" tracker into a subset-construction
// helper: besides O(1) membership and insertion it supports canonical
// ordered iteration and a comparison key, since subset identity during NFA
// subset construction is set-equality of NFA-state indices.
package stateset

import "sort"

// Set is a sparse set over the range [0, capacity). Capacity is fixed at
// construction and must cover every index ever inserted.
type Set struct {
	sparse []int32
	dense  []int32
}

// New returns an empty Set over [0, capacity).
func New(capacity int) *Set {
	return &Set{sparse: make([]int32, capacity)}
}

// Contains reports whether i is a member.
func (s *Set) Contains(i int) bool {
	si := s.sparse[i]
	return int(si) < len(s.dense) && int(s.dense[si]) == i
}

// Insert adds i to the set. A repeat insert is a no-op.
func (s *Set) Insert(i int) {
	if s.Contains(i) {
		return
	}
	s.sparse[i] = int32(len(s.dense))
	s.dense = append(s.dense, int32(i))
}

// Union adds every member of other to s.
func (s *Set) Union(other *Set) {
	for _, v := range other.dense {
		s.Insert(int(v))
	}
}

// Len reports the number of members.
func (s *Set) Len() int { return len(s.dense) }

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool { return len(s.dense) == 0 }

// Sorted returns the members in ascending order. The backing array is
// freshly allocated; callers may retain and mutate it.
func (s *Set) Sorted() []int {
	out := make([]int, len(s.dense))
	for i, v := range s.dense {
		out[i] = int(v)
	}
	sort.Ints(out)
	return out
}

// Key returns a canonical string derived from the ascending member list, fit
// for use as a map key when deduplicating subsets (the identity of an
// NFA-state subset during subset construction is exactly this: set equality
// of member indices, nothing else).
func (s *Set) Key() string {
	sorted := s.Sorted()
	buf := make([]byte, 0, len(sorted)*5)
	for _, v := range sorted {
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(buf)
}

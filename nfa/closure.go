package nfa

import (
	"github.com/andi-spajk/tsuquo/internal/stateset"
	"github.com/andi-spajk/tsuquo/token"
)

// EpsilonClosure returns the set of state indices reachable from the state
// addressed by start via zero or more epsilon transitions, always including
// start's own index. IndexStates must have run first. Members are NFA-state
// Index values, not StateIDs — this is what the subset constructor compares
// for subset identity.
func EpsilonClosure(n *NFA, start StateID) *Closure {
	c := newClosure(len(n.indexOf))
	c.addFrom(n, start)
	return c
}

// Closure wraps a stateset.Set, specialized to epsilon-closure bookkeeping
// during subset construction: the set itself handles membership and
// insertion order, and already carries the canonical Key subset identity
// needs (set-equality of NFA-state indices, nothing else).
type Closure struct {
	set *stateset.Set
}

func newClosure(capacity int) *Closure {
	return &Closure{set: stateset.New(capacity)}
}

func (c *Closure) addFrom(n *NFA, id StateID) {
	if id == InvalidState {
		return
	}
	s := n.Region.State(id)
	if c.set.Contains(s.Index) {
		return
	}
	c.set.Insert(s.Index)
	if s.Ch == token.Epsilon {
		c.addFrom(n, s.Out1)
		c.addFrom(n, s.Out2)
	}
}

// Contains reports whether idx is in the closure.
func (c *Closure) Contains(idx int) bool {
	return c.set.Contains(idx)
}

// IsEmpty reports whether the closure has no members.
func (c *Closure) IsEmpty() bool { return c.set.IsEmpty() }

// Len reports the member count.
func (c *Closure) Len() int { return c.set.Len() }

// Sorted returns members in ascending index order.
func (c *Closure) Sorted() []int {
	return c.set.Sorted()
}

// Key returns a canonical string for deduplicating closures as map keys:
// subset identity is exactly set-equality of member indices.
func (c *Closure) Key() string {
	return c.set.Key()
}

// HasAccept reports whether the NFA's accept state index is a member.
func (c *Closure) HasAccept(n *NFA) bool {
	return c.Contains(n.Region.State(n.Accept).Index)
}

// union merges other's members into c.
func (c *Closure) union(other *Closure) {
	c.set.Union(other.set)
}

// Delta computes ⋃ ε-closure(s.out1) over every state s in q labeled c,
// i.e. the subset constructor's one-character move relation (spec §4.4
// step 3). An empty result means q has no transition on c.
func Delta(n *NFA, q *Closure, c byte) *Closure {
	out := newClosure(len(n.indexOf))
	for _, idx := range q.set.Sorted() {
		s := n.Region.State(n.indexOf[idx])
		if s.Ch != token.Epsilon && byte(s.Ch) == c {
			out.union(EpsilonClosure(n, s.Out1))
		}
	}
	return out
}

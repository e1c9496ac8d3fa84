// Package nfa builds Thompson NFAs for tsuquo's regex grammar: the three
// classical primitives (literal, concatenation, alternation), the
// closure/optional/positive-closure transforms, and a balanced-tree
// character-range builder. States live in an arena (a "region," in the
// original implementation's terms) addressed by StateID rather than by
// pointer, so that two NFAs can be merged by a single slice append instead
// of a graph walk.
package nfa

import (
	"github.com/andi-spajk/tsuquo/internal/conv"
	"github.com/andi-spajk/tsuquo/token"
)

// StateID addresses a State within a Region. It is never meaningful across
// two different Regions.
type StateID int32

// InvalidState marks an unused out-edge.
const InvalidState StateID = -1

// State is one Thompson-construction state: at most two outgoing epsilon
// edges, or exactly one labeled edge. A non-epsilon label always leaves Out2
// unused — this is the Thompson invariant the builder preserves throughout.
//
// Index is a separate, later-assigned numbering (see IndexStates): StateID
// is where the state lives in its Region; Index is its position in a
// depth-first enumeration from the NFA's start, used as the identity for
// ε-closures and subset construction. Index is -1 until IndexStates runs.
type State struct {
	Out1, Out2 StateID
	Ch         token.Token
	Index      int
}

// Region is the arena that owns every state ever allocated for a family of
// NFAs under construction. Destroying an NFA in the original implementation
// freed exactly its region; here, letting the Region become unreachable is
// enough.
type Region struct {
	states []State
}

// Len reports how many states the region owns.
func (r *Region) Len() int { return len(r.states) }

// State returns a pointer to the state addressed by id, for direct mutation.
func (r *Region) State(id StateID) *State { return &r.states[id] }

func (r *Region) alloc(ch token.Token) StateID {
	r.states = append(r.states, State{Out1: InvalidState, Out2: InvalidState, Ch: ch, Index: -1})
	// StateID is int32; guard the narrowing the same way the teacher's
	// arena-growth checks do (e.g. dfa/lazy/cache.go's maxStates bound)
	// rather than silently wrapping a runaway allocation.
	id := conv.IntToUint32(len(r.states) - 1)
	return StateID(id)
}

// Merge appends src's states onto r and returns the offset that must be
// added to any StateID that was valid in src's space to obtain its new
// position in r's space. Out-edges inside the appended states are
// themselves shifted by the same offset, since they refer to siblings
// within the same original region.
func (r *Region) Merge(src *Region) StateID {
	offset := StateID(len(r.states))
	for _, s := range src.states {
		if s.Out1 != InvalidState {
			s.Out1 += offset
		}
		if s.Out2 != InvalidState {
			s.Out2 += offset
		}
		r.states = append(r.states, s)
	}
	return offset
}

// NFA is a Thompson-construction fragment: a start state, an accept state,
// the alphabet of literal labels appearing anywhere in it, and the region
// owning every reachable state.
type NFA struct {
	Start, Accept StateID
	Alphabet      Alphabet
	Size          int
	Region        *Region

	// indexOf maps a post-IndexStates Index back to the StateID that holds
	// it. Populated by IndexStates; nil beforehand.
	indexOf []StateID
}

// StateByIndex returns the StateID whose Index field equals idx. Valid only
// after IndexStates has run.
func (n *NFA) StateByIndex(idx int) StateID {
	return n.indexOf[idx]
}

// Indexed reports whether IndexStates has run. Subset construction requires
// this: subset identity is set-equality of NFA-state indices, not StateIDs.
func (n *NFA) Indexed() bool {
	return n.indexOf != nil
}

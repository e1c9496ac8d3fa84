// Package dfa implements the subset construction (Rabin-Scott): turning an
// indexed Thompson NFA into a deterministic finite automaton by enumerating
// ε-closures of NFA-state subsets.
package dfa

import (
	"github.com/andi-spajk/tsuquo/internal/conv"
	"github.com/andi-spajk/tsuquo/nfa"
)

// StateID addresses a State within a DFA's arena.
type StateID int32

// InvalidState marks an unused out-edge.
const InvalidState StateID = -1

// Dead is the sentinel transition-table value for "no transition on this
// character from this state." It is never a real state index; it exists
// only in Delta entries.
const Dead = -1

// State is a DFA state: a dense array of out-edges indexed by alphabet
// position, a monotonically assigned index, an accept flag, and the
// originating NFA-state subset that produced it.
type State struct {
	Outs         []StateID
	Index        int
	IsAccept     bool
	Constituents *nfa.Closure
}

// DFA holds the start state, the compacted alphabet, the accept set, the
// state arena, and — once ComputeTransitionTable has run — a rectangular
// transition table keyed by state index and alphabet position.
type DFA struct {
	Start    StateID
	States   []*State // arena; index i holds the state with StateID(i)
	Accepts  map[StateID]bool
	Alphabet []byte   // compacted alphabet, sorted ascending
	Mappings [128]int8 // ASCII byte -> alphabet position, or -1

	Delta [][]int // [Size][len(Alphabet)], Dead where absent
	Size  int
}

// State returns the state addressed by id.
func (d *DFA) State(id StateID) *State { return d.States[id] }

func (d *DFA) newState(alphaSize int) StateID {
	s := &State{Outs: make([]StateID, alphaSize), Index: len(d.States)}
	for i := range s.Outs {
		s.Outs[i] = InvalidState
	}
	d.States = append(d.States, s)
	// Same overflow guard as nfa.Region.alloc: StateID is int32.
	id := conv.IntToUint32(s.Index)
	return StateID(id)
}

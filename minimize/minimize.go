// Package minimize implements Hopcroft-style partition refinement over a
// computed DFA (spec §4.5): an indistinguishability table refined to a
// fixed point, equivalence classes collapsed into minimal states, and a
// compact inverse transition table (destination-keyed character bitsets)
// for the emitter.
//
// The original implementation's `merge` matrix was tri-state (0 =
// distinguishable, 1 = indistinguishable, -1 = already visited during class
// collection), conflating two concerns in one cell. Per the design notes
// this is split in two here: a `distinguishable [][]bool` matrix and a
// separate `visited []bool` row-collection marker.
package minimize

import "github.com/andi-spajk/tsuquo/dfa"

// MinimalDFA holds the minimized automaton plus the inverse transition
// table the emitter renders from.
type MinimalDFA struct {
	Start   int
	Accepts map[int]bool
	States  []*State // index = minimal state index

	// Delta[src][dst] is the 128-bit bitset of characters that transition
	// from minimal state src to dst.
	Delta []map[int]*Bitset

	distinguishable [][]bool // (N-1) x N upper triangle, i<j; true = distinguishable
	visited         []bool   // per pre-minimization row: already swept into a class
	classOf         []int    // pre-minimization DFA-state index -> minimal state index
	size            int      // N, the pre-minimization DFA size
}

// State is one minimal-DFA state: an index, an accept flag, and the set of
// pre-minimization DFA-state indices that collapsed into it.
type State struct {
	Index                 int
	IsAccept              bool
	ConstituentDFAIndices []int
}

// Bitset is the 128-bit label set used by the inverse transition table: two
// 64-bit words, Lo for ASCII [0,63] and Hi for [64,127].
type Bitset struct {
	Lo, Hi uint64
}

// Set marks byte c as present.
func (b *Bitset) Set(c byte) {
	if c < 64 {
		b.Lo |= 1 << uint(c)
	} else {
		b.Hi |= 1 << uint(c-64)
	}
}

// Minimize runs the full pipeline: build the indistinguishability table,
// refine it to a fixed point, collapse rows into equivalence classes, and
// construct the inverse transition table. d must already have its
// transition table computed (dfa.ComputeTransitionTable).
func Minimize(d *dfa.DFA) (*MinimalDFA, error) {
	if d.Delta == nil {
		return nil, &MinimizeError{Msg: "dfa.ComputeTransitionTable must run before minimization", Err: ErrTransitionTableMissing}
	}

	m := newMinimalDFA(d)
	if err := Quotient(m, d); err != nil {
		return nil, err
	}
	constructMinimalStates(m, d)
	constructTransitionTable(m, d)
	return m, nil
}

func newMinimalDFA(d *dfa.DFA) *MinimalDFA {
	n := d.Size
	m := &MinimalDFA{size: n}

	if n <= 1 {
		return m
	}

	m.distinguishable = make([][]bool, n-1)
	for i := range m.distinguishable {
		m.distinguishable[i] = make([]bool, n)
	}
	m.visited = make([]bool, n-1)

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			iAccept := d.Accepts[dfa.StateID(i)]
			jAccept := d.Accepts[dfa.StateID(j)]
			if iAccept != jAccept {
				m.distinguishable[i][j] = true
			}
		}
	}
	return m
}

package dfa

import "github.com/andi-spajk/tsuquo/nfa"

// Subset builds a DFA from an indexed NFA by the classical Rabin-Scott
// algorithm (spec §4.4): it computes out-edges between DFA states but does
// not populate Delta or Size — call ComputeTransitionTable for that. Kept
// as a separate step to mirror the original implementation's split between
// subset() (graph only) and convert_nfa_to_dfa() (graph + flat table).
func Subset(n *nfa.NFA) (*DFA, error) {
	if !n.Indexed() {
		return nil, &ConstructError{Msg: "nfa.IndexStates must run before subset construction", Err: ErrNotIndexed}
	}

	d := &DFA{Alphabet: n.Alphabet.Bytes()}
	for i := range d.Mappings {
		d.Mappings[i] = -1
	}
	for i, c := range d.Alphabet {
		d.Mappings[c] = int8(i)
	}
	alphaSize := len(d.Alphabet)

	region := make(map[string]StateID)

	q0 := nfa.EpsilonClosure(n, n.Start)
	start := d.newState(alphaSize)
	d.Start = start
	region[q0.Key()] = start
	d.State(start).Constituents = q0
	d.State(start).IsAccept = q0.HasAccept(n)

	type item struct {
		q     *nfa.Closure
		owner StateID
	}
	worklist := []item{{q0, start}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for i, c := range d.Alphabet {
			t := nfa.Delta(n, cur.q, c)
			if t.IsEmpty() {
				continue
			}

			if existing, ok := region[t.Key()]; ok {
				d.State(cur.owner).Outs[i] = existing
				if t.HasAccept(n) {
					d.State(existing).IsAccept = true
				}
				continue
			}

			next := d.newState(alphaSize)
			region[t.Key()] = next
			d.State(next).Constituents = t
			d.State(next).IsAccept = t.HasAccept(n)
			d.State(cur.owner).Outs[i] = next

			worklist = append(worklist, item{t, next})
		}
	}

	d.Accepts = make(map[StateID]bool)
	for i, s := range d.States {
		if s.IsAccept {
			d.Accepts[StateID(i)] = true
		}
	}
	return d, nil
}

// ComputeTransitionTable is the post-pass that allocates the rectangular
// Delta table (filled with Dead), sets Size, and fills in every transition
// recorded by Subset's out-edges.
func ComputeTransitionTable(d *DFA) {
	d.Size = len(d.States)
	alphaSize := len(d.Alphabet)

	d.Delta = make([][]int, d.Size)
	for i := range d.Delta {
		row := make([]int, alphaSize)
		for j := range row {
			row[j] = Dead
		}
		d.Delta[i] = row
	}

	for _, s := range d.States {
		for i, out := range s.Outs {
			if out != InvalidState {
				d.Delta[s.Index][i] = d.State(out).Index
			}
		}
	}
}

// ConvertNFAToDFA runs Subset followed by ComputeTransitionTable, producing
// a DFA with a fully populated transition table in one call.
func ConvertNFAToDFA(n *nfa.NFA) (*DFA, error) {
	d, err := Subset(n)
	if err != nil {
		return nil, err
	}
	ComputeTransitionTable(d)
	return d, nil
}

package minimize

import "github.com/andi-spajk/tsuquo/dfa"

// constructTransitionTable builds the minimal DFA's inverse transition table
// (spec §4.5.4): for each minimal state, one constituent DFA-state index is
// representative of the whole class (every constituent behaves identically
// by construction), so its outgoing transitions are replayed once, with each
// destination DFA state mapped through classOf and the traversed character
// folded into that destination's bitset.
func constructTransitionTable(m *MinimalDFA, d *dfa.DFA) {
	m.Delta = make([]map[int]*Bitset, len(m.States))
	for i := range m.Delta {
		m.Delta[i] = make(map[int]*Bitset)
	}

	for _, s := range m.States {
		h := s.ConstituentDFAIndices[0]
		for ci, c := range d.Alphabet {
			o := d.Delta[h][ci]
			if o == dfa.Dead {
				continue
			}
			dst := m.classOf[o]
			bs, ok := m.Delta[s.Index][dst]
			if !ok {
				bs = &Bitset{}
				m.Delta[s.Index][dst] = bs
			}
			bs.Set(c)
		}
	}
}

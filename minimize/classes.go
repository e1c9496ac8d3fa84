package minimize

import "github.com/andi-spajk/tsuquo/dfa"

// constructMinimalStates collapses the refined indistinguishability table
// into equivalence classes (spec §4.5.3). Rows 0..N-2 are swept in order;
// each unvisited row seeds a new class that recursively absorbs every row it
// is still indistinguishable from. A class's own rows are marked visited so
// a later outer iteration never reopens it. Row N-1 never starts a class of
// its own (the outer sweep stops at N-2); if no earlier class absorbed it,
// it becomes a singleton class here.
func constructMinimalStates(m *MinimalDFA, d *dfa.DFA) {
	n := m.size
	m.classOf = make([]int, n)
	for i := range m.classOf {
		m.classOf[i] = -1
	}
	if n == 0 {
		return
	}
	if n == 1 {
		accept := d.Accepts[dfa.StateID(0)]
		m.States = []*State{{Index: 0, IsAccept: accept, ConstituentDFAIndices: []int{0}}}
		m.classOf[0] = 0
		m.Start = 0
		m.Accepts = map[int]bool{}
		if accept {
			m.Accepts[0] = true
		}
		return
	}

	lastSwept := false
	inClass := make([]bool, n)
	var members []int

	var gather func(i int)
	gather = func(i int) {
		if inClass[i] {
			return
		}
		inClass[i] = true
		members = append(members, i)
		if i < n-1 {
			m.visited[i] = true
		} else {
			lastSwept = true
		}
		for j := i + 1; j < n; j++ {
			if i < n-1 && !m.distinguishable[i][j] && !inClass[j] {
				gather(j)
			}
		}
	}

	for i := 0; i < n-1; i++ {
		if m.visited[i] {
			continue
		}
		members = nil
		gather(i)

		idx := len(m.States)
		accept := false
		for _, c := range members {
			m.classOf[c] = idx
			if d.Accepts[dfa.StateID(c)] {
				accept = true
			}
		}
		m.States = append(m.States, &State{
			Index:                 idx,
			IsAccept:              accept,
			ConstituentDFAIndices: append([]int(nil), members...),
		})
	}

	if !lastSwept {
		idx := len(m.States)
		accept := d.Accepts[dfa.StateID(n-1)]
		m.classOf[n-1] = idx
		m.States = append(m.States, &State{Index: idx, IsAccept: accept, ConstituentDFAIndices: []int{n - 1}})
	}

	m.Start = m.classOf[0]
	m.Accepts = map[int]bool{}
	for _, s := range m.States {
		if s.IsAccept {
			m.Accepts[s.Index] = true
		}
	}
}

package minimize

import "github.com/andi-spajk/tsuquo/dfa"

// Quotient refines m's indistinguishability table to a fixed point (spec
// §4.5.2): repeatedly re-evaluating every pair still marked indistinguishable
// until no cell changes. Termination is guaranteed because cells only ever
// flip from indistinguishable to distinguishable.
func Quotient(m *MinimalDFA, d *dfa.DFA) error {
	if m.size <= 1 {
		return nil
	}
	for {
		changed := false
		for i := 0; i < m.size-1; i++ {
			for j := i + 1; j < m.size; j++ {
				if m.distinguishable[i][j] {
					continue
				}
				if Distinguishable(i, j, m, d) {
					m.distinguishable[i][j] = true
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}
}

package minimize

import "github.com/andi-spajk/tsuquo/dfa"

// Distinguishable reports whether pre-minimization DFA states i and j are
// distinguishable (spec §4.5.2). i or j may be dfa.Dead, representing the
// implicit dead state: treated as non-accepting, with every transition
// looping back to itself.
//
// The recursion can revisit the same pair through a cycle in the DFA
// (spec §9's flagged open question); a seen-set guards against that by
// assuming indistinguishable on a revisit and letting the enclosing calls
// reconcile once their own alphabet scan completes, exactly as the design
// notes suggest.
func Distinguishable(i, j int, m *MinimalDFA, d *dfa.DFA) bool {
	return distinguish(i, j, m, d, make(map[[2]int]bool))
}

func distinguish(i, j int, m *MinimalDFA, d *dfa.DFA, seen map[[2]int]bool) bool {
	if i == j {
		return false
	}

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if i != dfa.Dead && j != dfa.Dead && m.distinguishable[lo][hi] {
		return true
	}

	iAccept := i != dfa.Dead && d.Accepts[dfa.StateID(i)]
	jAccept := j != dfa.Dead && d.Accepts[dfa.StateID(j)]
	if iAccept != jAccept {
		return true
	}

	key := [2]int{lo, hi}
	if seen[key] {
		return false
	}
	seen[key] = true
	defer delete(seen, key)

	for ci := range d.Alphabet {
		ip, jp := dfa.Dead, dfa.Dead
		if i != dfa.Dead {
			ip = d.Delta[i][ci]
		}
		if j != dfa.Dead {
			jp = d.Delta[j][ci]
		}
		if distinguish(ip, jp, m, d, seen) {
			return true
		}
	}
	return false
}

package nfa

// IndexStates performs a depth-first traversal from n.Start, assigning each
// reachable state a sequential Index (0, 1, 2, ...) in visitation order,
// guarding against the cycles Star and Plus introduce. It returns the
// highest index assigned, i.e. n.Size-1 for a fully reachable NFA.
//
// Subset construction depends on this having run: subset identity is
// defined as set-equality of these indices, not of StateIDs.
func IndexStates(n *NFA) int {
	visited := make([]bool, n.Region.Len())
	indexOf := make([]StateID, n.Region.Len())
	next := 0

	var visit func(id StateID)
	visit = func(id StateID) {
		if id == InvalidState || visited[id] {
			return
		}
		visited[id] = true
		s := n.Region.State(id)
		s.Index = next
		indexOf[next] = id
		next++
		visit(s.Out1)
		visit(s.Out2)
	}
	visit(n.Start)

	n.indexOf = indexOf[:next]
	return next - 1
}

package nfa

import "github.com/andi-spajk/tsuquo/token"

// Literal builds a two-state NFA: a start-to-accept transition labeled ch.
// ch must be a literal token (token.Token.IsLiteral); callers enforce this.
func Literal(ch token.Token) *NFA {
	r := &Region{}
	start := r.alloc(ch)
	accept := r.alloc(token.Epsilon)
	r.State(start).Out1 = accept

	var alphabet Alphabet
	alphabet.Set(byte(ch))

	return &NFA{Start: start, Accept: accept, Alphabet: alphabet, Size: 2, Region: r}
}

// Concat rewires a.accept.out1 = b.start (a's old accept becomes a
// forwarding bridge, still epsilon-labeled) and sets the result's accept to
// b's accept. Either operand being nil yields the other unchanged. a's
// region absorbs b's; b must not be used after this call.
func Concat(a, b *NFA) *NFA {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	offset := a.Region.Merge(b.Region)
	bStart := b.Start + offset
	bAccept := b.Accept + offset

	a.Region.State(a.Accept).Out1 = bStart
	a.Accept = bAccept
	a.Alphabet.Union(b.Alphabet)
	a.Size += b.Size
	return a
}

// Alternate builds a new start with epsilon branches into a.start and
// b.start, and a new accept reached from both old accepts via epsilon.
// Null-propagating like Concat.
func Alternate(a, b *NFA) *NFA {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	offset := a.Region.Merge(b.Region)
	bStart := b.Start + offset
	bAccept := b.Accept + offset

	newStart := a.Region.alloc(token.Epsilon)
	newAccept := a.Region.alloc(token.Epsilon)

	a.Region.State(newStart).Out1 = a.Start
	a.Region.State(newStart).Out2 = bStart
	a.Region.State(a.Accept).Out1 = newAccept
	a.Region.State(bAccept).Out1 = newAccept

	a.Start = newStart
	a.Accept = newAccept
	a.Alphabet.Union(b.Alphabet)
	a.Size += b.Size + 2
	return a
}

// Star applies Kleene closure: a new start branches to n.start and to a new
// accept (the zero-repetitions skip edge); n's old accept becomes a
// two-way epsilon state forwarding to the new accept and looping back to
// n.start.
func Star(n *NFA) *NFA {
	newStart := n.Region.alloc(token.Epsilon)
	newAccept := n.Region.alloc(token.Epsilon)

	n.Region.State(newStart).Out1 = n.Start
	n.Region.State(newStart).Out2 = newAccept
	n.Region.State(n.Accept).Out1 = newAccept
	n.Region.State(n.Accept).Out2 = n.Start

	n.Start = newStart
	n.Accept = newAccept
	n.Size += 2
	return n
}

// Optional is Star without the repeat-cycle edge: the old accept only
// forwards to the new accept, it never loops back.
func Optional(n *NFA) *NFA {
	newStart := n.Region.alloc(token.Epsilon)
	newAccept := n.Region.alloc(token.Epsilon)

	n.Region.State(newStart).Out1 = n.Start
	n.Region.State(newStart).Out2 = newAccept
	n.Region.State(n.Accept).Out1 = newAccept

	n.Start = newStart
	n.Accept = newAccept
	n.Size += 2
	return n
}

// Plus is Star without the new start's skip edge: at least one repetition
// is mandatory, but the old accept still loops back for further ones.
func Plus(n *NFA) *NFA {
	newStart := n.Region.alloc(token.Epsilon)
	newAccept := n.Region.alloc(token.Epsilon)

	n.Region.State(newStart).Out1 = n.Start
	n.Region.State(n.Accept).Out1 = newAccept
	n.Region.State(n.Accept).Out2 = n.Start

	n.Start = newStart
	n.Accept = newAccept
	n.Size += 2
	return n
}

// Range builds a balanced binary tree of literal NFAs over [lo, hi],
// alternating halves recursively, so that matching any one character in the
// range costs O(log n) rather than a linear chain of alternations. Callers
// must ensure lo <= hi; the parser is responsible for rejecting malformed
// ranges before calling this.
func Range(lo, hi token.Token) *NFA {
	if lo == hi {
		return Literal(lo)
	}
	mid := lo + (hi-lo)/2
	left := Range(lo, mid)
	right := Range(mid+1, hi)
	return Alternate(left, right)
}

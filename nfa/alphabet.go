package nfa

import "math/bits"

// Alphabet is a 128-bit bitset over ASCII byte values (0-127), recording
// every literal label appearing in an NFA. Bits [0,63] live in Lo, bits
// [64,127] in Hi. Kept as two plain uint64 words per the design notes: this
// gives O(1) union and O(popcount) iteration without needing a native
// 128-bit integer type.
//
// Grounded in shape on the teacher's ByteClassSet (nfa/alphabet.go in
// coregex), simplified from its four-word, byte-class-compaction machinery
// down to the two words this grammar's plain ASCII alphabet needs.
type Alphabet struct {
	Lo, Hi uint64
}

// Set marks b as present in the alphabet.
func (a *Alphabet) Set(b byte) {
	if b < 64 {
		a.Lo |= 1 << uint(b)
	} else {
		a.Hi |= 1 << uint(b-64)
	}
}

// Test reports whether b is present.
func (a Alphabet) Test(b byte) bool {
	if b < 64 {
		return a.Lo&(1<<uint(b)) != 0
	}
	return a.Hi&(1<<uint(b-64)) != 0
}

// Union ORs other's bits into a.
func (a *Alphabet) Union(other Alphabet) {
	a.Lo |= other.Lo
	a.Hi |= other.Hi
}

// PopCount returns the number of set bits, i.e. the alphabet's size.
func (a Alphabet) PopCount() int {
	return bits.OnesCount64(a.Lo) + bits.OnesCount64(a.Hi)
}

// Bytes returns every set byte in ascending order. This is the compacted
// alphabet array the subset constructor builds its DFA transition columns
// from (spec §4.4 step 1).
func (a Alphabet) Bytes() []byte {
	out := make([]byte, 0, a.PopCount())
	for i := 0; i < 64; i++ {
		if a.Lo&(1<<uint(i)) != 0 {
			out = append(out, byte(i))
		}
	}
	for i := 0; i < 64; i++ {
		if a.Hi&(1<<uint(i)) != 0 {
			out = append(out, byte(i+64))
		}
	}
	return out
}

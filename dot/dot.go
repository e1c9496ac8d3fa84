// Package dot renders a minimized DFA as a Graphviz DOT digraph: one edge
// per non-empty entry of the inverse transition table, with maximal runs of
// consecutive characters in each edge's label bitset compacted into a
// single character, a `[lohi]` pair, or a `[lo-hi]` range.
package dot

import (
	"fmt"
	"io"
	"sort"

	"github.com/andi-spajk/tsuquo/minimize"
)

// Options controls cosmetic aspects of the rendering. The zero value is a
// reasonable default.
type Options struct {
	// GraphName names the digraph (default "dfa" if empty).
	GraphName string
}

// Write renders m to w as a DOT digraph: left-to-right rank order,
// double-circle nodes for accept states, single-circle nodes for the rest,
// and one edge per populated Delta entry.
func Write(w io.Writer, m *minimize.MinimalDFA, opts Options) error {
	name := opts.GraphName
	if name == "" {
		name = "dfa"
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return err
	}
	fmt.Fprintln(w, "\trankdir=LR;")
	fmt.Fprintln(w, "\tnode [fontname=\"Helvetica\"];")
	fmt.Fprintln(w, "\tedge [fontname=\"Helvetica\"];")
	fmt.Fprintln(w, "\t__start__ [shape=none, label=\"\", width=0];")
	fmt.Fprintf(w, "\t__start__ -> %d;\n", m.Start)

	for _, s := range m.States {
		shape := "circle"
		if s.IsAccept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\t%d [shape=%s, label=\"%d\"];\n", s.Index, shape, s.Index)
	}

	for _, s := range m.States {
		dsts := make([]int, 0, len(m.Delta[s.Index]))
		for dst := range m.Delta[s.Index] {
			dsts = append(dsts, dst)
		}
		sort.Ints(dsts)
		for _, dst := range dsts {
			label := formatLabel(m.Delta[s.Index][dst])
			fmt.Fprintf(w, "\t%d -> %d [label=\"%s\"];\n", s.Index, dst, label)
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// formatLabel scans bs left to right, compacting each maximal run of set
// bits into a single display token, and joins multiple tokens with DOT's
// `\n` literal so Graphviz stacks them inside the edge label.
func formatLabel(bs *minimize.Bitset) string {
	var tokens []string
	i := 0
	for i < 128 {
		if !testBit(bs, i) {
			i++
			continue
		}
		lo := i
		for i < 128 && testBit(bs, i) {
			i++
		}
		hi := i - 1
		tokens = append(tokens, formatRun(byte(lo), byte(hi)))
	}

	out := tokens[0]
	for _, t := range tokens[1:] {
		out += `\n` + t
	}
	return out
}

func formatRun(lo, hi byte) string {
	switch {
	case lo == hi:
		return escape(lo)
	case hi-lo == 1:
		return "[" + escape(lo) + escape(hi) + "]"
	default:
		return "[" + escape(lo) + "-" + escape(hi) + "]"
	}
}

func testBit(bs *minimize.Bitset, i int) bool {
	if i < 64 {
		return bs.Lo&(1<<uint(i)) != 0
	}
	return bs.Hi&(1<<uint(i-64)) != 0
}

// escape renders b as a DOT-safe label fragment, escaping the four
// characters spec'd as special: tab, newline, double quote, and backslash.
func escape(b byte) string {
	switch b {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	default:
		return string(b)
	}
}

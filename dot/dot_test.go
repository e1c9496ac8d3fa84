package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andi-spajk/tsuquo/minimize"
)

func bitset(chars ...byte) *minimize.Bitset {
	bs := &minimize.Bitset{}
	for _, b := range chars {
		bs.Set(b)
	}
	return bs
}

func sampleDFA() *minimize.MinimalDFA {
	return &minimize.MinimalDFA{
		Start:   0,
		Accepts: map[int]bool{1: true},
		States: []*minimize.State{
			{Index: 0, IsAccept: false},
			{Index: 1, IsAccept: true},
		},
		Delta: []map[int]*minimize.Bitset{
			{1: bitset('a')},
			{1: bitset('b', 'c')},
		},
	}
}

func TestWriteBasicShape(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleDFA(), Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"digraph dfa {",
		"rankdir=LR;",
		"0 [shape=circle",
		"1 [shape=doublecircle",
		`0 -> 1 [label="a"];`,
		"}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestWriteGraphName(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleDFA(), Options{GraphName: "mine"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "digraph mine {") {
		t.Fatalf("custom graph name not used:\n%s", buf.String())
	}
}

func TestFormatLabelRuns(t *testing.T) {
	cases := []struct {
		bs   *minimize.Bitset
		want string
	}{
		{bitset('a'), "a"},
		{bitset('a', 'b'), "[ab]"},
		{bitset('a', 'b', 'c'), "[a-c]"},
		{bitset('a', 'c'), `a\nc`},
	}
	for _, c := range cases {
		if got := formatLabel(c.bs); got != c.want {
			t.Errorf("formatLabel(%+v) = %q, want %q", c.bs, got, c.want)
		}
	}
}

func TestEscapeSpecialChars(t *testing.T) {
	cases := map[byte]string{
		'\t': `\t`,
		'\n': `\n`,
		'"':  `\"`,
		'\\': `\\`,
		'a':  "a",
	}
	for b, want := range cases {
		if got := escape(b); got != want {
			t.Errorf("escape(%q) = %q, want %q", b, got, want)
		}
	}
}

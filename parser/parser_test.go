package parser

import (
	"bytes"
	"testing"

	"github.com/andi-spajk/tsuquo/nfa"
)

func mustParse(t *testing.T, src string) *nfa.NFA {
	t.Helper()
	var buf bytes.Buffer
	n, err := Parse([]byte(src), &buf)
	if err != nil {
		t.Fatalf("Parse(%q) = %v, want success; diagnostic:\n%s", src, err, buf.String())
	}
	return n
}

func TestParseValidPatterns(t *testing.T) {
	cases := []string{
		"a",
		"abc",
		"a(b|c)*",
		"(ab|ac)*",
		"who|what|where",
		"(0|(1(01*(00)*0)*1)*)*",
		"for|[f-h]*",
		"[A-Za-z_][A-Za-z0-9_]*",
		"a\\n\\t",
		"\\(\\)\\[\\]\\|\\*\\?\\+\\\\",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			n := mustParse(t, src)
			if n == nil {
				t.Fatal("got nil NFA on success")
			}
		})
	}
}

func TestParseErrorScenarios(t *testing.T) {
	cases := []string{
		"a)",
		"a+*",
		"(",
		"(abc",
		"q|",
		"(ab|",
		"(ab|)",
		"($$$|)",
		"[",
		"[]",
		"[a-c",
		"[q-[]",
		"[X-\\[]",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Parse([]byte(src), &buf)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", src)
			}
			if n != nil {
				t.Fatalf("Parse(%q) returned non-nil NFA alongside an error", src)
			}
			if buf.Len() == 0 {
				t.Fatalf("Parse(%q) reported an error but wrote no diagnostic", src)
			}
		})
	}
}

// TestLiteralAlphabetInvariant checks spec property 1: a single literal
// byte compiles to a two-state NFA whose alphabet has exactly that bit set.
func TestLiteralAlphabetInvariant(t *testing.T) {
	n := mustParse(t, "q")
	if n.Size != 2 {
		t.Fatalf("size = %d, want 2", n.Size)
	}
	if n.Alphabet.PopCount() != 1 || !n.Alphabet.Test('q') {
		t.Fatalf("alphabet = %+v, want only 'q' set", n.Alphabet)
	}
}

func TestWildcardIsLiteral(t *testing.T) {
	n := mustParse(t, "\x7f")
	if n.Alphabet.PopCount() != 1 || !n.Alphabet.Test(0x7f) {
		t.Fatalf("wildcard did not register in the alphabet: %+v", n.Alphabet)
	}
}

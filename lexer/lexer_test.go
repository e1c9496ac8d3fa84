package lexer

import (
	"bytes"
	"testing"

	"github.com/andi-spajk/tsuquo/token"
)

// TestNext mirrors test_lexer.c's test_lex fixture: "a(b|c)*" tokenizes to
// a literal 'a' followed by the structural tokens for the grouping and
// alternation, then EOF forever after.
func TestNext(t *testing.T) {
	l := New([]byte("a(b|c)*"))
	want := []token.Token{
		token.Token('a'), token.LParen, token.Token('b'), token.Pipe,
		token.Token('c'), token.RParen, token.Star, token.EOF,
	}
	for i, w := range want {
		if got := l.Next(); got != w {
			t.Fatalf("token %d = %v, want %v", i, got, w)
		}
	}
	// EOF keeps being returned on further calls.
	if got := l.Next(); got != token.EOF {
		t.Fatalf("token after EOF = %v, want EOF", got)
	}
}

// TestEscapes mirrors the escapes.txt fixture: every escaped metacharacter
// folds to its literal ASCII value, \n and \t fold to their control bytes,
// and an unrecognized escape becomes TK_ILLEGAL.
func TestEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want token.Token
	}{
		{`\(`, token.Token('(')},
		{`\)`, token.Token(')')},
		{`\[`, token.Token('[')},
		{`\]`, token.Token(']')},
		{`\|`, token.Token('|')},
		{`\*`, token.Token('*')},
		{`\?`, token.Token('?')},
		{`\+`, token.Token('+')},
		{`\\`, token.Token('\\')},
		{`\n`, token.Token('\n')},
		{`\t`, token.Token('\t')},
		{`\z`, token.Illegal},
	}
	for _, c := range cases {
		l := New([]byte(c.src))
		if got := l.Next(); got != c.want {
			t.Errorf("lex(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

// TestEscapedFlag checks that Escaped reports true only for the token just
// produced by a backslash escape, not for a directly-typed byte.
func TestEscapedFlag(t *testing.T) {
	l := New([]byte(`a\(`))
	l.Next()
	if l.Escaped() {
		t.Fatalf("'a' must not be reported as escaped")
	}
	l.Next()
	if !l.Escaped() {
		t.Fatalf("\\( must be reported as escaped")
	}
}

// TestCRLFSkipped checks that literal CR/LF bytes are transparently skipped,
// letting a regex span multiple physical lines.
func TestCRLFSkipped(t *testing.T) {
	l := New([]byte("a\r\nb\n"))
	if got := l.Next(); got != token.Token('a') {
		t.Fatalf("first token = %v, want 'a'", got)
	}
	if got := l.Next(); got != token.Token('b') {
		t.Fatalf("second token = %v, want 'b' (CRLF skipped)", got)
	}
	if got := l.Next(); got != token.EOF {
		t.Fatalf("third token = %v, want EOF (trailing LF skipped)", got)
	}
}

// TestPrintErrorCaretAlignment exercises the caret-positioning arithmetic
// for a plain two-byte source with no tabs or line breaks.
func TestPrintErrorCaretAlignment(t *testing.T) {
	l := New([]byte("ab"))
	l.Next() // 'a'
	l.Next() // 'b', this is the token that receives the caret

	var buf bytes.Buffer
	l.PrintError(&buf, "unexpected token")

	got := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("ERROR: unexpected token, instead found 'b'")) {
		t.Fatalf("missing or malformed message line:\n%s", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("ab\n")) {
		t.Fatalf("missing source line:\n%s", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte(" ^\n")) {
		t.Fatalf("caret not aligned one column past 'a':\n%s", got)
	}
}

// TestPrintErrorEOFCaret checks the extra-space rule for an EOF token: the
// caret belongs one column past the last buffer byte.
func TestPrintErrorEOFCaret(t *testing.T) {
	l := New([]byte("a"))
	l.Next() // 'a'
	l.Next() // EOF

	var buf bytes.Buffer
	l.PrintError(&buf, "expected more input")
	if !bytes.Contains(buf.Bytes(), []byte("instead found end of regex")) {
		t.Fatalf("missing EOF name in diagnostic:\n%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("a\n ^\n")) {
		t.Fatalf("caret must sit one column past the last buffer byte:\n%s", buf.String())
	}
}

// TestPrintErrorSuppressionFlags checks that each of the three independent
// suppression flags removes exactly its own component.
func TestPrintErrorSuppressionFlags(t *testing.T) {
	t.Run("SuppressInsteadFound", func(t *testing.T) {
		l := New([]byte("a"))
		l.Next()
		l.Flags.SuppressInsteadFound = true
		var buf bytes.Buffer
		l.PrintError(&buf, "msg")
		if bytes.Contains(buf.Bytes(), []byte("instead found")) {
			t.Fatalf("suffix not suppressed:\n%s", buf.String())
		}
	})
	t.Run("SuppressLinePrint", func(t *testing.T) {
		l := New([]byte("a"))
		l.Next()
		l.Flags.SuppressLinePrint = true
		var buf bytes.Buffer
		l.PrintError(&buf, "msg")
		if bytes.Contains(buf.Bytes(), []byte("^")) {
			t.Fatalf("caret line not suppressed:\n%s", buf.String())
		}
	})
	t.Run("SuppressMessage", func(t *testing.T) {
		l := New([]byte("a"))
		l.Next()
		l.Flags.SuppressMessage = true
		var buf bytes.Buffer
		l.PrintError(&buf, "msg")
		if buf.Len() != 0 {
			t.Fatalf("nothing should be written, got:\n%s", buf.String())
		}
	})
}

// Package lexer implements the lexical analyzer for tsuquo's regex
// surface syntax (spec: §4.1, §6): a byte-at-a-time scanner that folds
// escape sequences, skips transparent line breaks, and reports positional
// diagnostics with a caret rendering of the source.
package lexer

import (
	"fmt"
	"io"

	"github.com/andi-spajk/tsuquo/token"
)

// Lexer walks a byte buffer and produces one Token at a time. It owns the
// cursor and the diagnostic-suppression flags for a single compilation;
// callers never share a Lexer across compilations (concurrency model,
// spec §5).
type Lexer struct {
	buf     []byte
	pos     int
	token   token.Token
	escaped bool
	Flags   Flags
}

// New constructs a Lexer over buf. buf is not copied; callers must not
// mutate it while the Lexer is in use.
func New(buf []byte) *Lexer {
	return &Lexer{buf: buf}
}

// NewFromBytes is an alias for New, named to mirror the two ingestion
// paths the original control.c exposed (read_file and read_line): a CLI
// reads a file into bytes, but any caller — tests included — can hand the
// lexer a buffer directly.
func NewFromBytes(buf []byte) *Lexer {
	return New(buf)
}

// Token returns the most recently produced token without advancing.
func (l *Lexer) Token() token.Token {
	return l.token
}

// Escaped reports whether the most recently produced token came from a
// backslash escape rather than a directly-typed byte. The parser uses this
// to reject escape-produced bytes as character-range endpoints (see
// parser.allowed): an escape like \[ is a fine standalone class member but
// not a meaningful range bound.
func (l *Lexer) Escaped() bool {
	return l.escaped
}

// getChar returns the next raw byte in the buffer and advances the
// cursor, or token.EOF once the buffer is exhausted. Further calls after
// exhaustion keep returning EOF.
func (l *Lexer) getChar() token.Token {
	if l.pos >= len(l.buf) {
		return token.EOF
	}
	b := l.buf[l.pos]
	l.pos++
	return token.Token(b)
}

// Next fetches and returns the next token, folding escapes and skipping
// transparent line breaks along the way.
func (l *Lexer) Next() token.Token {
	l.escaped = false
	ch := l.getChar()

	for ch == '\r' || ch == '\n' {
		ch = l.getChar()
	}

	if ch == '\\' {
		l.escaped = true
		ch = l.getChar()
		switch ch {
		case '(', ')', '[', '|', '*', '?', '+', ']', '\\':
			// literal value of the escaped metacharacter
		case 'n':
			ch = '\n'
		case 't':
			ch = '\t'
		default:
			ch = token.Illegal
		}
	} else {
		switch ch {
		case '(':
			ch = token.LParen
		case ')':
			ch = token.RParen
		case '[':
			ch = token.LBracket
		case '|':
			ch = token.Pipe
		case '*':
			ch = token.Star
		case '?':
			ch = token.Question
		case '+':
			ch = token.Plus
		case ']':
			ch = token.RBracket
		}
	}

	l.token = ch
	return ch
}

// PrintError writes a diagnostic to w: the message, optionally suffixed
// with ", instead found <token>", followed by a two-line caret display of
// the source with CR/LF stripped. Each component can be suppressed
// independently via l.Flags, matching the original lexer.c's three
// independent suppression flags. CR/LF bytes are dropped from the source
// line and take no caret column.
func (l *Lexer) PrintError(w io.Writer, msg string) {
	if l.Flags.SuppressMessage {
		return
	}

	fmt.Fprintf(w, "ERROR: %s", msg)

	if !l.Flags.SuppressInsteadFound {
		fmt.Fprintf(w, ", instead found %s", l.token.String())
	}
	fmt.Fprintln(w)

	if l.Flags.SuppressLinePrint {
		fmt.Fprintln(w)
		return
	}

	for i := 0; i < len(l.buf); i++ {
		ch := l.buf[i]
		for ch == '\r' || ch == '\n' {
			i++
			if i >= len(l.buf) {
				ch = 0
				break
			}
			ch = l.buf[i]
		}
		if i < len(l.buf) {
			w.Write([]byte{ch})
		}
	}
	fmt.Fprintln(w)

	numSpaces := 0
	tabAlign := 0
	// pos always sits one byte ahead of the token just fetched, which is
	// the one receiving the caret. An EOF token's caret belongs one column
	// past the last buffer byte, so every byte is counted.
	end := l.pos - 1
	if l.token == token.EOF {
		end = len(l.buf)
	}
	for i := 0; i < end && i < len(l.buf); i++ {
		if l.buf[i] == '\r' || l.buf[i] == '\n' {
			continue
		}
		if tabAlign == 8 {
			tabAlign = 0
		}
		if l.buf[i] == '\t' {
			numSpaces += 8 - tabAlign
			tabAlign = 0
		} else {
			numSpaces++
			tabAlign++
		}
	}

	for i := 0; i < numSpaces; i++ {
		w.Write([]byte{' '})
	}

	fmt.Fprint(w, "^\n\n")
}

// Package parser implements tsuquo's recursive-descent grammar: six
// mutually-recursive productions that consume tokens one ahead from a
// lexer.Lexer and drive the nfa package's Thompson constructors to build an
// NFA bottom-up.
//
// Error recovery. Every production that fails calls fail(), which prints
// one diagnostic and suppresses further ones, then returns a *SyntaxError.
// Unlike the original C implementation — which represented "no NFA" and
// "parse failed" with the same NULL pointer, and needed a side-channel
// Abort flag so an enclosing production wouldn't mistake a failed
// alternative for a legitimately absent one — this parser uses ordinary Go
// (*nfa.NFA, error) returns throughout: a non-nil error is checked and
// propagated immediately, before it ever reaches an nfa combinator's own
// null-propagation behavior. lexer.Flags.Abort is still set at the point of
// failure, preserved as the documented cooperative-cancellation signal the
// concurrency model describes, but correctness here rests on the error
// return, not on polling the flag.
package parser

import (
	"io"

	"github.com/andi-spajk/tsuquo/lexer"
	"github.com/andi-spajk/tsuquo/nfa"
	"github.com/andi-spajk/tsuquo/token"
)

// Parser drives a lexer.Lexer one token ahead, building an NFA as it goes.
type Parser struct {
	lex   *lexer.Lexer
	flags *lexer.Flags
	out   io.Writer
}

// New constructs a Parser over l, writing diagnostics to out.
func New(l *lexer.Lexer, out io.Writer) *Parser {
	return &Parser{lex: l, flags: &l.Flags, out: out}
}

// Parse lexes and parses buf in full, writing any diagnostic to out. A
// successful parse requires the token following the grammar's outermost
// regex production to be end-of-input; trailing garbage fails.
func Parse(buf []byte, out io.Writer) (*nfa.NFA, error) {
	l := lexer.New(buf)
	p := New(l, out)
	p.flags.Reset()
	p.advance()

	n, err := p.regex()
	if err != nil {
		return nil, err
	}
	if p.lex.Token() != token.EOF {
		return nil, p.fail(ErrUnexpectedToken, "expected end of input")
	}
	return n, nil
}

func (p *Parser) advance() token.Token {
	return p.lex.Next()
}

func (p *Parser) fail(sentinel error, msg string) error {
	p.lex.PrintError(p.out, msg)
	p.flags.Abort = true
	p.flags.SuppressMessage = true
	return &SyntaxError{Msg: msg, Err: sentinel}
}

// startsGroup reports whether tok can begin a group production: a literal
// byte, an opening paren, or an opening bracket.
func startsGroup(tok token.Token) bool {
	return tok.IsLiteral() || tok == token.LParen || tok == token.LBracket
}

// regex → group gprime
func (p *Parser) regex() (*nfa.NFA, error) {
	g, err := p.group()
	if err != nil {
		return nil, err
	}
	return p.gprime(g)
}

// gprime → group gprime (concatenation)
//
//	| '|' group gprime (alternation)
//	| ε (if lookahead is EOF or ')')
func (p *Parser) gprime(local *nfa.NFA) (*nfa.NFA, error) {
	switch {
	case startsGroup(p.lex.Token()):
		g, err := p.group()
		if err != nil {
			return nil, err
		}
		return p.gprime(nfa.Concat(local, g))

	case p.lex.Token() == token.Pipe:
		p.advance()
		g, err := p.group()
		if err != nil {
			return nil, err
		}
		return p.gprime(nfa.Alternate(local, g))

	case p.lex.Token() == token.EOF || p.lex.Token() == token.RParen:
		return local, nil

	default:
		return nil, p.fail(ErrUnexpectedToken, "expected '|', ')', or pattern")
	}
}

// group → '(' regex ')' quantifier
//
//	| pattern
//	| range
func (p *Parser) group() (*nfa.NFA, error) {
	switch p.lex.Token() {
	case token.LParen:
		p.advance()
		n, err := p.regex()
		if err != nil {
			return nil, err
		}
		if p.lex.Token() != token.RParen {
			return nil, p.fail(ErrUnexpectedToken, "expected ')'")
		}
		p.advance()
		return p.quantifier(n)

	case token.LBracket:
		n, err := p.rangeExpr()
		if err != nil {
			return nil, err
		}
		return p.quantifier(n)

	default:
		return p.pattern()
	}
}

// quantifier → '*' | '?' | '+' | ε
func (p *Parser) quantifier(g *nfa.NFA) (*nfa.NFA, error) {
	switch p.lex.Token() {
	case token.Star:
		p.advance()
		return nfa.Star(g), nil
	case token.Question:
		p.advance()
		return nfa.Optional(g), nil
	case token.Plus:
		p.advance()
		return nfa.Plus(g), nil
	default:
		if p.lex.Token() <= token.Pipe {
			return g, nil
		}
		return nil, p.fail(ErrUnexpectedToken, "expected '*', '?', '+', or a valid continuation")
	}
}

// pattern → literal+ (each followed by optional quantifier)
//
// Each literal is individually quantified, then the results are
// concatenated left-to-right.
func (p *Parser) pattern() (*nfa.NFA, error) {
	var local *nfa.NFA
	count := 0

	for p.lex.Token().IsLiteral() {
		lit := nfa.Literal(p.lex.Token())
		p.advance()

		lit, err := p.quantifier(lit)
		if err != nil {
			return nil, err
		}
		local = nfa.Concat(local, lit)
		count++
	}

	if count == 0 {
		if p.lex.Token() == token.Illegal {
			return nil, p.fail(ErrIllegalEscape, "illegal escape sequence")
		}
		return nil, p.fail(ErrEmptyGroup, "expected literal, '(', or '['")
	}
	return local, nil
}

// range → '[' allowed ']'
func (p *Parser) rangeExpr() (*nfa.NFA, error) {
	p.advance() // consume '['

	n, err := p.allowed()
	if err != nil {
		return nil, err
	}
	if p.lex.Token() != token.RBracket {
		return nil, p.fail(ErrUnexpectedToken, "expected ']'")
	}
	p.advance()
	return n, nil
}

// allowed → ( literal | literal '-' literal )+
//
// x-y becomes range(x, y) (x must not exceed y); a lone literal becomes
// literal(x); successive segments are alternated together.
//
// Range endpoints must be directly-typed bytes, not escape-produced ones:
// an escape like \[ is a fine standalone class member (a literal on its
// own) but not a meaningful range bound (see lexer.Lexer.Escaped).
func (p *Parser) allowed() (*nfa.NFA, error) {
	var local *nfa.NFA
	count := 0

	for p.lex.Token().IsLiteral() && p.lex.Token() <= 0x7E {
		lo := p.lex.Token()
		loEscaped := p.lex.Escaped()
		p.advance()

		var seg *nfa.NFA
		if p.lex.Token() == token.Token('-') {
			p.advance()
			hi := p.lex.Token()
			hiEscaped := p.lex.Escaped()
			if !hi.IsLiteral() || hi > 0x7E {
				return nil, p.fail(ErrUnexpectedToken, "expected range upper bound")
			}
			if loEscaped || hiEscaped {
				return nil, p.fail(ErrIllegalEscape, "range endpoints must not be escape sequences")
			}
			if lo > hi {
				return nil, p.fail(ErrUnexpectedToken, "range's upper bound exceeds left bound")
			}
			p.advance()
			seg = nfa.Range(lo, hi)
		} else {
			seg = nfa.Literal(lo)
		}

		local = nfa.Alternate(local, seg)
		count++
	}

	if count == 0 {
		if p.lex.Token() == token.Illegal {
			return nil, p.fail(ErrIllegalEscape, "illegal escape sequence")
		}
		return nil, p.fail(ErrEmptyGroup, "expected a character or range inside '[...]'")
	}
	return local, nil
}

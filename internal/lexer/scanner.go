package lexer

import (
	"io"

	"github.com/tekwizely/go-parsing/parser"

	"github.com/ravilang/ravilex/internal/intern"
)

// Options configures a Scanner.
//
type Options struct {
	// Strings is the interner for names and string literals.
	// It may be shared by scanners run one after another; nil means a private one.
	//
	Strings *intern.Interner
	// FirstLine is the number of the first line (0 unless set).
	//
	FirstLine int
}

// slot holds either nothing or a scanned token with its error.
//
type slot struct {
	tok  Token
	err  error
	full bool
}

// Scanner hands out tokens with one token of lookahead.
//
type Scanner struct {
	ctx      *LexContext
	tokens   parser.ASTNexter
	current  slot
	ahead    slot
	lastLine int
	err      error // Sticky
}

// Lex creates a Scanner over src with a private interner.
//
func Lex(src []byte) *Scanner {
	s, err := NewScanner(src, Options{})
	if err != nil {
		// Keywords always fit a default page
		//
		panic(err)
	}
	return s
}

// NewScanner creates a Scanner over src.
// Keywords are interned and marked as reserved in opts.Strings, which fails
// only if the arena pages are too small to hold them.
//
func NewScanner(src []byte, opts Options) (*Scanner, error) {
	strings := opts.Strings
	if strings == nil {
		strings = intern.New(intern.Config{})
	}
	if err := ReserveKeywords(strings); err != nil {
		return nil, err
	}
	s := &Scanner{
		ctx:      newLexContext(src, strings, opts.FirstLine),
		lastLine: opts.FirstLine,
	}
	s.tokens = parser.Parse(s.ctx.Tokens, s.cook)
	return s, nil
}

// ReserveKeywords interns every keyword and marks it with its table index.
//
func ReserveKeywords(strings *intern.Interner) error {
	for i, kw := range keywords {
		ref, err := strings.InternString(kw)
		if err != nil {
			return err
		}
		strings.Reserve(ref, i)
	}
	return nil
}

// cook turns each lexer token into a Token, attaching its line and literal.
//
func (s *Scanner) cook(p *parser.Parser) parser.Fn {
	t := p.Next()
	meta := s.ctx.pop()
	p.Emit(Token{Kind: kindOf(t.Type()), Line: meta.line, Literal: meta.lit})
	return s.cook
}

// scan produces the next token from the input.
// Once the input is exhausted it keeps returning the end-of-stream token,
// or the error that stopped the lexer.
//
func (s *Scanner) scan() (Token, error) {
	if s.err == nil {
		v, err := s.tokens.Next()
		switch {
		case err == nil:
			return v.(Token), nil
		case err != io.EOF:
			s.err = err
		default:
			s.err = s.ctx.Err()
		}
	}
	return Token{Kind: TokEOS, Line: s.ctx.Line()}, s.err
}

// Advance consumes and returns the next token.
// A token buffered by Peek is returned without scanning.
//
func (s *Scanner) Advance() (Token, error) {
	if s.current.full {
		s.lastLine = s.current.tok.Line
	}
	if s.ahead.full {
		s.current, s.ahead = s.ahead, slot{}
	} else {
		tok, err := s.scan()
		s.current = slot{tok: tok, err: err, full: true}
	}
	return s.current.tok, s.current.err
}

// Peek returns the token after the current one without consuming it.
// At most one token is ever buffered.
//
func (s *Scanner) Peek() (Token, error) {
	if !s.ahead.full {
		tok, err := s.scan()
		s.ahead = slot{tok: tok, err: err, full: true}
	}
	return s.ahead.tok, s.ahead.err
}

// Current returns the token last returned by Advance.
// ok is false before the first Advance.
//
func (s *Scanner) Current() (tok Token, ok bool) {
	return s.current.tok, s.current.full
}

// Line returns the line the lexer has reached in the input,
// which may be past the current token if a token was peeked.
//
func (s *Scanner) Line() int {
	return s.ctx.Line()
}

// LastLine returns the line of the token consumed before the current one.
//
func (s *Scanner) LastLine() int {
	return s.lastLine
}

// Strings returns the interner backing this scanner.
//
func (s *Scanner) Strings() *intern.Interner {
	return s.ctx.strings
}

// Text returns the text of a name or string token, or "" for other tokens.
//
func (s *Scanner) Text(tok Token) string {
	return string(s.Bytes(tok))
}

// Bytes is Text without the copy. The slice must not be modified.
//
func (s *Scanner) Bytes(tok Token) []byte {
	if ref, ok := tok.Literal.Text(); ok {
		return s.ctx.strings.Bytes(ref)
	}
	return nil
}

// Err returns the error that stopped the scanner, if any.
//
func (s *Scanner) Err() error {
	return s.err
}

package lexer

import (
	"github.com/ravilang/ravilex/internal/intern"
)

// LiteralKind tags the payload carried by a Literal.
//
type LiteralKind uint8

// Literal kinds
//
const (
	LitNone LiteralKind = iota
	LitInteger
	LitFloat
	LitText
)

// Literal is the semantic value of a literal or identifier token.
//
type Literal struct {
	kind LiteralKind
	i    int64
	f    float64
	s    intern.StringRef
}

// IntegerLit wraps an integer value.
//
func IntegerLit(i int64) Literal { return Literal{kind: LitInteger, i: i} }

// FloatLit wraps a float value.
//
func FloatLit(f float64) Literal { return Literal{kind: LitFloat, f: f} }

// TextLit wraps interned text.
//
func TextLit(s intern.StringRef) Literal { return Literal{kind: LitText, s: s} }

// Kind returns the payload tag.
//
func (v Literal) Kind() LiteralKind { return v.kind }

// Integer returns the integer payload.
//
func (v Literal) Integer() (int64, bool) { return v.i, v.kind == LitInteger }

// Float returns the float payload.
//
func (v Literal) Float() (float64, bool) { return v.f, v.kind == LitFloat }

// Text returns the interned text payload.
//
func (v Literal) Text() (intern.StringRef, bool) { return v.s, v.kind == LitText }

// Token is one lexical unit.
// Line is the line the token starts on.
//
type Token struct {
	Kind    Kind
	Line    int
	Literal Literal
}

// Is reports whether the token has kind k.
//
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

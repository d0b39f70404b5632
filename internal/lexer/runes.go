package lexer

import (
	"github.com/tekwizely/go-parsing/lexer"
)

// Runes
//
const (
	runeNewline   = '\n'
	runeReturn    = '\r'
	runeDash      = '-'
	runeEquals    = '='
	runeLAngle    = '<'
	runeRAngle    = '>'
	runeSlash     = '/'
	runeTilde     = '~'
	runeColon     = ':'
	runeDot       = '.'
	runeAt        = '@'
	runeLBracket  = '['
	runeRBracket  = ']'
	runeDQuote    = '"'
	runeSQuote    = '\''
	runeBackSlash = '\\'
)

// twoRuneOps maps an operator rune to the follow-up runes that extend it.
// Each is resolved by peeking exactly one rune.
//
var twoRuneOps = map[rune][]struct {
	next rune
	kind Kind
}{
	runeEquals: {{runeEquals, TokEq}},
	runeLAngle: {{runeEquals, TokLE}, {runeLAngle, TokShl}},
	runeRAngle: {{runeEquals, TokGE}, {runeRAngle, TokShr}},
	runeSlash:  {{runeSlash, TokIDiv}},
	runeTilde:  {{runeEquals, TokNE}},
	runeColon:  {{runeColon, TokDBColon}},
}

// tryPeekRune tries to peek the next rune
//
func tryPeekRune(l *lexer.Lexer) (rune, bool) {
	if l.CanPeek(1) {
		return l.Peek(1), true
	}
	return EOZ, false
}

// peekRuneAt returns the rune n ahead, or EOZ past the end of input.
//
func peekRuneAt(l *lexer.Lexer, n int) rune {
	if l.CanPeek(n) {
		return l.Peek(n)
	}
	return EOZ
}

func peekRuneEquals(l *lexer.Lexer, r rune) bool {
	return l.CanPeek(1) && l.Peek(1) == r
}

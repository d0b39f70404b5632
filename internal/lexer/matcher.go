package lexer

import "github.com/tekwizely/go-parsing/lexer"

type runeFn func(rune) bool

// matchRune attempts to match the next rune to one specified, returning success or failure.
//
func matchRune(l *lexer.Lexer, runes ...rune) bool {
	if p, ok := tryPeekRune(l); ok {
		for _, r := range runes {
			if r == p {
				l.Next()
				return true
			}
		}
	}
	return false
}

// matchOneOrMore attempts to match one or more of the specified predicate, returning success or failure.
//
func matchOneOrMore(l *lexer.Lexer, fn runeFn) bool {
	b := false
	for l.CanPeek(1) && fn(l.Peek(1)) {
		l.Next()
		b = true
	}
	return b
}

// saveRune attempts to match one of the specified runes, saving it to the scratch buffer.
//
func (ctx *LexContext) saveRune(l *lexer.Lexer, runes ...rune) bool {
	if p, ok := tryPeekRune(l); ok {
		for _, r := range runes {
			if r == p {
				ctx.saveNext(l)
				return true
			}
		}
	}
	return false
}

// saveZeroOrMore matches zero or more of the specified predicate, saving the matches.
//
func (ctx *LexContext) saveZeroOrMore(l *lexer.Lexer, fn runeFn) {
	for l.CanPeek(1) && fn(l.Peek(1)) {
		ctx.saveNext(l)
	}
}

// matchNewline matches one line terminator: [ "\n", "\r", "\n\r", "\r\n" ].
// A repeated rune ("\n\n") is two terminators, so only a complementary rune is folded in.
//
func (ctx *LexContext) matchNewline(l *lexer.Lexer) bool {
	if !l.CanPeek(1) || !isNewline(l.Peek(1)) {
		return false
	}
	r := l.Next()
	if l.CanPeek(1) {
		if p := l.Peek(1); isNewline(p) && p != r {
			l.Next()
		}
	}
	ctx.line++
	return true
}

// skipToEOL consumes the rest of a line, leaving the terminator in place.
//
func skipToEOL(l *lexer.Lexer) {
	for l.CanPeek(1) && !isNewline(l.Peek(1)) {
		l.Next()
	}
}

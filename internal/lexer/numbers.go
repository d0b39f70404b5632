package lexer

import (
	"strconv"
	"strings"

	"github.com/tekwizely/go-parsing/lexer"
)

// lexNumber reads a numeral starting with a digit or '.' digit.
// The read is greedy (hex digits, '.', exponent and its sign) and
// parseNumeral validates the result: "3x" and "1..2" are each one malformed numeral.
//
func lexNumber(ctx *LexContext, l *lexer.Lexer) LexFn {
	expo := []rune{'e', 'E'}
	first := l.Next()
	ctx.save(first)
	if first == '0' && ctx.saveRune(l, 'x', 'X') {
		expo = []rune{'p', 'P'}
	}
	for {
		switch {
		case ctx.saveRune(l, expo...):
			ctx.saveRune(l, '-', '+')
		case matchesNumeralRune(l):
			ctx.saveNext(l)
		default:
			// A letter or '_' touching the numeral makes it malformed
			//
			if isAlpha(int(peekRuneAt(l, 1))) {
				ctx.saveNext(l)
				return ctx.fail(MalformedNumber, string(ctx.scratch), nil)
			}
			lit, ok := parseNumeral(string(ctx.scratch))
			if !ok {
				return ctx.fail(MalformedNumber, string(ctx.scratch), nil)
			}
			if lit.Kind() == LitInteger {
				ctx.emit(l, TokInteger, lit)
			} else {
				ctx.emit(l, TokFloat, lit)
			}
			return LexMain
		}
	}
}

func matchesNumeralRune(l *lexer.Lexer) bool {
	r := peekRuneAt(l, 1)
	return r == runeDot || isXDigit(int(r))
}

// parseNumeral converts numeral text into an Integer or Float literal.
// Hex integers wrap around modulo 2^64; decimal integers too large for
// int64 become floats.
//
func parseNumeral(s string) (Literal, bool) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return parseHexNumeral(s[2:])
	}
	if strings.ContainsAny(s, ".eE") {
		return parseFloat(s)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return IntegerLit(i), true
	}
	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		return parseFloat(s)
	}
	return Literal{}, false
}

func parseHexNumeral(digits string) (Literal, bool) {
	if len(digits) == 0 {
		return Literal{}, false
	}
	if strings.ContainsAny(digits, ".pP") {
		if !strings.ContainsAny(digits, "pP") {
			digits += "p0"
		}
		return parseFloat("0x" + digits)
	}
	var v uint64
	for _, c := range digits {
		if !isXDigit(int(c)) {
			return Literal{}, false
		}
		v = v<<4 | uint64(hexValue(c))
	}
	return IntegerLit(int64(v)), true
}

// parseFloat accepts out-of-range values, which come back as ±Inf (or 0).
//
func parseFloat(s string) (Literal, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return Literal{}, false
		}
	}
	return FloatLit(f), true
}

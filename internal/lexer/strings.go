package lexer

import (
	"strconv"

	"github.com/tekwizely/go-parsing/lexer"
)

// skipSep consumes a long bracket delimiter: '[' '='* '[' or ']' '='* ']'.
// Returns the number of '=' on success (both brackets consumed), otherwise
// -(count)-1 with only the first bracket and the '=' run consumed.
// -1 therefore means a lone bracket.
//
func skipSep(l *lexer.Lexer) int {
	s := l.Next()
	count := 0
	for matchRune(l, runeEquals) {
		count++
	}
	if matchRune(l, s) {
		return count
	}
	return -count - 1
}

// isLongClose checks, without consuming, for ']' + sep '=' + ']'.
//
func isLongClose(l *lexer.Lexer, sep int) bool {
	if peekRuneAt(l, 1) != runeRBracket {
		return false
	}
	for i := 0; i < sep; i++ {
		if peekRuneAt(l, 2+i) != runeEquals {
			return false
		}
	}
	return peekRuneAt(l, sep+2) == runeRBracket
}

// lexLongString scans the body of a long string or long comment whose opener
// (with sep '=') has been consumed. Newline sequences are stored as '\n'.
//
func lexLongString(ctx *LexContext, l *lexer.Lexer, sep int, comment bool) LexFn {
	l.Clear()
	// A newline right after the opener is not part of the string
	//
	if ctx.matchNewline(l) {
		l.Clear()
	}
	for {
		r, ok := tryPeekRune(l)
		switch {
		case !ok:
			if comment {
				return ctx.fail(UnterminatedLongComment, "<eof>", nil)
			}
			return ctx.fail(UnterminatedLongString, "<eof>", nil)
		case r == runeRBracket && isLongClose(l, sep):
			for i := 0; i < sep+2; i++ {
				l.Next()
			}
			if comment {
				l.Clear()
				return LexMain
			}
			return ctx.emitText(l, TokString)
		case ctx.matchNewline(l):
			if !comment {
				ctx.save(runeNewline)
			}
		default:
			l.Next()
			if !comment {
				ctx.save(r)
			}
		}
		// Body text lives in the scratch buffer
		//
		l.Clear()
	}
}

// lexQuotedString scans a '"' or '\'' delimited string, decoding escapes.
//
func lexQuotedString(ctx *LexContext, l *lexer.Lexer) LexFn {
	del := l.Next()
	for {
		r, ok := tryPeekRune(l)
		switch {
		case !ok:
			return ctx.fail(UnterminatedString, "<eof>", nil)
		case r == del:
			l.Next()
			return ctx.emitText(l, TokString)
		case isNewline(r):
			return ctx.fail(UnterminatedString, string(del)+string(ctx.scratch), nil)
		case r == runeBackSlash:
			l.Next()
			if !ctx.readEscape(l) {
				return nil
			}
		default:
			ctx.saveNext(l)
		}
	}
}

var simpleEscapes = map[rune]byte{
	'a':           '\a',
	'b':           '\b',
	'f':           '\f',
	'n':           '\n',
	'r':           '\r',
	't':           '\t',
	'v':           '\v',
	runeBackSlash: '\\',
	runeDQuote:    '"',
	runeSQuote:    '\'',
}

// readEscape decodes the escape after a '\', saving the result.
// On failure the error is recorded and false returned.
//
func (ctx *LexContext) readEscape(l *lexer.Lexer) bool {
	r, ok := tryPeekRune(l)
	if !ok {
		ctx.fail(UnterminatedString, "<eof>", nil)
		return false
	}
	if b, ok := simpleEscapes[r]; ok {
		l.Next()
		ctx.scratch = append(ctx.scratch, b)
		return true
	}
	switch {
	// '\' newline
	//
	case isNewline(r):
		ctx.matchNewline(l)
		ctx.save(runeNewline)
	// \xXX
	//
	case r == 'x':
		l.Next()
		near := []byte{'\\', 'x'}
		v := 0
		for i := 0; i < 2; i++ {
			c := peekRuneAt(l, 1)
			if c != EOZ {
				near = append(near, byte(c))
			}
			if !isXDigit(int(c)) {
				ctx.fail(InvalidEscape, string(near), nil)
				return false
			}
			v = v<<4 | hexValue(l.Next())
		}
		ctx.scratch = append(ctx.scratch, byte(v))
	// \z skips the following whitespace, newlines included
	//
	case r == 'z':
		l.Next()
		for ctx.matchNewline(l) || matchOneOrMore(l, isBlank) {
		}
	// \u{XXX}
	//
	case r == 'u':
		l.Next()
		return ctx.readUTF8Escape(l)
	// \ddd
	//
	case isDigit(int(r)):
		v := 0
		for i := 0; i < 3 && isDigit(int(peekRuneAt(l, 1))); i++ {
			v = v*10 + int(l.Next()-'0')
		}
		if v > 255 {
			ctx.fail(InvalidEscape, "\\"+strconv.Itoa(v), nil)
			return false
		}
		ctx.scratch = append(ctx.scratch, byte(v))
	default:
		ctx.fail(InvalidEscape, "\\"+string(r), nil)
		return false
	}
	return true
}

// readUTF8Escape decodes the "{XXX}" part of \u{XXX}.
//
func (ctx *LexContext) readUTF8Escape(l *lexer.Lexer) bool {
	if !matchRune(l, '{') {
		ctx.fail(InvalidEscape, "\\u", nil)
		return false
	}
	if !isXDigit(int(peekRuneAt(l, 1))) {
		ctx.fail(InvalidEscape, "\\u{", nil)
		return false
	}
	var v uint32
	digits := []byte{}
	for isXDigit(int(peekRuneAt(l, 1))) {
		c := l.Next()
		digits = append(digits, byte(c))
		if v > 0x7FFFFFF {
			ctx.fail(InvalidEscape, "\\u{"+string(digits), nil)
			return false
		}
		v = v<<4 | uint32(hexValue(c))
	}
	if !matchRune(l, '}') {
		ctx.fail(InvalidEscape, "\\u{"+string(digits), nil)
		return false
	}
	ctx.scratch = appendUTF8(ctx.scratch, v)
	return true
}

// appendUTF8 encodes x with the pre-RFC 3629 UTF-8 scheme:
// up to six bytes, values to 0x7FFFFFFF, surrogates allowed.
//
func appendUTF8(b []byte, x uint32) []byte {
	if x < 0x80 {
		return append(b, byte(x))
	}
	var buf [8]byte
	n := 1
	mfb := uint32(0x3f)
	for {
		buf[8-n] = byte(0x80 | (x & 0x3f))
		n++
		x >>= 6
		mfb >>= 1
		if x <= mfb {
			break
		}
	}
	buf[8-n] = byte((^mfb << 1) | x)
	return append(b, buf[8-n:]...)
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

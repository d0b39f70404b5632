package lexer

// EOZ is the end-of-input sentinel returned by the byte cursor.
//
const EOZ = -1

// Character classes
//
const (
	cAlpha uint8 = 1 << iota
	cDigit
	cSpace
	cPrint
	cXDigit
)

// ctype has one entry for EOZ (index 0) and one per byte value (index b+1).
// Only ASCII bytes carry properties.
//
var ctype = func() (t [257]uint8) {
	for b := 0; b < 256; b++ {
		var m uint8
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
			m |= cAlpha
		case b >= '0' && b <= '9':
			m |= cDigit
		}
		if (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') {
			m |= cXDigit
		}
		switch b {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			m |= cSpace
		}
		if b >= 0x20 && b <= 0x7e {
			m |= cPrint
		}
		t[b+1] = m
	}
	return t
}()

// classify returns the class bits of c, a byte value or EOZ.
//
func classify(c int) uint8 {
	if c == EOZ || c < 0 || c > 255 {
		return ctype[0]
	}
	return ctype[c+1]
}

func isAlpha(c int) bool  { return classify(c)&cAlpha != 0 }
func isDigit(c int) bool  { return classify(c)&cDigit != 0 }
func isAlnum(c int) bool  { return classify(c)&(cAlpha|cDigit) != 0 }
func isSpace(c int) bool  { return classify(c)&cSpace != 0 }
func isPrint(c int) bool  { return classify(c)&cPrint != 0 }
func isXDigit(c int) bool { return classify(c)&cXDigit != 0 }

// Rune adapter for the match* helpers.
// The byte reader only ever yields runes 0..255.
//
func isAlnumRune(r rune) bool { return isAlnum(int(r)) }

// isBlank matches whitespace that does not end a line.
//
func isBlank(r rune) bool {
	return isSpace(int(r)) && !isNewline(r)
}

func isNewline(r rune) bool {
	return r == runeNewline || r == runeReturn
}

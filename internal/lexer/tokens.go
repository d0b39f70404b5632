package lexer

import (
	"fmt"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// Kind identifies a token.
// Values 0..255 are single-byte tokens whose kind is the byte itself.
// Symbolic kinds start at FirstReserved, keywords first.
//
type Kind int

// Symbolic token kinds
//
const (
	TokAnd Kind = FirstReserved + iota
	TokBreak
	TokDo
	TokElse
	TokElseif
	TokEnd
	TokFalse
	TokFor
	TokFunction
	TokGoto
	TokIf
	TokIn
	TokLocal
	TokDefer
	TokNil
	TokNot
	TokOr
	TokRepeat
	TokReturn
	TokThen
	TokTrue
	TokUntil
	TokWhile
	TokCDecl
	TokCUnsafe
	TokCNew

	TokIDiv    // //
	TokConcat  // ..
	TokDots    // ...
	TokEq      // ==
	TokGE      // >=
	TokLE      // <=
	TokNE      // ~=
	TokShl     // <<
	TokShr     // >>
	TokDBColon // ::

	TokToInteger  // @integer
	TokToNumber   // @number
	TokToIntArray // @integer[]
	TokToNumArray // @number[]
	TokToTable    // @table
	TokToString   // @string
	TokToClosure  // @closure

	TokEOS
	TokFloat
	TokInteger
	TokName
	TokString
)

// FirstReserved is the kind of the first keyword.
// 256 is left unused so no symbolic kind collides with a byte.
//
const FirstReserved Kind = 257

// keywords are in kind order: keywords[i] has kind FirstReserved+i.
//
var keywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function",
	"goto", "if", "in", "local", "defer", "nil", "not", "or", "repeat", "return",
	"then", "true", "until", "while", "C__decl", "C__unsafe", "C__new",
}

// NumReserved is the size of the keyword table.
//
var NumReserved = len(keywords)

// annotations maps the name after '@' to its cast token.
// The array forms are recognised from their scalar form plus "[]".
//
var annotations = map[string]Kind{
	"integer": TokToInteger,
	"number":  TokToNumber,
	"table":   TokToTable,
	"string":  TokToString,
	"closure": TokToClosure,
}

var arrayAnnotations = map[Kind]Kind{
	TokToInteger: TokToIntArray,
	TokToNumber:  TokToNumArray,
}

var symbolNames = []string{
	"//", "..", "...", "==", ">=", "<=", "~=", "<<", ">>", "::",
	"@integer", "@number", "@integer[]", "@number[]", "@table", "@string", "@closure",
	"<eof>", "<number>", "<integer>", "<name>", "<string>",
}

// Keyword returns the keyword kind for table index i.
//
func Keyword(i int) Kind {
	return FirstReserved + Kind(i)
}

// LookupKeyword does a direct table lookup on b.
//
func LookupKeyword(b []byte) (Kind, bool) {
	for i, kw := range keywords {
		if kw == string(b) {
			return Keyword(i), true
		}
	}
	return 0, false
}

// IsReserved reports whether k is a keyword kind.
//
func (k Kind) IsReserved() bool {
	return k >= FirstReserved && k < FirstReserved+Kind(NumReserved)
}

// IsSingleByte reports whether k is a raw byte token.
//
func (k Kind) IsSingleByte() bool {
	return k >= 0 && k <= 255
}

// String renders the kind for diagnostics.
//
func (k Kind) String() string {
	switch {
	case k.IsSingleByte():
		if isPrint(int(k)) {
			return fmt.Sprintf("'%c'", rune(k))
		}
		return fmt.Sprintf("'<\\%d>'", int(k))
	case k.IsReserved():
		return keywords[k-FirstReserved]
	case k >= TokIDiv && k <= TokString:
		return symbolNames[k-TokIDiv]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// go-parsing reserves the low token types (error, unknown, eof),
// so kinds travel through the lexer shifted past TStart.
//
func tokenType(k Kind) token.Type {
	return lexer.TStart + token.Type(k)
}

func kindOf(t token.Type) Kind {
	return Kind(t - lexer.TStart)
}

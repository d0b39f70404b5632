package lexer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNumbering(t *testing.T) {
	assert.Equal(t, Kind(257), TokAnd)
	assert.Equal(t, Kind(282), TokCNew)
	assert.Equal(t, Kind(283), TokIDiv)
	assert.Equal(t, Kind(292), TokDBColon)
	assert.Equal(t, Kind(293), TokToInteger)
	assert.Equal(t, Kind(299), TokToClosure)
	assert.Equal(t, Kind(300), TokEOS)
	assert.Equal(t, Kind(304), TokString)
	assert.Equal(t, 26, NumReserved)
	assert.Len(t, symbolNames, int(TokString-TokIDiv)+1)
}

func TestKeywordTable(t *testing.T) {
	for i, kw := range keywords {
		k, ok := LookupKeyword([]byte(kw))
		require.True(t, ok, kw)
		assert.Equal(t, Keyword(i), k)
		assert.True(t, k.IsReserved())
		assert.Equal(t, kw, k.String())
	}
	_, ok := LookupKeyword([]byte("While"))
	assert.False(t, ok)
	assert.Equal(t, TokWhile, Keyword(22))
	assert.Equal(t, TokDefer, Keyword(13))
	assert.False(t, TokIDiv.IsReserved())
	assert.False(t, Kind('a').IsReserved())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{'+', "'+'"},
		{'[', "'['"},
		{0, "'<\\0>'"},
		{'\n', "'<\\10>'"},
		{0xff, "'<\\255>'"},
		{TokReturn, "return"},
		{TokCUnsafe, "C__unsafe"},
		{TokEq, "=="},
		{TokDots, "..."},
		{TokDBColon, "::"},
		{TokToIntArray, "@integer[]"},
		{TokToClosure, "@closure"},
		{TokEOS, "<eof>"},
		{TokFloat, "<number>"},
		{TokInteger, "<integer>"},
		{TokName, "<name>"},
		{TokString, "<string>"},
		{256, "Kind(256)"},
		{TokString + 1, "Kind(305)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestTokenTypeShift(t *testing.T) {
	for _, k := range []Kind{0, 1, 2, '+', 0xff, TokAnd, TokString} {
		assert.Equal(t, k, kindOf(tokenType(k)))
	}
}

func TestClassifier(t *testing.T) {
	assert.Equal(t, uint8(0), classify(EOZ))
	assert.False(t, isAlpha(EOZ))
	assert.False(t, isSpace(EOZ))

	for c := 'a'; c <= 'z'; c++ {
		assert.True(t, isAlpha(int(c)))
		assert.True(t, isAlpha(int(c-'a'+'A')))
	}
	assert.True(t, isAlpha('_'))
	assert.True(t, isAlnum('_'))
	assert.False(t, isAlpha('0'))

	for c := '0'; c <= '9'; c++ {
		assert.True(t, isDigit(int(c)))
		assert.True(t, isXDigit(int(c)))
		assert.True(t, isAlnum(int(c)))
		assert.True(t, isPrint(int(c)))
	}
	for _, c := range "abcdefABCDEF" {
		assert.True(t, isXDigit(int(c)))
	}
	assert.False(t, isXDigit('g'))

	for _, c := range " \t\n\v\f\r" {
		assert.True(t, isSpace(int(c)), "%q", c)
	}
	assert.True(t, isBlank('\v'))
	assert.False(t, isBlank('\n'))
	assert.False(t, isBlank('\r'))

	assert.True(t, isPrint(' '))
	assert.True(t, isPrint('~'))
	assert.False(t, isPrint(0x7f))
	assert.False(t, isPrint('\t'))

	// Bytes outside ASCII have no class
	//
	for c := 0x80; c <= 0xff; c++ {
		assert.Equal(t, uint8(0), classify(c), "%#x", c)
	}
}

func TestByteReader(t *testing.T) {
	r := NewByteReader([]byte{'a', 0x00, 0xff})
	assert.Equal(t, int('a'), r.Next())

	c, size, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, rune(0), c)
	assert.Equal(t, 1, size)

	c, _, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, rune(0xff), c)
	assert.Equal(t, 3, r.Offset())

	assert.Equal(t, EOZ, r.Next())
	_, _, err = r.ReadRune()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, EOZ, r.Next())
}

func TestLiteralAccessors(t *testing.T) {
	i, ok := IntegerLit(7).Integer()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)
	_, ok = IntegerLit(7).Float()
	assert.False(t, ok)

	f, ok := FloatLit(0.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	_, ok = Literal{}.Text()
	assert.False(t, ok)
	assert.Equal(t, LitNone, Literal{}.Kind())
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: InvalidLongBracketDelimiter, Line: 3, Near: "[=="}
	assert.Equal(t, "line 3: invalid long string delimiter near '[=='", e.Error())

	e = &Error{Kind: UnterminatedLongString, Line: 0}
	assert.Equal(t, "line 0: unfinished long string", e.Error())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	assert.Equal(t, "invalid character", InvalidCharacter.String())
}

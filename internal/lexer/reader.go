package lexer

import "io"

// ByteReader is the byte cursor over an in-memory source.
// It implements io.RuneReader, handing out each byte as a rune in 0..255,
// so classification stays byte-oriented and no UTF-8 decoding happens.
// It never rewinds.
//
type ByteReader struct {
	src []byte
	pos int
}

// NewByteReader is a convenience method.
//
func NewByteReader(src []byte) *ByteReader {
	return &ByteReader{src: src}
}

// Next returns the next byte, or EOZ once the input is exhausted.
//
func (b *ByteReader) Next() int {
	if b.pos >= len(b.src) {
		return EOZ
	}
	c := b.src[b.pos]
	b.pos++
	return int(c)
}

// ReadRune implements io.RuneReader
//
func (b *ByteReader) ReadRune() (r rune, size int, err error) {
	c := b.Next()
	if c == EOZ {
		return 0, 0, io.EOF
	}
	return rune(c), 1, nil
}

// Offset returns the number of bytes consumed so far.
//
func (b *ByteReader) Offset() int {
	return b.pos
}

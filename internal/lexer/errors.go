package lexer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies scan errors.
//
type ErrorKind int

// Scan error kinds
//
const (
	UnterminatedLongString ErrorKind = iota + 1
	UnterminatedLongComment
	InvalidLongBracketDelimiter
	StringTooLargeForArena
	InvalidCharacter
	UnterminatedString
	InvalidEscape
	MalformedNumber
	UnknownAnnotation
)

var errorMessages = map[ErrorKind]string{
	UnterminatedLongString:      "unfinished long string",
	UnterminatedLongComment:     "unfinished long comment",
	InvalidLongBracketDelimiter: "invalid long string delimiter",
	StringTooLargeForArena:      "string too large",
	InvalidCharacter:            "invalid character",
	UnterminatedString:          "unfinished string",
	InvalidEscape:               "invalid escape sequence",
	MalformedNumber:             "malformed number",
	UnknownAnnotation:           "unknown type annotation",
}

func (k ErrorKind) String() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a scan error at a given line.
// Near holds the offending text, if any; Hint an optional suggestion.
//
type Error struct {
	Kind ErrorKind
	Line int
	Near string
	Hint string
	Err  error
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "line %d: %s", e.Line, e.Kind)
	if len(e.Near) > 0 {
		fmt.Fprintf(b, " near '%s'", e.Near)
	}
	if e.Err != nil {
		fmt.Fprintf(b, ": %v", e.Err)
	}
	if len(e.Hint) > 0 {
		fmt.Fprintf(b, " (%s)", e.Hint)
	}
	return b.String()
}

// Unwrap exposes the underlying cause, e.g. intern.ErrStringTooLarge.
//
func (e *Error) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err was caused by the input ending inside a
// long string, long comment or quoted string, i.e. more input could fix it.
//
func IsIncomplete(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case UnterminatedLongString, UnterminatedLongComment:
		return true
	case UnterminatedString:
		return e.Near == "<eof>"
	}
	return false
}

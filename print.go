package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ravilang/ravilex/internal/config"
	"github.com/ravilang/ravilex/internal/intern"
	"github.com/ravilang/ravilex/internal/lexer"
)

// dumper renders tokens and stats for --dump.
// Addresses and capacities are left out so output is stable between runs.
//
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpedToken is what --dump shows for one token.
//
type dumpedToken struct {
	Kind  string
	Token lexer.Token
	Text  string
}

// formatToken renders a token as "line<TAB>kind[<TAB>value]".
//
func formatToken(s *lexer.Scanner, tok lexer.Token) string {
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(tok.Line))
	b.WriteByte('\t')
	b.WriteString(tok.Kind.String())
	switch tok.Literal.Kind() {
	case lexer.LitInteger:
		i, _ := tok.Literal.Integer()
		b.WriteByte('\t')
		b.WriteString(strconv.FormatInt(i, 10))
	case lexer.LitFloat:
		f, _ := tok.Literal.Float()
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case lexer.LitText:
		b.WriteByte('\t')
		b.WriteString(strconv.Quote(s.Text(tok)))
	}
	return b.String()
}

// printToken writes one token in the configured format.
//
func printToken(w io.Writer, s *lexer.Scanner, tok lexer.Token) {
	if config.DumpTokens {
		dumper.Fdump(w, dumpedToken{Kind: tok.Kind.String(), Token: tok, Text: s.Text(tok)})
		return
	}
	_, _ = fmt.Fprintln(w, formatToken(s, tok))
}

// dumpStats writes the interner usage.
//
func dumpStats(strs *intern.Interner) {
	dumper.Fdump(config.Out, strs.Stats())
}

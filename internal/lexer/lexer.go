package lexer

import (
	"container/list"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"

	"github.com/ravilang/ravilex/internal/config"
	"github.com/ravilang/ravilex/internal/intern"
)

// LexFn is a lexer fun that takes a context
//
type LexFn func(*LexContext, *lexer.Lexer) LexFn

// pending carries what go-parsing tokens cannot: our line and literal payload.
// One is queued per emitted token, in emit order.
//
type pending struct {
	line int
	lit  Literal
}

// LexContext allows us to track additional states of the lexer
//
type LexContext struct {
	Fn      LexFn
	Tokens  token.Nexter
	strings *intern.Interner
	line    int        // Current line number
	tokLine int        // Line at the start of the token being scanned
	scratch []byte     // Text of the token being scanned
	queue   *list.List // Of pending, one per token in flight
	err     *Error     // Sticky; the lexer stops at the first error
}

// lex delegates incoming lexer calls to the configured fn
//
func (ctx *LexContext) lex(l *lexer.Lexer) lexer.Fn {
	fn := ctx.Fn
	// Stopped ?
	//
	if fn == nil {
		return nil
	}
	config.TraceFn("Calling lexer function", fn)
	ctx.Fn = fn(ctx, l)
	return ctx.lex
}

// newLexContext initiates the lexer against a byte array
//
func newLexContext(src []byte, strings *intern.Interner, firstLine int) *LexContext {
	ctx := &LexContext{
		Fn:      LexMain,
		strings: strings,
		line:    firstLine,
		queue:   list.New(),
	}
	ctx.Tokens = lexer.LexRuneReader(NewByteReader(src), ctx.lex)
	return ctx
}

// Line returns the line the lexer has reached.
//
func (ctx *LexContext) Line() int {
	return ctx.line
}

// Err returns the error that stopped the lexer, if any.
//
func (ctx *LexContext) Err() error {
	if ctx.err == nil {
		return nil
	}
	return ctx.err
}

func (ctx *LexContext) save(r rune) {
	ctx.scratch = append(ctx.scratch, byte(r))
}

func (ctx *LexContext) saveNext(l *lexer.Lexer) {
	ctx.save(l.Next())
}

// emit sends a token of kind k, discarding the matched runes.
//
func (ctx *LexContext) emit(l *lexer.Lexer, k Kind, lit Literal) {
	ctx.queue.PushBack(pending{line: ctx.tokLine, lit: lit})
	l.EmitType(tokenType(k))
}

// emitText interns the scratch buffer and sends it as the payload of a k token.
//
func (ctx *LexContext) emitText(l *lexer.Lexer, k Kind) LexFn {
	ref, err := ctx.strings.Intern(ctx.scratch)
	if err != nil {
		return ctx.fail(StringTooLargeForArena, "", err)
	}
	ctx.emit(l, k, TextLit(ref))
	return LexMain
}

// pop returns the line and literal for the next token handed out by Tokens.
//
func (ctx *LexContext) pop() pending {
	if ctx.queue.Len() == 0 {
		return pending{line: ctx.line}
	}
	return ctx.queue.Remove(ctx.queue.Front()).(pending)
}

// fail records a scan error and stops the lexer.
// go-parsing would flatten an EmitError into a plain string,
// so the typed error stays here and the token stream simply ends.
//
func (ctx *LexContext) fail(kind ErrorKind, near string, cause error) LexFn {
	ctx.err = &Error{Kind: kind, Line: ctx.line, Near: near, Err: cause}
	return nil
}

// LexMain is the primary lexer entry point.
// Whitespace, newlines and comments are consumed without emitting and loop back here.
//
func LexMain(ctx *LexContext, l *lexer.Lexer) LexFn {
	ctx.scratch = ctx.scratch[:0]
	ctx.tokLine = ctx.line

	r := l.Peek(1)
	switch {
	// Newline
	//
	case ctx.matchNewline(l):
		l.Clear()
	// Whitespace
	//
	case matchOneOrMore(l, isBlank):
		l.Clear()
	// '-' | Comment
	//
	case matchRune(l, runeDash):
		if !matchRune(l, runeDash) {
			ctx.emit(l, runeDash, Literal{})
			return LexMain
		}
		return lexComment
	// '[' | Long string
	//
	case r == runeLBracket:
		sep := skipSep(l)
		switch {
		case sep >= 0:
			return lexLongString(ctx, l, sep, false)
		case sep == -1:
			ctx.emit(l, runeLBracket, Literal{})
		default:
			return ctx.fail(InvalidLongBracketDelimiter, l.PeekToken(), nil)
		}
	// '"' | '\''
	//
	case r == runeDQuote || r == runeSQuote:
		return lexQuotedString
	// '.' | '..' | '...' | Number
	//
	case r == runeDot:
		if isDigit(int(peekRuneAt(l, 2))) {
			return lexNumber
		}
		l.Next()
		switch {
		case !matchRune(l, runeDot):
			ctx.emit(l, runeDot, Literal{})
		case matchRune(l, runeDot):
			ctx.emit(l, TokDots, Literal{})
		default:
			ctx.emit(l, TokConcat, Literal{})
		}
	// Number
	//
	case isDigit(int(r)):
		return lexNumber
	// '@' Annotation
	//
	case r == runeAt && isAlpha(int(peekRuneAt(l, 2))):
		return lexAnnotation
	// Keyword / Name
	//
	case isAlpha(int(r)):
		return lexName
	// Operators resolved by one rune of lookahead
	//
	case twoRuneOps[r] != nil:
		l.Next()
		kind := Kind(r)
		for _, op := range twoRuneOps[r] {
			if matchRune(l, op.next) {
				kind = op.kind
				break
			}
		}
		ctx.emit(l, kind, Literal{})
	// Single-byte token
	//
	default:
		l.Next()
		ctx.emit(l, Kind(r), Literal{})
	}
	return LexMain
}

// lexComment is entered after "--".
//
func lexComment(ctx *LexContext, l *lexer.Lexer) LexFn {
	if peekRuneEquals(l, runeLBracket) {
		if sep := skipSep(l); sep >= 0 {
			return lexLongString(ctx, l, sep, true)
		}
	}
	// Short comment. Whatever skipSep consumed is part of it.
	//
	skipToEOL(l)
	l.Clear()
	return LexMain
}

// lexName matches [A-Za-z_][A-Za-z0-9_]* and emits a keyword or a name.
//
func lexName(ctx *LexContext, l *lexer.Lexer) LexFn {
	ctx.saveZeroOrMore(l, isAlnumRune)
	ref, err := ctx.strings.Intern(ctx.scratch)
	if err != nil {
		return ctx.fail(StringTooLargeForArena, "", err)
	}
	if s := ctx.strings.Lookup(ref); s.IsReserved() {
		ctx.emit(l, Keyword(s.Reserved), Literal{})
	} else {
		ctx.emit(l, TokName, TextLit(ref))
	}
	return LexMain
}

// lexAnnotation matches '@' name [ "[]" ].
//
func lexAnnotation(ctx *LexContext, l *lexer.Lexer) LexFn {
	l.Next() // '@'
	ctx.saveZeroOrMore(l, isAlnumRune)
	name := string(ctx.scratch)
	kind, ok := annotations[name]
	if !ok {
		ctx.fail(UnknownAnnotation, "@"+name, nil)
		if hint := suggestAnnotation(name); len(hint) > 0 {
			ctx.err.Hint = "did you mean '@" + hint + "'?"
		}
		return nil
	}
	if array, ok := arrayAnnotations[kind]; ok &&
		peekRuneAt(l, 1) == runeLBracket && peekRuneAt(l, 2) == runeRBracket {
		l.Next()
		l.Next()
		kind = array
	}
	ctx.emit(l, kind, Literal{})
	return LexMain
}

// suggestAnnotation returns the closest known annotation name, if any is close.
//
func suggestAnnotation(name string) string {
	targets := make([]string, 0, len(annotations))
	for k := range annotations {
		targets = append(targets, k)
	}
	sort.Strings(targets)
	ranks := fuzzy.RankFindNormalizedFold(name, targets)
	if len(ranks) == 0 {
		// Typos that drop the subsequence match, e.g. "intgeer"
		//
		ranks = fuzzy.RankFindNormalizedFold(name[:minInt(len(name), 3)], targets)
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package lexer

import (
	"surge/internal/source"
	"surge/internal/token"
)

// Lexer turns UTF-8 source text into a token stream. It is consumed one
// token at a time via Next, with one token of lookahead via Peek.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia

	// genericStack tracks, for each still-open bracket, whether it was
	// opened as a generic-argument list (by "`<") rather than an
	// ordinary '(' '[' '{'.
	genericStack []bool
}

// New creates a Lexer over file's content.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token, with any swallowed comments
// recorded as its Leading trivia. Past end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.takeHold()}
		}

		r := lx.cursor.Peek()

		switch {
		case r == ' ' || r == '\t':
			lx.cursor.Bump()
			continue

		case r == '\\' && isNewlineChar(lx.cursor.PeekAt(1)):
			lx.cursor.Bump() // '\'
			lx.consumeNewlineRun()
			continue

		case isNewlineChar(r):
			return lx.scanNewline()

		case r == '#':
			if lx.cursor.PeekAt(1) == ':' {
				return lx.scanDocString()
			}
			lx.skipLineComment()
			continue

		case isDigit(r):
			tok := lx.scanNumber()
			tok.Leading = lx.takeHold()
			return tok

		case r == '"':
			tok := lx.scanString()
			tok.Leading = lx.takeHold()
			return tok

		case r == '\'':
			tok := lx.scanRawString()
			tok.Leading = lx.takeHold()
			return tok

		case isIdentStart(r):
			tok := lx.scanIdentOrKeyword()
			tok.Leading = lx.takeHold()
			return tok

		default:
			tok := lx.scanReservedOrOperator()
			tok.Leading = lx.takeHold()
			return tok
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// consumeNewlineRun swallows one \r[\n] or \n sequence without emitting a
// token; used after a line-continuation backslash.
func (lx *Lexer) consumeNewlineRun() {
	if lx.cursor.Peek() == '\r' {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
}

// scanNewline coalesces a run of \r, \n, and intervening whitespace
// (including escaped line continuations) into a single NEWLINE token.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	for {
		r := lx.cursor.Peek()
		switch {
		case isNewlineChar(r), r == ' ', r == '\t':
			lx.cursor.Bump()
		case r == '\\' && isNewlineChar(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
			lx.consumeNewlineRun()
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Newline, Span: sp, Text: lx.text(sp), Leading: lx.takeHold()}
		}
	}
}

func (lx *Lexer) skipLineComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && !isNewlineChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) scanDocString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.cursor.Bump() // ':'
	for !lx.cursor.EOF() && !isNewlineChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.DocString, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}

// inGenericContext reports whether the innermost open bracket is a
// generic-argument list.
func (lx *Lexer) inGenericContext() bool {
	n := len(lx.genericStack)
	return n > 0 && lx.genericStack[n-1]
}

func (lx *Lexer) pushBracket(generic bool) {
	lx.genericStack = append(lx.genericStack, generic)
}

// popBracket pops a frame only if it matches wantGeneric; ordinary close
// brackets never pop a generic frame and vice versa.
func (lx *Lexer) popBracket(wantGeneric bool) {
	n := len(lx.genericStack)
	if n == 0 {
		return
	}
	if lx.genericStack[n-1] == wantGeneric {
		lx.genericStack = lx.genericStack[:n-1]
	}
}

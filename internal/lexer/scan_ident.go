package lexer

import (
	"surge/internal/token"
)

// scanIdentOrKeyword scans a maximal run of identifier characters and
// classifies it as a keyword if it matches the reserved-word table.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // identifier start, already validated by the caller
	for isIdentChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}

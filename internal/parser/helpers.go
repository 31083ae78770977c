package parser

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/token"
)

// cur returns the token the cursor stands on without consuming it.
func (p *Parser) cur() token.Token {
	return p.lx.Peek()
}

// next consumes and returns the current token.
func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	p.lastConsumed = tok
	return tok
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

// atOperatorText reports whether the current token is an Operator whose
// text is exactly text.
func (p *Parser) atOperatorText(text string) bool {
	tok := p.cur()
	return tok.Kind == token.Operator && tok.Text == text
}

// expect consumes the current token if it has kind k, else fails.
func (p *Parser) expect(k token.Kind, context string) (token.Token, error) {
	tok := p.cur()
	if tok.Kind != k {
		return tok, p.fail(tok, fmt.Sprintf("expected %s %s, found %s %q", k, context, tok.Kind, tok.Text))
	}
	return p.next(), nil
}

// isTerminator reports whether tok ends expression/statement parsing:
// NEWLINE, COMMA, RPAREN, RSQUARE, RCURLY, or EOF.
func isTerminator(tok token.Token) bool {
	switch tok.Kind {
	case token.Newline, token.Comma, token.RParen, token.RSquare, token.RCurly, token.EOF:
		return true
	default:
		return false
	}
}

// skipNewlines consumes a run of zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.next()
	}
}

// skipDocStringsAndNewlines consumes a run of DOC_STRING and NEWLINE
// tokens in any order.
func (p *Parser) skipDocStringsAndNewlines() {
	for p.at(token.Newline) || p.at(token.DocString) {
		p.next()
	}
}

// fail builds a ParseError formatted per spec.md §7 and, if a reporter
// is configured, reports it as a diag.Diagnostic too.
func (p *Parser) fail(tok token.Token, msg string) error {
	loc, _ := p.fs.Resolve(tok.Span)
	file := p.fs.Get(tok.Span.File)
	path := ""
	if file != nil {
		path = file.FormatPath("relative", p.fs.BaseDir())
	}
	formatted := fmt.Sprintf("Parse error: %s:%d:%d: %s", path, loc.Line, loc.Col, msg)
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, diag.ParseError, tok.Span, msg).Emit()
	}
	return &ParseError{Span: tok.Span, Message: formatted}
}

// failNameClash reports a NameClashError with the spec.md §7/§8 wording,
// noting prior's declaration site when the caller has it on hand.
func (p *Parser) failNameClash(tok token.Token, name string, prior ast.Decl) error {
	msg := fmt.Sprintf("attempted to declare '%s', but something with the same name is already in scope", name)
	loc, _ := p.fs.Resolve(tok.Span)
	file := p.fs.Get(tok.Span.File)
	path := ""
	if file != nil {
		path = file.FormatPath("relative", p.fs.BaseDir())
	}
	formatted := fmt.Sprintf("Parse error: %s:%d:%d: %s", path, loc.Line, loc.Col, msg)
	if p.opts.Reporter != nil {
		builder := diag.ReportError(p.opts.Reporter, diag.NameClashError, tok.Span, msg)
		if prior != nil {
			builder = builder.WithNote(prior.Slice().Span, fmt.Sprintf("'%s' was already declared here", name))
		}
		builder.Emit()
	}
	return &ParseError{Span: tok.Span, Message: formatted}
}

// pushSymbol pushes name into the current scope frame, failing with a
// NameClashError diagnostic if it is already visible.
func (p *Parser) pushSymbol(tok token.Token, name string, decl ast.Decl) error {
	ok, prior := p.scopes.PushSymbol(name, decl)
	if !ok {
		return p.failNameClash(tok, name, prior)
	}
	return nil
}

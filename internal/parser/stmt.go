package parser

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/token"
)

// parseScope parses "(" { statement } ")", pushing a fresh scope frame
// on entry and popping it on exit.
func (p *Parser) parseScope() (*ast.Scope, error) {
	start, err := p.expect(token.LParen, "to start a scope")
	if err != nil {
		return nil, err
	}
	if err := p.pushScope(start); err != nil {
		return nil, err
	}
	defer p.scopes.PopScope()

	p.skipDocStringsAndNewlines()
	var statements []ast.Node
	for !p.at(token.RParen) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.skipDocStringsAndNewlines()
	}

	end, err := p.expect(token.RParen, "to close a scope")
	if err != nil {
		return nil, err
	}
	return ast.NewScope(p.arenas.Scopes, p.coveringSlice(start, end), statements), nil
}

// parseStatement parses exactly one of: return, declaration, or
// expression.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwConst, token.KwVal, token.KwVar, token.KwFn, token.KwType:
		return p.parseDeclaration()
	case token.IntegerLit, token.FloatLit, token.StringLit, token.RawStringLit,
		token.LParen, token.Identifier, token.Operator, token.At, token.Dollar:
		return p.parseExpression()
	}
	tok := p.cur()
	return nil, p.fail(tok, fmt.Sprintf("unexpected token %s %q at the start of a statement", tok.Kind, tok.Text))
}

// parseReturn parses `return expression`.
func (p *Parser) parseReturn() (ast.Expr, error) {
	start := p.next() // "return"
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(p.arenas.Returns, p.coveringSlice(start, p.lastConsumed), expr), nil
}

// parseFuncLiteral parses a `fn fn-tail` literal appearing in
// expression position.
func (p *Parser) parseFuncLiteral() (ast.Expr, error) {
	start := p.next() // "fn"
	return p.parseFuncTail(start)
}

// parseFuncTail parses `"[" [param ("," param)*] "]" ["->" type] scope`,
// pushing a fresh scope frame before the parameter list and popping it
// after the body so parameters and body share one frame.
func (p *Parser) parseFuncTail(start token.Token) (*ast.FuncLiteral, error) {
	if err := p.pushScope(start); err != nil {
		return nil, err
	}
	defer p.scopes.PopScope()

	if _, err := p.expect(token.LSquare, "to start a parameter list"); err != nil {
		return nil, err
	}
	p.skipDocStringsAndNewlines()

	var params []*ast.VariableDecl
	for !p.at(token.RSquare) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		p.skipDocStringsAndNewlines()
		if p.at(token.Comma) {
			p.next()
			p.skipDocStringsAndNewlines()
			continue
		}
		break
	}
	if _, err := p.expect(token.RSquare, "to close a parameter list"); err != nil {
		return nil, err
	}

	var retType *ast.TypeExpr
	if p.atOperatorText("->") {
		p.next()
		var err error
		retType, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncLiteral(p.arenas.FuncLiterals, p.coveringSlice(start, p.lastConsumed), params, retType, body), nil
}

// parseParam parses `ident : type`, registering it as an immutable
// VariableDecl in the already-pushed function scope frame.
func (p *Parser) parseParam() (*ast.VariableDecl, error) {
	nameTok, err := p.expect(token.Identifier, "as a parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "after a parameter name"); err != nil {
		return nil, err
	}
	typeExpr, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	decl := ast.NewVariableDecl(p.arenas.VariableDecls, p.sliceFor(nameTok), nameTok.Text, typeExpr, nil, false)
	if err := p.pushSymbol(nameTok, nameTok.Text, decl); err != nil {
		return nil, err
	}
	return decl, nil
}

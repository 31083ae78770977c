package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
	"surge/internal/types"
)

// parseDeclaration dispatches on the current keyword to one of the five
// declaration forms the grammar permits.
func (p *Parser) parseDeclaration() (ast.Decl, error) {
	switch p.cur().Kind {
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwVal:
		return p.parseValOrVarDecl(false)
	case token.KwVar:
		return p.parseValOrVarDecl(true)
	case token.KwFn:
		return p.parseFnDecl()
	case token.KwType:
		return p.parseNominalTypeDecl()
	}
	return nil, p.fail(p.cur(), "expected a declaration")
}

// parseConstDecl parses `const name [: type] = expr`. The name is
// pushed into scope before the initializer is parsed, so a function
// literal initializer can refer to its own binding recursively.
func (p *Parser) parseConstDecl() (ast.Decl, error) {
	start := p.next() // "const"
	nameTok, err := p.expect(token.Identifier, "as a constant name")
	if err != nil {
		return nil, err
	}

	var typeExpr *ast.TypeExpr
	if p.at(token.Colon) {
		p.next()
		typeExpr, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	decl := ast.NewConstantDecl(p.arenas.ConstantDecls, p.sliceFor(start), nameTok.Text, typeExpr, nil)
	if err := p.pushSymbol(nameTok, nameTok.Text, decl); err != nil {
		return nil, err
	}

	if !p.atOperatorText("=") {
		return nil, p.fail(p.cur(), "Constant '"+nameTok.Text+"' has no initializer.")
	}
	p.next()

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	decl.Initializer = init
	if decl.Type == nil {
		decl.Type = inferredTypeExprFromLiteral(p.arenas.TypeExprs, init)
	}
	decl.ExtendSlice(p.lastConsumed.Span)
	return decl, nil
}

// parseValOrVarDecl parses `val name [: type] [= expr]` /
// `var name [: type] [= expr]`.
func (p *Parser) parseValOrVarDecl(mutable bool) (ast.Decl, error) {
	start := p.next() // "val" or "var"
	nameTok, err := p.expect(token.Identifier, "as a variable name")
	if err != nil {
		return nil, err
	}

	var typeExpr *ast.TypeExpr
	if p.at(token.Colon) {
		p.next()
		typeExpr, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	decl := ast.NewVariableDecl(p.arenas.VariableDecls, p.sliceFor(start), nameTok.Text, typeExpr, nil, mutable)
	if err := p.pushSymbol(nameTok, nameTok.Text, decl); err != nil {
		return nil, err
	}

	if p.atOperatorText("=") {
		p.next()
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Initializer = init
		if decl.Type == nil {
			decl.Type = inferredTypeExprFromLiteral(p.arenas.TypeExprs, init)
		}
	}
	decl.ExtendSlice(p.lastConsumed.Span)
	return decl, nil
}

// parseFnDecl parses `fn name fn-tail` as sugar for a const binding to
// a function literal.
func (p *Parser) parseFnDecl() (ast.Decl, error) {
	start := p.next() // "fn"
	nameTok, err := p.expectFuncName()
	if err != nil {
		return nil, err
	}

	decl := ast.NewConstantDecl(p.arenas.ConstantDecls, p.sliceFor(start), nameTok.Text, nil, nil)
	if err := p.pushSymbol(nameTok, nameTok.Text, decl); err != nil {
		return nil, err
	}

	lit, err := p.parseFuncTail(start)
	if err != nil {
		return nil, err
	}
	decl.Initializer = lit
	decl.Type = functionTypeExprFor(p.arenas.TypeExprs, lit)
	decl.ExtendSlice(p.lastConsumed.Span)
	return decl, nil
}

// expectFuncName accepts either an identifier or an operator token as
// the function's name, per `fn-decl := "fn" (ident|operator) fn-tail`.
func (p *Parser) expectFuncName() (token.Token, error) {
	tok := p.cur()
	if tok.Kind == token.Identifier || tok.Kind == token.Operator {
		return p.next(), nil
	}
	return tok, p.fail(tok, "expected a function name (identifier or operator)")
}

// parseNominalTypeDecl parses `type name : type-expr`.
func (p *Parser) parseNominalTypeDecl() (ast.Decl, error) {
	start := p.next() // "type"
	nameTok, err := p.expect(token.Identifier, "as a type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "after a type declaration's name"); err != nil {
		return nil, err
	}
	typeExpr, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}

	decl := ast.NewNominalTypeDecl(p.arenas.NominalTypeDecls, p.sliceFor(start), nameTok.Text, typeExpr)
	if err := p.pushSymbol(nameTok, nameTok.Text, decl); err != nil {
		return nil, err
	}
	decl.ExtendSlice(p.lastConsumed.Span)
	return decl, nil
}

// inferredTypeExprFromLiteral returns nil for anything but a function
// literal initializer, whose declaration type the grammar sets at
// parse time; every other omitted type is inferred later by the type
// checker from initializer.EvalType.
func inferredTypeExprFromLiteral(a *ast.Arena[ast.TypeExpr], init ast.Expr) *ast.TypeExpr {
	lit, ok := init.(*ast.FuncLiteral)
	if !ok {
		return nil
	}
	return functionTypeExprFor(a, lit)
}

// functionTypeExprFor builds the Function{parameter_types, return_type}
// TypeExpr corresponding to a FuncLiteral's signature.
func functionTypeExprFor(a *ast.Arena[ast.TypeExpr], lit *ast.FuncLiteral) *ast.TypeExpr {
	paramTypes := make([]*types.Type, len(lit.Parameters))
	for i, param := range lit.Parameters {
		if param.Type != nil {
			paramTypes[i] = param.Type.Resolved
		} else {
			paramTypes[i] = types.NewUnknown(param.Name)
		}
	}
	var ret *types.Type = types.Void
	if lit.ReturnType != nil {
		ret = lit.ReturnType.Resolved
	}

	te := a.AllocZero()
	te.Resolved = types.NewFunction(paramTypes, ret)
	return te
}

package parser

import (
	"fmt"
	"math"

	"surge/internal/ast"
	"surge/internal/token"
)

// minBinaryPrec sits below every operator's precedence, including
// precAssignment, so parseBinary's initial call never rejects "=" for
// being less than the starting threshold.
const minBinaryPrec = math.MinInt

// parseExpression parses a full expression: a primary followed by an
// optional binary-operator chain, implemented as precedence climbing.
func (p *Parser) parseExpression() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinary(lhs, minBinaryPrec)
}

// parseBinary extends lhs with any binary operators whose precedence is
// at least minPrec. Every operator is left-associative except "=",
// which recurses with the same (not incremented) precedence threshold
// so a chain of assignments groups to the right.
func (p *Parser) parseBinary(lhs ast.Expr, minPrec int) (ast.Expr, error) {
	for {
		op, ok := lookupBinaryOp(p.cur())
		if !ok || op.prec < minPrec {
			return lhs, nil
		}
		opTok := p.next()

		rhsPrimary, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		nextMin := op.prec + 1
		if op.assignment {
			nextMin = op.prec
		}
		rhs, err := p.parseBinary(rhsPrimary, nextMin)
		if err != nil {
			return nil, err
		}

		if op.assignment {
			lhs = ast.NewAssignment(p.arenas.Assignments, p.coveringSlice(opTok, p.lastConsumed), lhs, rhs)
		} else {
			lhs = ast.NewFuncCall(p.arenas.FuncCalls, p.coveringSlice(opTok, p.lastConsumed), op.text, []ast.Expr{lhs, rhs})
		}
	}
}

// parsePrimary parses the smallest expression grammar form: a
// parenthesized scope, $expr, @expr, a literal, a function literal, a
// standard-style or unary-prefix call, or a bare identifier placeholder.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()

	switch tok.Kind {
	case token.LParen:
		return p.parseScopeAsExpr()

	case token.Dollar:
		p.next()
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewDeref(p.arenas.Derefs, p.coveringSlice(tok, p.lastConsumed), inner), nil

	case token.At:
		p.next()
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewAddressOf(p.arenas.AddressOfs, p.coveringSlice(tok, p.lastConsumed), inner), nil

	case token.IntegerLit:
		p.next()
		return ast.NewIntegerLiteral(p.arenas.IntegerLiterals, p.sliceFor(tok), tok.Text), nil

	case token.FloatLit:
		p.next()
		return ast.NewFloatLiteral(p.arenas.FloatLiterals, p.sliceFor(tok), tok.Text), nil

	case token.StringLit:
		p.next()
		return ast.NewStringLiteral(p.arenas.StringLiterals, p.sliceFor(tok), tok.Text, false), nil

	case token.RawStringLit:
		p.next()
		return ast.NewStringLiteral(p.arenas.StringLiterals, p.sliceFor(tok), tok.Text, true), nil

	case token.KwFn:
		return p.parseFuncLiteral()

	case token.Identifier:
		return p.parseIdentifierPrimary()

	case token.Operator:
		return p.parseOperatorPrimary()
	}

	return nil, p.fail(tok, fmt.Sprintf("unexpected token %s %q in expression", tok.Kind, tok.Text))
}

// parseIdentifierPrimary handles a standard-style call name[args,...] or,
// absent a following "[", a bare identifier placeholder resolved later
// by the reference linker.
func (p *Parser) parseIdentifierPrimary() (ast.Expr, error) {
	tok := p.next()
	if !p.at(token.LSquare) {
		return ast.NewUnknownIdentifier(p.arenas.UnknownIdents, p.sliceFor(tok), tok.Text), nil
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncCall(p.arenas.FuncCalls, p.coveringSlice(tok, p.lastConsumed), tok.Text, args), nil
}

// parseOperatorPrimary handles an operator-named standard call such as
// "+[a, b]" (fn-decl allows an operator as the declared function name)
// and, absent a following "[", falls back to unary-prefix application
// of the operator to the next primary.
func (p *Parser) parseOperatorPrimary() (ast.Expr, error) {
	tok := p.next()
	if p.at(token.LSquare) {
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return ast.NewFuncCall(p.arenas.FuncCalls, p.coveringSlice(tok, p.lastConsumed), tok.Text, args), nil
	}
	arg, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncCall(p.arenas.FuncCalls, p.coveringSlice(tok, p.lastConsumed), tok.Text, []ast.Expr{arg}), nil
}

// parseCallArgs parses "[" [expr ("," expr)*] "]", permitting zero args
// and trailing newlines inside the brackets.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LSquare, "to start call arguments"); err != nil {
		return nil, err
	}
	p.skipNewlines()

	var args []ast.Expr
	for !p.at(token.RSquare) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipNewlines()
		if p.at(token.Comma) {
			p.next()
			p.skipNewlines()
			continue
		}
		break
	}
	if _, err := p.expect(token.RSquare, "to close call arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseScopeAsExpr parses a "(" ... ")" scope used in expression
// position; its value is, semantically, its last statement.
func (p *Parser) parseScopeAsExpr() (ast.Expr, error) {
	sc, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return sc, nil
}

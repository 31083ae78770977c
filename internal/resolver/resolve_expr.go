package resolver

import (
	"fmt"

	"surge/internal/ast"
)

// resolveExpr recurses into e's children and, for an UnknownIdentifier,
// replaces it with the Variable or Constant node the name resolves to.
func (r *resolver) resolveExpr(e ast.Expr) (ast.Expr, error) {
	switch v := e.(type) {
	case *ast.UnknownIdentifier:
		decl, ok := r.scopes.Lookup(v.Name)
		if !ok {
			return nil, r.fail(v.Slice().Span, fmt.Sprintf("'%s' was never declared", v.Name))
		}
		switch d := decl.(type) {
		case *ast.VariableDecl:
			return ast.NewVariable(r.arenas.Variables, v.Slice(), v.Name, d), nil
		case *ast.ConstantDecl:
			return ast.NewConstant(r.arenas.Constants, v.Slice(), v.Name, d), nil
		default:
			return nil, r.fail(v.Slice().Span, fmt.Sprintf("'%s' does not name a value", v.Name))
		}

	case *ast.Variable, *ast.Constant, *ast.IntegerLiteral, *ast.FloatLiteral,
		*ast.StringLiteral, *ast.EmptyExpr:
		return v, nil

	case *ast.AddressOf:
		resolved, err := r.resolveExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		v.Expr = resolved
		return v, nil

	case *ast.Deref:
		resolved, err := r.resolveExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		v.Expr = resolved
		return v, nil

	case *ast.FuncCall:
		for i, param := range v.Parameters {
			resolved, err := r.resolveExpr(param)
			if err != nil {
				return nil, err
			}
			v.Parameters[i] = resolved
		}
		return v, nil

	case *ast.Assignment:
		lhs, err := r.resolveExpr(v.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := r.resolveExpr(v.Rhs)
		if err != nil {
			return nil, err
		}
		v.Lhs, v.Rhs = lhs, rhs
		return v, nil

	case *ast.Return:
		resolved, err := r.resolveExpr(v.Expression)
		if err != nil {
			return nil, err
		}
		v.Expression = resolved
		return v, nil

	case *ast.FuncLiteral:
		r.scopes.PushScope()
		for _, param := range v.Parameters {
			if err := r.resolveDecl(param); err != nil {
				r.scopes.PopScope()
				return nil, err
			}
		}
		if err := r.resolveTypeExpr(v.ReturnType); err != nil {
			r.scopes.PopScope()
			return nil, err
		}
		resolvedBody, err := r.resolveExpr(v.Body)
		if err != nil {
			r.scopes.PopScope()
			return nil, err
		}
		v.Body = resolvedBody.(*ast.Scope)
		r.scopes.PopScope()
		return v, nil

	case *ast.Scope:
		r.scopes.PushScope()
		for i, stmt := range v.Statements {
			resolved, err := r.resolveNode(stmt)
			if err != nil {
				r.scopes.PopScope()
				return nil, err
			}
			v.Statements[i] = resolved
		}
		r.scopes.PopScope()
		return v, nil
	}
	return e, nil
}

// resolveNode dispatches a Scope statement, which is either a Decl or an
// Expr, to the matching resolution path.
func (r *resolver) resolveNode(n ast.Node) (ast.Node, error) {
	switch v := n.(type) {
	case ast.Decl:
		if err := r.resolveDecl(v); err != nil {
			return nil, err
		}
		return v, nil
	case ast.Expr:
		return r.resolveExpr(v)
	}
	return n, nil
}

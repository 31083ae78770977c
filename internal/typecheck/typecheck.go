// Package typecheck implements the final walk over a reference-linked
// AST: propagating eval_type onto Variable/Constant references from
// their declarations, and checking the two structural-equality
// contracts the front-end is responsible for — a declaration's type
// against its initializer's, and an assignment's two sides against
// each other. It halts at the first mismatch.
package typecheck

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/types"
)

// TypeError is returned for the first type mismatch the walk finds.
type TypeError struct {
	Span    source.Span
	Message string
}

func (e *TypeError) Error() string { return e.Message }

type checker struct {
	arenas   *ast.Arenas
	reporter diag.Reporter
}

// Check runs the type-checking pass over tree in place.
func Check(tree *ast.Tree, reporter diag.Reporter) error {
	c := &checker{arenas: tree.Arenas, reporter: reporter}
	return c.checkNamespace(tree.Root)
}

func (c *checker) checkNamespace(ns *ast.Namespace) error {
	for _, sub := range ns.SubNamespaces {
		if err := c.checkNamespace(sub); err != nil {
			return err
		}
	}
	for _, decl := range ns.Declarations {
		if err := c.checkDecl(decl); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) fail(span source.Span, msg string) error {
	if c.reporter != nil {
		diag.ReportError(c.reporter, diag.TypeError, span, msg).Emit()
	}
	return &TypeError{Span: span, Message: msg}
}

func (c *checker) checkDecl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.ConstantDecl:
		return c.checkValueDecl(&d.Type, d.Initializer)
	case *ast.VariableDecl:
		return c.checkValueDecl(&d.Type, d.Initializer)
	case *ast.NominalTypeDecl:
		return nil
	}
	return nil
}

// checkValueDecl checks init (if present) and then either adopts its
// eval_type as the omitted declared type, or requires the two to
// match structurally.
func (c *checker) checkValueDecl(typ **ast.TypeExpr, init ast.Expr) error {
	if init == nil {
		return nil
	}
	if err := c.checkExpr(init); err != nil {
		return err
	}
	initType := evalTypeOf(init)
	if *typ == nil {
		*typ = c.syntheticTypeExpr(initType)
		return nil
	}
	if initType != nil && !types.Equal((*typ).Resolved, initType) {
		return c.fail(init.Slice().Span, fmt.Sprintf(
			"declared type %s does not match initializer type %s", (*typ).Resolved, initType))
	}
	return nil
}

// syntheticTypeExpr wraps an inferred types.Type in a TypeExpr node so
// it can sit in a declBase.Type slot alongside parsed ones. It carries
// no source span of its own since nothing in the grammar wrote it.
func (c *checker) syntheticTypeExpr(t *types.Type) *ast.TypeExpr {
	te := c.arenas.TypeExprs.AllocZero()
	te.Resolved = t
	return te
}

func setType(e ast.Expr, t *types.Type) {
	if t == nil {
		return
	}
	e.SetEvalType(&ast.ExprType{Name: t.String(), Ptr: t})
}

func evalTypeOf(e ast.Expr) *types.Type {
	et := e.EvalType()
	if et == nil {
		return nil
	}
	t, _ := et.Ptr.(*types.Type)
	return t
}

// checkExpr recurses into e's children, assigns eval_type to the nodes
// this pass defines a type for, and enforces the Assignment contract.
// A FuncCall's result type is left unset: propagating operator result
// types is outside this pass's contract.
func (c *checker) checkExpr(e ast.Expr) error {
	switch v := e.(type) {
	case *ast.IntegerLiteral:
		setType(e, types.NewAtom(types.AtomI32))
		return nil

	case *ast.FloatLiteral:
		setType(e, types.NewAtom(types.AtomF64))
		return nil

	case *ast.StringLiteral:
		setType(e, types.NewSlice(types.NewAtom(types.AtomByte)))
		return nil

	case *ast.EmptyExpr:
		setType(e, types.Void)
		return nil

	case *ast.UnknownIdentifier:
		return nil // unresolved; the reference linker must run first

	case *ast.Variable:
		if v.DeclRef != nil && v.DeclRef.Type != nil {
			setType(e, v.DeclRef.Type.Resolved)
		}
		return nil

	case *ast.Constant:
		if v.DeclRef != nil && v.DeclRef.Type != nil {
			setType(e, v.DeclRef.Type.Resolved)
		}
		return nil

	case *ast.AddressOf:
		if err := c.checkExpr(v.Expr); err != nil {
			return err
		}
		if inner := evalTypeOf(v.Expr); inner != nil {
			setType(e, types.NewPointer(inner))
		}
		return nil

	case *ast.Deref:
		if err := c.checkExpr(v.Expr); err != nil {
			return err
		}
		inner := evalTypeOf(v.Expr)
		if inner == nil {
			return nil
		}
		if inner.Kind != types.KindPointer {
			return c.fail(v.Slice().Span, fmt.Sprintf("cannot dereference non-pointer type %s", inner))
		}
		setType(e, inner.Pointee)
		return nil

	case *ast.FuncCall:
		for _, param := range v.Parameters {
			if err := c.checkExpr(param); err != nil {
				return err
			}
		}
		return nil

	case *ast.Assignment:
		if err := c.checkExpr(v.Lhs); err != nil {
			return err
		}
		if err := c.checkExpr(v.Rhs); err != nil {
			return err
		}
		lhsType, rhsType := evalTypeOf(v.Lhs), evalTypeOf(v.Rhs)
		if lhsType != nil && rhsType != nil && !types.Equal(lhsType, rhsType) {
			return c.fail(v.Slice().Span, fmt.Sprintf(
				"assignment type mismatch: %s = %s", lhsType, rhsType))
		}
		if lhsType != nil {
			setType(e, lhsType)
		}
		return nil

	case *ast.Return:
		return c.checkExpr(v.Expression)

	case *ast.FuncLiteral:
		for _, param := range v.Parameters {
			if err := c.checkDecl(param); err != nil {
				return err
			}
		}
		if err := c.checkExpr(v.Body); err != nil {
			return err
		}
		setType(e, literalFunctionType(v))
		return nil

	case *ast.Scope:
		var last ast.Expr
		for _, stmt := range v.Statements {
			switch s := stmt.(type) {
			case ast.Decl:
				if err := c.checkDecl(s); err != nil {
					return err
				}
				last = nil
			case ast.Expr:
				if err := c.checkExpr(s); err != nil {
					return err
				}
				last = s
			}
		}
		if last != nil {
			if t := evalTypeOf(last); t != nil {
				setType(e, t)
			}
		} else {
			setType(e, types.Void)
		}
		return nil
	}
	return nil
}

// literalFunctionType builds the Function type describing lit's
// signature, mirroring how the parser infers an omitted const type.
func literalFunctionType(lit *ast.FuncLiteral) *types.Type {
	paramTypes := make([]*types.Type, len(lit.Parameters))
	for i, param := range lit.Parameters {
		if param.Type != nil {
			paramTypes[i] = param.Type.Resolved
		} else {
			paramTypes[i] = types.NewUnknown(param.Name)
		}
	}
	ret := types.Void
	if lit.ReturnType != nil {
		ret = lit.ReturnType.Resolved
	}
	return types.NewFunction(paramTypes, ret)
}

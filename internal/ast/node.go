// Package ast defines the abstract syntax tree produced by the parser:
// an interface-based sum type over a fixed set of node variants, all
// allocated from a chunked Arena so that pointers to nodes never move.
package ast

import "surge/internal/source"

// CodeSlice identifies the source span a node was parsed from.
type CodeSlice struct {
	Span source.Span
	Line uint32
	Col  uint32
	Text string
}

// Node is the root of the AST sum type. Every concrete node embeds a
// base struct that implements this method.
type Node interface {
	Slice() CodeSlice
}

// base is embedded by every concrete node to satisfy Node and carry its
// source span.
type base struct {
	slice CodeSlice
}

func (b *base) Slice() CodeSlice { return b.slice }

// ExtendSlice grows the node's span to also cover sp, without touching
// Line/Col/Text (which continue to describe the node's leading token).
// Used once a node's last child has been parsed, so the parent's span
// covers the whole construct as spec.md §8 requires of the root
// Namespace.
func (b *base) ExtendSlice(sp source.Span) {
	b.slice.Span = b.slice.Span.Cover(sp)
}

// Decl is the sum type over declaration nodes: ConstantDecl, VariableDecl,
// NominalTypeDecl.
type Decl interface {
	Node
	declNode()
}

type declBase struct {
	base
	Name        string
	Type        *TypeExpr
	Initializer Expr
}

func (*declBase) declNode() {}

// Expr is the sum type over expression nodes.
type Expr interface {
	Node
	exprNode()
	// EvalType holds the type assigned by the type checker; nil until
	// then.
	EvalType() *ExprType
	SetEvalType(*ExprType)
}

// ExprType wraps the checked type of an expression. Defined as its own
// type rather than importing internal/types directly in every node so
// that ast stays a leaf package; the type checker assigns the concrete
// value.
type ExprType struct {
	Name string // surface rendering, set by the type checker
	Ptr  interface{}
}

type exprBase struct {
	base
	evalType *ExprType
}

func (*exprBase) exprNode()               {}
func (e *exprBase) EvalType() *ExprType   { return e.evalType }
func (e *exprBase) SetEvalType(t *ExprType) { e.evalType = t }


package ast

import "surge/internal/types"

// TypeExpr is the parsed syntax for a type annotation: either a bare
// nominal name, a pointer modifier, or an inline struct literal.
// Resolved holds the checked types.Type; for a builtin atom or an
// already-visible nominal type it is set immediately by the parser, and
// is otherwise the Unknown sentinel until the resolver runs.
type TypeExpr struct {
	base

	Name       string // nominal reference, e.g. "i32" or "Point"
	Pointee    *TypeExpr
	FieldNames []string // inline struct { f1: T1, f2: T2 }
	FieldTypes []*TypeExpr

	Resolved *types.Type
}

// NewNominalTypeExpr builds a bare name reference, unresolved until the
// resolver runs.
func NewNominalTypeExpr(a *Arena[TypeExpr], slice CodeSlice, name string) *TypeExpr {
	te := a.AllocZero()
	te.slice = slice
	te.Name = name
	te.Resolved = types.NewUnknown(name)
	return te
}

// NewPointerTypeExpr builds "@pointee".
func NewPointerTypeExpr(a *Arena[TypeExpr], slice CodeSlice, pointee *TypeExpr) *TypeExpr {
	te := a.AllocZero()
	te.slice = slice
	te.Pointee = pointee
	te.Resolved = types.NewPointer(pointee.Resolved)
	return te
}

// NewStructTypeExpr builds an inline "struct { ... }" with parallel
// field name/type slices.
func NewStructTypeExpr(a *Arena[TypeExpr], slice CodeSlice, fieldNames []string, fieldTypes []*TypeExpr) *TypeExpr {
	te := a.AllocZero()
	te.slice = slice
	te.FieldNames = fieldNames
	te.FieldTypes = fieldTypes
	resolved := make([]*types.Type, len(fieldTypes))
	for i, f := range fieldTypes {
		resolved[i] = f.Resolved
	}
	te.Resolved = types.NewStruct("", fieldNames, resolved)
	return te
}

package ast

// ConstantDecl declares a name bound once to Initializer; it may not be
// reassigned.
type ConstantDecl struct {
	declBase
}

// NewConstantDecl allocates a ConstantDecl from the given arena.
func NewConstantDecl(a *Arena[ConstantDecl], slice CodeSlice, name string, typ *TypeExpr, init Expr) *ConstantDecl {
	d := a.AllocZero()
	d.slice = slice
	d.Name = name
	d.Type = typ
	d.Initializer = init
	return d
}

// VariableDecl declares a name that may be reassigned only if Mutable.
type VariableDecl struct {
	declBase
	Mutable bool
}

// NewVariableDecl allocates a VariableDecl from the given arena.
func NewVariableDecl(a *Arena[VariableDecl], slice CodeSlice, name string, typ *TypeExpr, init Expr, mutable bool) *VariableDecl {
	d := a.AllocZero()
	d.slice = slice
	d.Name = name
	d.Type = typ
	d.Initializer = init
	d.Mutable = mutable
	return d
}

// NominalTypeDecl introduces a new type name bound to Type.
type NominalTypeDecl struct {
	declBase
}

// NewNominalTypeDecl allocates a NominalTypeDecl from the given arena.
func NewNominalTypeDecl(a *Arena[NominalTypeDecl], slice CodeSlice, name string, typ *TypeExpr) *NominalTypeDecl {
	d := a.AllocZero()
	d.slice = slice
	d.Name = name
	d.Type = typ
	return d
}

package ast

// EmptyExpr is the unit expression; the type checker gives it type Void.
// The parser does not construct it: an empty parameter list is a nil
// slice and an omitted initializer is a nil Expr.
type EmptyExpr struct {
	exprBase
}

func NewEmptyExpr(a *Arena[EmptyExpr], slice CodeSlice) *EmptyExpr {
	n := a.AllocZero()
	n.slice = slice
	return n
}

// AddressOf is `@expr`, taking a pointer to the value produced by Expr.
type AddressOf struct {
	exprBase
	Expr Expr
}

func NewAddressOf(a *Arena[AddressOf], slice CodeSlice, expr Expr) *AddressOf {
	n := a.AllocZero()
	n.slice = slice
	n.Expr = expr
	return n
}

// Deref is `$expr`, dereferencing a pointer value.
type Deref struct {
	exprBase
	Expr Expr
}

func NewDeref(a *Arena[Deref], slice CodeSlice, expr Expr) *Deref {
	n := a.AllocZero()
	n.slice = slice
	n.Expr = expr
	return n
}

// UnknownIdentifier is a placeholder for an identifier reference the
// parser has not yet linked to a declaration. The resolver replaces
// every reachable UnknownIdentifier with a Variable or Constant node.
type UnknownIdentifier struct {
	exprBase
	Name string
}

func NewUnknownIdentifier(a *Arena[UnknownIdentifier], slice CodeSlice, name string) *UnknownIdentifier {
	n := a.AllocZero()
	n.slice = slice
	n.Name = name
	return n
}

// Variable is a resolved reference to a VariableDecl in scope.
type Variable struct {
	exprBase
	Name    string
	DeclRef *VariableDecl
}

func NewVariable(a *Arena[Variable], slice CodeSlice, name string, declRef *VariableDecl) *Variable {
	n := a.AllocZero()
	n.slice = slice
	n.Name = name
	n.DeclRef = declRef
	return n
}

// Constant is a resolved reference to a ConstantDecl in scope.
type Constant struct {
	exprBase
	Name    string
	DeclRef *ConstantDecl
}

func NewConstant(a *Arena[Constant], slice CodeSlice, name string, declRef *ConstantDecl) *Constant {
	n := a.AllocZero()
	n.slice = slice
	n.Name = name
	n.DeclRef = declRef
	return n
}

// FuncCall is a call to the function named Name with the given argument
// expressions, covering all three surface call syntaxes the parser
// accepts.
type FuncCall struct {
	exprBase
	Name       string
	Parameters []Expr
}

func NewFuncCall(a *Arena[FuncCall], slice CodeSlice, name string, params []Expr) *FuncCall {
	n := a.AllocZero()
	n.slice = slice
	n.Name = name
	n.Parameters = params
	return n
}

// Assignment is `lhs = rhs`. Neither the parser nor the type checker
// restricts Lhs to an lvalue or checks that its target is mutable; the
// type checker only requires both sides to have the same type.
type Assignment struct {
	exprBase
	Lhs Expr
	Rhs Expr
}

func NewAssignment(a *Arena[Assignment], slice CodeSlice, lhs, rhs Expr) *Assignment {
	n := a.AllocZero()
	n.slice = slice
	n.Lhs = lhs
	n.Rhs = rhs
	return n
}

// Return is `return expression`, exiting the enclosing FuncLiteral body
// with the given value.
type Return struct {
	exprBase
	Expression Expr
}

func NewReturn(a *Arena[Return], slice CodeSlice, expr Expr) *Return {
	n := a.AllocZero()
	n.slice = slice
	n.Expression = expr
	return n
}

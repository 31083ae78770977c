package ast

// Namespace groups a set of declarations and nested namespaces under a
// name. The parser's root node is always a Namespace (the file's
// implicit top-level namespace when no `namespace` clause is present).
type Namespace struct {
	base
	Name            string
	SubNamespaces   []*Namespace
	Declarations    []Decl
}

func NewNamespace(a *Arena[Namespace], slice CodeSlice, name string) *Namespace {
	n := a.AllocZero()
	n.slice = slice
	n.Name = name
	return n
}

// Scope is a parenthesized sequence of statements: declarations and
// expressions evaluated in order, each able to see declarations made
// earlier in the same or an enclosing scope. It doubles as an Expr (a
// parenthesized scope is a valid primary expression) whose value is,
// semantically, its last statement.
type Scope struct {
	exprBase
	Statements []Node
}

func NewScope(a *Arena[Scope], slice CodeSlice, statements []Node) *Scope {
	n := a.AllocZero()
	n.slice = slice
	n.Statements = statements
	return n
}

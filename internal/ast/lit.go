package ast

// IntegerLiteral is a literal integer constant; Text preserves the exact
// source digits for later parsing by the type checker.
type IntegerLiteral struct {
	exprBase
	Text string
}

func NewIntegerLiteral(a *Arena[IntegerLiteral], slice CodeSlice, text string) *IntegerLiteral {
	n := a.AllocZero()
	n.slice = slice
	n.Text = text
	return n
}

// FloatLiteral is a literal floating-point constant.
type FloatLiteral struct {
	exprBase
	Text string
}

func NewFloatLiteral(a *Arena[FloatLiteral], slice CodeSlice, text string) *FloatLiteral {
	n := a.AllocZero()
	n.slice = slice
	n.Text = text
	return n
}

// StringLiteral is a literal string or raw-string constant. Raw marks
// whether the literal used the 'N-quote raw-string syntax rather than
// "...".
type StringLiteral struct {
	exprBase
	Text string
	Raw  bool
}

func NewStringLiteral(a *Arena[StringLiteral], slice CodeSlice, text string, raw bool) *StringLiteral {
	n := a.AllocZero()
	n.slice = slice
	n.Text = text
	n.Raw = raw
	return n
}

// FuncLiteral is an anonymous function value: fn [params] -> ReturnType (body).
type FuncLiteral struct {
	exprBase
	Parameters []*VariableDecl
	ReturnType *TypeExpr
	Body       *Scope
}

func NewFuncLiteral(a *Arena[FuncLiteral], slice CodeSlice, params []*VariableDecl, ret *TypeExpr, body *Scope) *FuncLiteral {
	n := a.AllocZero()
	n.slice = slice
	n.Parameters = params
	n.ReturnType = ret
	n.Body = body
	return n
}

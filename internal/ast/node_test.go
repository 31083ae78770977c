package ast

import "testing"

func TestNodeConstructionAndSlice(t *testing.T) {
	arenas := NewArenas()
	sl := CodeSlice{Line: 1, Col: 1, Text: "42"}
	lit := NewIntegerLiteral(arenas.IntegerLiterals, sl, "42")

	if lit.Slice().Text != "42" {
		t.Fatalf("expected slice text 42, got %q", lit.Slice().Text)
	}
	if lit.EvalType() != nil {
		t.Fatal("expected nil eval type before type checking")
	}
	lit.SetEvalType(&ExprType{Name: "i32"})
	if lit.EvalType().Name != "i32" {
		t.Fatalf("expected eval type i32, got %v", lit.EvalType())
	}
}

func TestDeclAndVariableLinkage(t *testing.T) {
	arenas := NewArenas()
	decl := NewVariableDecl(arenas.VariableDecls, CodeSlice{}, "x", nil, nil, true)
	ref := NewVariable(arenas.Variables, CodeSlice{}, "x", decl)

	if ref.DeclRef != decl {
		t.Fatal("expected Variable.DeclRef to point at the same VariableDecl")
	}
	if !decl.Mutable {
		t.Fatal("expected mutable flag to persist")
	}
}

func TestScopeHoldsMixedStatements(t *testing.T) {
	arenas := NewArenas()
	decl := NewConstantDecl(arenas.ConstantDecls, CodeSlice{}, "answer", nil, nil)
	call := NewFuncCall(arenas.FuncCalls, CodeSlice{}, "print", nil)
	scope := NewScope(arenas.Scopes, CodeSlice{}, []Node{decl, call})

	if len(scope.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(scope.Statements))
	}
	if _, ok := scope.Statements[0].(*ConstantDecl); !ok {
		t.Fatal("expected first statement to be a ConstantDecl")
	}
	if _, ok := scope.Statements[1].(*FuncCall); !ok {
		t.Fatal("expected second statement to be a FuncCall")
	}
}

func TestNamespaceNesting(t *testing.T) {
	arenas := NewArenas()
	child := NewNamespace(arenas.Namespaces, CodeSlice{}, "inner")
	root := NewNamespace(arenas.Namespaces, CodeSlice{}, "")
	root.SubNamespaces = append(root.SubNamespaces, child)

	if len(root.SubNamespaces) != 1 || root.SubNamespaces[0].Name != "inner" {
		t.Fatal("expected nested namespace to be reachable from the root")
	}
}

func TestArenaPointersSurviveFurtherAllocation(t *testing.T) {
	arenas := NewArenas()
	first := NewIntegerLiteral(arenas.IntegerLiterals, CodeSlice{}, "1")
	for i := 0; i < 1000; i++ {
		NewIntegerLiteral(arenas.IntegerLiterals, CodeSlice{}, "x")
	}
	if first.Text != "1" {
		t.Fatalf("expected first node's text to survive further allocation, got %q", first.Text)
	}
}

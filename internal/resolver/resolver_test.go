package resolver

import (
	"strings"
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
)

func parseTree(t *testing.T, src string) *ast.Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	arenas := ast.NewArenas()
	tree, err := parser.Parse(fs, lx, arenas, parser.Options{})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return tree
}

func TestLinkVariableReference(t *testing.T) {
	tree := parseTree(t, "var x: i32 = 0\nval p: @i32 = @x\n")
	if err := LinkReferences(tree, nil); err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}
	xDecl := tree.Root.Declarations[0].(*ast.VariableDecl)
	p := tree.Root.Declarations[1].(*ast.VariableDecl)
	addr := p.Initializer.(*ast.AddressOf)
	v, ok := addr.Expr.(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable after linking, got %T", addr.Expr)
	}
	if v.DeclRef != xDecl {
		t.Errorf("expected back-reference to x's declaration")
	}
}

func TestLinkConstantReference(t *testing.T) {
	tree := parseTree(t, "const a = 1\nconst b = a\n")
	if err := LinkReferences(tree, nil); err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}
	aDecl := tree.Root.Declarations[0].(*ast.ConstantDecl)
	b := tree.Root.Declarations[1].(*ast.ConstantDecl)
	c, ok := b.Initializer.(*ast.Constant)
	if !ok {
		t.Fatalf("expected *ast.Constant after linking, got %T", b.Initializer)
	}
	if c.DeclRef != aDecl {
		t.Errorf("expected back-reference to a's declaration")
	}
}

func TestLinkFuncLiteralParameterReference(t *testing.T) {
	tree := parseTree(t, "fn inc [x: i32] -> i32 (return x + 1)\n")
	if err := LinkReferences(tree, nil); err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}
	decl := tree.Root.Declarations[0].(*ast.ConstantDecl)
	lit := decl.Initializer.(*ast.FuncLiteral)
	ret := lit.Body.Statements[0].(*ast.Return)
	call := ret.Expression.(*ast.FuncCall)
	v, ok := call.Parameters[0].(*ast.Variable)
	if !ok {
		t.Fatalf("expected *ast.Variable for 'x', got %T", call.Parameters[0])
	}
	if v.DeclRef != lit.Parameters[0] {
		t.Errorf("expected back-reference to the parameter declaration")
	}
}

func TestLinkUndeclaredIdentifierFails(t *testing.T) {
	tree := parseTree(t, "const a = b\n")
	err := LinkReferences(tree, nil)
	if err == nil {
		t.Fatal("expected a resolution error")
	}
	if !strings.Contains(err.Error(), "'b' was never declared") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLinkNameClashNotesPriorDeclaration(t *testing.T) {
	arenas := ast.NewArenas()
	first := ast.NewConstantDecl(arenas.ConstantDecls, ast.CodeSlice{Span: source.Span{Start: 0, End: 1}}, "x", nil, nil)
	second := ast.NewConstantDecl(arenas.ConstantDecls, ast.CodeSlice{Span: source.Span{Start: 20, End: 21}}, "x", nil, nil)
	root := ast.NewNamespace(arenas.Namespaces, ast.CodeSlice{}, "")
	root.Declarations = []ast.Decl{first, second}
	tree := &ast.Tree{Root: root, Arenas: arenas}

	bag := diag.NewBag(10)
	if err := LinkReferences(tree, diag.BagReporter{Bag: bag}); err == nil {
		t.Fatal("expected a name clash error")
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(items))
	}
	if len(items[0].Notes) != 1 {
		t.Fatalf("expected a note pointing at the prior declaration, got %d notes", len(items[0].Notes))
	}
	if items[0].Notes[0].Span != first.Slice().Span {
		t.Errorf("expected the note's span to point at the first declaration")
	}
}

func TestLinkForwardTypeReferenceFails(t *testing.T) {
	tree := parseTree(t, "const dummy: Point = 0\ntype Point: struct { x: i32, y: i32 }\n")
	err := LinkReferences(tree, nil)
	if err == nil {
		t.Fatal("expected a resolution error for a type used before its declaration")
	}
	if !strings.Contains(err.Error(), "Point") {
		t.Errorf("unexpected message: %v", err)
	}
}

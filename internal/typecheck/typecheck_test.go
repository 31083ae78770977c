package typecheck

import (
	"strings"
	"testing"

	"surge/internal/ast"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/resolver"
	"surge/internal/source"
	"surge/internal/types"
)

func buildTree(t *testing.T, src string) *ast.Tree {
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
	if err := resolver.LinkReferences(tree, nil); err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}
	return tree
}

func TestCheckConstDeclMatchingType(t *testing.T) {
	tree := buildTree(t, "const answer: i32 = 42\n")
	if err := Check(tree, nil); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestCheckConstDeclMismatchedType(t *testing.T) {
	tree := buildTree(t, "const bad: f64 = 42\n")
	err := Check(tree, nil)
	if err == nil {
		t.Fatal("expected a type error")
	}
	if !strings.Contains(err.Error(), "does not match initializer type") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestCheckInfersOmittedVariableType(t *testing.T) {
	tree := buildTree(t, "var x = 0\n")
	if err := Check(tree, nil); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	decl := tree.Root.Declarations[0].(*ast.VariableDecl)
	if decl.Type == nil || decl.Type.Resolved.Kind != types.KindAtom || decl.Type.Resolved.AtomKind != types.AtomI32 {
		t.Fatalf("expected inferred type i32, got %v", decl.Type)
	}
}

func TestCheckAddressOfPointerType(t *testing.T) {
	tree := buildTree(t, "var x: i32 = 0\nval p: @i32 = @x\n")
	if err := Check(tree, nil); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestCheckAssignmentTypeMismatch(t *testing.T) {
	tree := buildTree(t, "fn f [] -> i32 (\nvar x: i32 = 0\nvar y: f64 = 0.0\nx = y\nreturn x\n)\n")
	err := Check(tree, nil)
	if err == nil {
		t.Fatal("expected a type error")
	}
	if !strings.Contains(err.Error(), "assignment type mismatch") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestCheckAssignmentTypeMatch(t *testing.T) {
	tree := buildTree(t, "fn f [] -> i32 (\nvar x: i32 = 0\nvar z: i32 = 1\nx = z\nreturn x\n)\n")
	if err := Check(tree, nil); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

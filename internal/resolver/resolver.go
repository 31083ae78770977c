// Package resolver implements the reference-linking pass: a recursive
// walk with a fresh scope stack that replaces every UnknownIdentifier
// with a Variable or Constant back-reference, and resolves every
// Type::Unknown type expression to the nominal type it names.
package resolver

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/scope"
	"surge/internal/source"
	"surge/internal/types"
)

// ResolutionError is returned for an identifier not in scope at a use
// site, or a nominal type name that was never declared.
type ResolutionError struct {
	Span    source.Span
	Message string
}

func (e *ResolutionError) Error() string { return e.Message }

type resolver struct {
	scopes   *scope.Stack[ast.Decl]
	arenas   *ast.Arenas
	reporter diag.Reporter
}

// LinkReferences runs the reference-linking pass over tree in place.
// On success no UnknownIdentifier remains reachable from the root, and
// every Variable/Constant has a non-nil DeclRef.
func LinkReferences(tree *ast.Tree, reporter diag.Reporter) error {
	r := &resolver{scopes: scope.New[ast.Decl](), arenas: tree.Arenas, reporter: reporter}
	r.scopes.PushScope()
	defer r.scopes.PopScope()
	return r.resolveNamespace(tree.Root)
}

func (r *resolver) resolveNamespace(ns *ast.Namespace) error {
	for _, sub := range ns.SubNamespaces {
		r.scopes.PushScope()
		err := r.resolveNamespace(sub)
		r.scopes.PopScope()
		if err != nil {
			return err
		}
	}
	for _, decl := range ns.Declarations {
		if err := r.resolveDecl(decl); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) fail(span source.Span, msg string) error {
	if r.reporter != nil {
		diag.ReportError(r.reporter, diag.ResolutionError, span, msg).Emit()
	}
	return &ResolutionError{Span: span, Message: msg}
}

// failNameClash reports a NameClashError noting prior's declaration site.
func (r *resolver) failNameClash(span source.Span, name string, prior ast.Decl) error {
	msg := fmt.Sprintf("attempted to declare '%s', but something with the same name is already in scope", name)
	if r.reporter != nil {
		builder := diag.ReportError(r.reporter, diag.NameClashError, span, msg)
		if prior != nil {
			builder = builder.WithNote(prior.Slice().Span, fmt.Sprintf("'%s' was already declared here", name))
		}
		builder.Emit()
	}
	return &ResolutionError{Span: span, Message: msg}
}

// resolveDecl recurses into decl's initializer first, then resolves its
// declared type (including a Type::Unknown forward reference to a
// nominal type), then pushes decl's name into the current frame.
func (r *resolver) resolveDecl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.ConstantDecl:
		if d.Initializer != nil {
			resolved, err := r.resolveExpr(d.Initializer)
			if err != nil {
				return err
			}
			d.Initializer = resolved
		}
		if err := r.resolveTypeExpr(d.Type); err != nil {
			return err
		}
		if ok, prior := r.scopes.PushSymbol(d.Name, decl); !ok {
			return r.failNameClash(d.Slice().Span, d.Name, prior)
		}
		return nil

	case *ast.VariableDecl:
		if d.Initializer != nil {
			resolved, err := r.resolveExpr(d.Initializer)
			if err != nil {
				return err
			}
			d.Initializer = resolved
		}
		if err := r.resolveTypeExpr(d.Type); err != nil {
			return err
		}
		if ok, prior := r.scopes.PushSymbol(d.Name, decl); !ok {
			return r.failNameClash(d.Slice().Span, d.Name, prior)
		}
		return nil

	case *ast.NominalTypeDecl:
		if err := r.resolveTypeExpr(d.Type); err != nil {
			return err
		}
		if ok, prior := r.scopes.PushSymbol(d.Name, decl); !ok {
			return r.failNameClash(d.Slice().Span, d.Name, prior)
		}
		return nil
	}
	return nil
}

// resolveTypeExpr resolves te and every nested type position inside it
// (pointee, struct fields). A Type::Unknown{name} must resolve to a
// visible NominalTypeDecl; its type then replaces te's in place.
func (r *resolver) resolveTypeExpr(te *ast.TypeExpr) error {
	if te == nil {
		return nil
	}
	if te.Pointee != nil {
		if err := r.resolveTypeExpr(te.Pointee); err != nil {
			return err
		}
	}
	for _, f := range te.FieldTypes {
		if err := r.resolveTypeExpr(f); err != nil {
			return err
		}
	}
	if te.Resolved != nil && te.Resolved.Kind == types.KindUnknown {
		name := te.Resolved.Name
		decl, ok := r.scopes.Lookup(name)
		if !ok {
			return r.fail(te.Slice().Span, fmt.Sprintf("type '%s' was never declared", name))
		}
		nt, ok := decl.(*ast.NominalTypeDecl)
		if !ok {
			return r.fail(te.Slice().Span, fmt.Sprintf("'%s' does not name a type", name))
		}
		if nt.Type != nil && nt.Type.Resolved != nil {
			*te.Resolved = *nt.Type.Resolved
		}
	}
	return nil
}

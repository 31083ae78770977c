package parser

import (
	"surge/internal/ast"
	"surge/internal/token"
)

// parseNamespaceBody parses the sequence of namespace-items (nested
// namespace blocks and declarations) belonging to ns, stopping at
// closeKind (EOF at the top level, RCURLY for a nested namespace).
func (p *Parser) parseNamespaceBody(ns *ast.Namespace, closeKind token.Kind) error {
	p.skipDocStringsAndNewlines()
	for !p.at(closeKind) {
		if p.at(token.KwNamespace) {
			child, err := p.parseNamespaceDecl()
			if err != nil {
				return err
			}
			ns.SubNamespaces = append(ns.SubNamespaces, child)
		} else {
			decl, err := p.parseDeclaration()
			if err != nil {
				return err
			}
			ns.Declarations = append(ns.Declarations, decl)
		}
		p.skipDocStringsAndNewlines()
	}
	return nil
}

// parseNamespaceDecl parses `"namespace" ident "{" { namespace-item } "}"`.
func (p *Parser) parseNamespaceDecl() (*ast.Namespace, error) {
	start := p.next() // "namespace"
	nameTok, err := p.expect(token.Identifier, "as a namespace name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LCurly, "to start a namespace body"); err != nil {
		return nil, err
	}

	ns := ast.NewNamespace(p.arenas.Namespaces, p.coveringSlice(start, nameTok), nameTok.Text)
	if err := p.pushScope(start); err != nil {
		return nil, err
	}
	if err := p.parseNamespaceBody(ns, token.RCurly); err != nil {
		p.scopes.PopScope()
		return nil, err
	}
	p.scopes.PopScope()

	end, err := p.expect(token.RCurly, "to close a namespace body")
	if err != nil {
		return nil, err
	}
	ns.ExtendSlice(end.Span)
	return ns, nil
}

package parser

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/token"
	"surge/internal/types"
)

// builtinAtoms is the fixed type-name table the grammar names directly:
// i8 i16 i32 i64 u8 u16 u32 u64 f16 f32 f64. "byte" and "codepoint" are
// exposed the same way even though spec.md's grammar summary doesn't
// spell them out, since §3's atom tag set includes them.
var builtinAtoms = map[string]types.Atom{
	"byte": types.AtomByte,
	"i8": types.AtomI8, "i16": types.AtomI16, "i32": types.AtomI32, "i64": types.AtomI64,
	"u8": types.AtomU8, "u16": types.AtomU16, "u32": types.AtomU32, "u64": types.AtomU64,
	"f16": types.AtomF16, "f32": types.AtomF32, "f64": types.AtomF64,
	"codepoint": types.AtomCodePoint,
}

// parseTypeExpr parses "@" type | "struct" "{" field ("," field)* "}" |
// ident. An identifier not in builtinAtoms and not yet a declared
// nominal type is recorded as Type::Unknown{name}, resolved later.
func (p *Parser) parseTypeExpr() (*ast.TypeExpr, error) {
	tok := p.cur()

	switch {
	case tok.Kind == token.At:
		p.next()
		pointee, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewPointerTypeExpr(p.arenas.TypeExprs, p.coveringSlice(tok, p.lastConsumed), pointee), nil

	case tok.Kind == token.KwStruct:
		return p.parseStructTypeExpr()

	case tok.Kind == token.Identifier:
		p.next()
		return p.resolveNamedTypeExpr(tok), nil
	}

	return nil, p.fail(tok, fmt.Sprintf("expected a type expression, found %s %q", tok.Kind, tok.Text))
}

// resolveNamedTypeExpr classifies a bare type name: a builtin atom
// resolves immediately; a name already bound to a NominalTypeDecl in
// the current scope resolves to that declaration's type immediately;
// anything else is recorded as Type::Unknown for the reference linker.
func (p *Parser) resolveNamedTypeExpr(tok token.Token) *ast.TypeExpr {
	if atom, ok := builtinAtoms[tok.Text]; ok {
		te := ast.NewNominalTypeExpr(p.arenas.TypeExprs, p.sliceFor(tok), tok.Text)
		te.Resolved = types.NewAtom(atom)
		return te
	}
	if decl, ok := p.scopes.Lookup(tok.Text); ok {
		if nt, ok := decl.(*ast.NominalTypeDecl); ok && nt.Type != nil {
			te := ast.NewNominalTypeExpr(p.arenas.TypeExprs, p.sliceFor(tok), tok.Text)
			te.Resolved = nt.Type.Resolved
			return te
		}
	}
	return ast.NewNominalTypeExpr(p.arenas.TypeExprs, p.sliceFor(tok), tok.Text)
}

// parseStructTypeExpr parses "struct" "{" field ("," field)* "}"; a
// duplicate field name is a fatal parse error.
func (p *Parser) parseStructTypeExpr() (*ast.TypeExpr, error) {
	start := p.next() // "struct"
	if _, err := p.expect(token.LCurly, "to start a struct type"); err != nil {
		return nil, err
	}
	p.skipDocStringsAndNewlines()

	var names []string
	var fields []*ast.TypeExpr
	seen := map[string]bool{}

	for !p.at(token.RCurly) {
		nameTok, err := p.expect(token.Identifier, "as a struct field name")
		if err != nil {
			return nil, err
		}
		if seen[nameTok.Text] {
			return nil, p.fail(nameTok, fmt.Sprintf("duplicate field name %q in struct type", nameTok.Text))
		}
		seen[nameTok.Text] = true

		if _, err := p.expect(token.Colon, "after struct field name"); err != nil {
			return nil, err
		}
		fieldType, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		names = append(names, nameTok.Text)
		fields = append(fields, fieldType)

		p.skipDocStringsAndNewlines()
		if p.at(token.Comma) {
			p.next()
			p.skipDocStringsAndNewlines()
			continue
		}
		break
	}

	end, err := p.expect(token.RCurly, "to close a struct type")
	if err != nil {
		return nil, err
	}

	return ast.NewStructTypeExpr(p.arenas.TypeExprs, p.coveringSlice(start, end), names, fields), nil
}

// Package parser implements the Pratt-precedence recursive-descent parser:
// source tokens in, one arena-backed AST out. Every error is fatal for the
// current parse call — there is no error recovery.
package parser

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/scope"
	"surge/internal/source"
	"surge/internal/token"
)

// Options configures one parse call.
type Options struct {
	Reporter diag.Reporter
	// MaxScopeDepth bounds how many lexical frames (scopes, function
	// bodies, namespaces) may nest before parsing fails rather than
	// exhausting the call stack. Zero uses defaultMaxScopeDepth, which
	// comfortably covers spec.md's documented depth-64 requirement.
	MaxScopeDepth int
}

// Parser holds the state of one file's parse: the token source, the
// arenas new nodes are allocated from, and the scope stack used to
// enforce "const pushes before parsing its initializer" discipline and
// to reject redeclarations at parse time.
type Parser struct {
	fs     *source.FileSet
	lx     *lexer.Lexer
	arenas *ast.Arenas
	opts   Options
	scopes *scope.Stack[ast.Decl]

	maxScopeDepth int
	lastConsumed  token.Token
}

// defaultMaxScopeDepth bounds scope nesting when Options.MaxScopeDepth
// is left at zero. spec.md requires depth >= 64 to parse without stack
// exhaustion; this default leaves ample room above that floor.
const defaultMaxScopeDepth = 512

// pushScope pushes a new lexical frame, failing with a ParseError if
// doing so would exceed the configured scope-depth limit rather than
// recursing further.
func (p *Parser) pushScope(tok token.Token) error {
	if p.scopes.Depth() >= p.maxScopeDepth {
		return p.fail(tok, fmt.Sprintf("scope nesting exceeds the configured limit of %d", p.maxScopeDepth))
	}
	p.scopes.PushScope()
	return nil
}

// ParseError is returned by Parse when the current parse call hit a
// fatal syntax error. It carries the formatted message spec.md §7
// requires: "Parse error: <file>:<line>:<column>: <description>".
type ParseError struct {
	Span    source.Span
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// Parse runs the parser over every token lx yields and returns the
// resulting tree, or the first fatal error encountered.
func Parse(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Arenas, opts Options) (*ast.Tree, error) {
	maxScopeDepth := opts.MaxScopeDepth
	if maxScopeDepth <= 0 {
		maxScopeDepth = defaultMaxScopeDepth
	}
	p := &Parser{fs: fs, lx: lx, arenas: arenas, opts: opts, scopes: scope.New[ast.Decl](), maxScopeDepth: maxScopeDepth}

	start := p.cur()
	p.scopes.PushScope() // invariant: the namespace frame is always present while parsing
	root := ast.NewNamespace(arenas.Namespaces, p.sliceFor(start), "")

	if err := p.parseNamespaceBody(root, token.EOF); err != nil {
		return nil, err
	}
	p.scopes.PopScope()

	root.ExtendSlice(p.lastConsumed.Span)
	return &ast.Tree{Root: root, Arenas: arenas}, nil
}

// sliceFor builds a CodeSlice for tok, resolving its line/column via the
// file set.
func (p *Parser) sliceFor(tok token.Token) ast.CodeSlice {
	start, _ := p.fs.Resolve(tok.Span)
	return ast.CodeSlice{Span: tok.Span, Line: start.Line, Col: start.Col, Text: tok.Text}
}

// coveringSlice builds a CodeSlice spanning from the first token's start
// to the last token's end, with the text of the first token (matching
// spec.md's CodeSlice.text, which identifies the node's leading token).
func (p *Parser) coveringSlice(first, last token.Token) ast.CodeSlice {
	sp := first.Span.Cover(last.Span)
	start, _ := p.fs.Resolve(sp)
	return ast.CodeSlice{Span: sp, Line: start.Line, Col: start.Col, Text: first.Text}
}

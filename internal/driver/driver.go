// Package driver wires the front-end phases — tokenize, parse, link
// references, type-check — into single-file and whole-directory
// pipelines, collecting each file's diagnostics into its own Bag.
package driver

import (
	"surge/internal/ast"
	"surge/internal/config"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/resolver"
	"surge/internal/source"
	"surge/internal/token"
	"surge/internal/typecheck"
)

// TokenizeResult holds one file's token stream and diagnostics.
type TokenizeResult struct {
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize runs only the lexer over fileID's content.
func Tokenize(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fileID)
	reporter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return TokenizeResult{FileID: fileID, Tokens: tokens, Bag: bag}
}

// BuildResult holds the outcome of running the full front end over one
// file: its tree (nil on a fatal parse error) and its diagnostics.
type BuildResult struct {
	FileID source.FileID
	Tree   *ast.Tree
	Bag    *diag.Bag
	Err    error
}

// Build runs the lexer, parser, reference linker, and type checker over
// fileID in sequence with the default configuration, halting at the
// first phase that reports a fatal error.
func Build(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) BuildResult {
	return BuildWithConfig(fs, fileID, maxDiagnostics, config.Default())
}

// BuildWithConfig runs the same pipeline as Build, sizing the tree's
// arenas and the parser's scope-depth limit from cfg. Every phase
// reports into the same Bag.
func BuildWithConfig(fs *source.FileSet, fileID source.FileID, maxDiagnostics int, cfg config.Config) BuildResult {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fileID)

	lexReporter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter})

	diagReporter := diag.BagReporter{Bag: bag}
	arenas := ast.NewArenasWithChunkSize(cfg.ArenaMinChunkSize)

	tree, err := parser.Parse(fs, lx, arenas, parser.Options{Reporter: diagReporter, MaxScopeDepth: cfg.ScopeDepthLimit})
	if err != nil {
		return BuildResult{FileID: fileID, Bag: bag, Err: err}
	}

	if err := resolver.LinkReferences(tree, diagReporter); err != nil {
		return BuildResult{FileID: fileID, Tree: tree, Bag: bag, Err: err}
	}

	if err := typecheck.Check(tree, diagReporter); err != nil {
		return BuildResult{FileID: fileID, Tree: tree, Bag: bag, Err: err}
	}

	return BuildResult{FileID: fileID, Tree: tree, Bag: bag}
}

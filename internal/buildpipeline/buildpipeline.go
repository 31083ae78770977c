// Package buildpipeline drives the front-end phases per file the same
// way internal/driver does, but emits an Event before and after each
// phase so a progress display can render per-file, per-stage status
// for a multi-file build.
package buildpipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"surge/internal/ast"
	"surge/internal/config"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/resolver"
	"surge/internal/source"
	"surge/internal/typecheck"
)

// Stage identifies a front-end phase.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageResolve
	StageTypeCheck
)

// Status reports the state of a (File, Stage) pair.
type Status int

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one transition in the pipeline of the file named File.
// Run emits only per-file events; completion is signalled by closing the
// event channel.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// FileResult mirrors driver.FileResult. Results are not carried by
// Events; they are returned by the collect function Run hands back.
type FileResult struct {
	Path string
	FS   *source.FileSet
	Bag  *diag.Bag
	Err  error
}

// Run fans lex/parse/resolve/typecheck out across every *.sg file under
// dir, up to jobs concurrently, and streams per-stage Events on the
// returned channel. The channel is closed once every file is done; the
// final results slice (index-aligned with the sorted file list) is
// only valid after draining the channel.
func Run(ctx context.Context, dir string, maxDiagnostics, jobs int) (<-chan Event, func() ([]FileResult, error)) {
	return RunWithConfig(ctx, dir, maxDiagnostics, jobs, config.Default())
}

// RunWithConfig runs the same per-file pipeline as Run, sizing each
// file's arenas and scope-depth limit from cfg.
func RunWithConfig(ctx context.Context, dir string, maxDiagnostics, jobs int, cfg config.Config) (<-chan Event, func() ([]FileResult, error)) {
	events := make(chan Event, 64)

	paths, listErr := listSourceFiles(dir)
	if listErr != nil || len(paths) == 0 {
		close(events)
		return events, func() ([]FileResult, error) { return nil, listErr }
	}

	results := make([]FileResult, len(paths))
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	done := make(chan error, 1)
	go func() {
		defer close(events)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(paths)))

		for i, path := range paths {
			events <- Event{File: path, Stage: StageLex, Status: StatusQueued}
			g.Go(func(i int, path string) func() error {
				return func() error {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					results[i] = runFile(path, maxDiagnostics, cfg, events)
					return nil
				}
			}(i, path))
		}
		done <- g.Wait()
	}()

	return events, func() ([]FileResult, error) { return results, <-done }
}

func runFile(path string, maxDiagnostics int, cfg config.Config, events chan<- Event) FileResult {
	bag := diag.NewBag(maxDiagnostics)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		events <- Event{File: path, Stage: StageLex, Status: StatusError}
		return FileResult{Path: path, FS: fs, Bag: bag, Err: err}
	}
	file := fs.Get(fileID)

	events <- Event{File: path, Stage: StageLex, Status: StatusWorking}
	lexReporter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter})
	events <- Event{File: path, Stage: StageLex, Status: StatusDone}

	diagReporter := diag.BagReporter{Bag: bag}
	arenas := ast.NewArenasWithChunkSize(cfg.ArenaMinChunkSize)

	events <- Event{File: path, Stage: StageParse, Status: StatusWorking}
	tree, err := parser.Parse(fs, lx, arenas, parser.Options{Reporter: diagReporter, MaxScopeDepth: cfg.ScopeDepthLimit})
	if err != nil {
		events <- Event{File: path, Stage: StageParse, Status: StatusError}
		return FileResult{Path: path, FS: fs, Bag: bag, Err: err}
	}
	events <- Event{File: path, Stage: StageParse, Status: StatusDone}

	events <- Event{File: path, Stage: StageResolve, Status: StatusWorking}
	if err := resolver.LinkReferences(tree, diagReporter); err != nil {
		events <- Event{File: path, Stage: StageResolve, Status: StatusError}
		return FileResult{Path: path, FS: fs, Bag: bag, Err: err}
	}
	events <- Event{File: path, Stage: StageResolve, Status: StatusDone}

	events <- Event{File: path, Stage: StageTypeCheck, Status: StatusWorking}
	if err := typecheck.Check(tree, diagReporter); err != nil {
		events <- Event{File: path, Stage: StageTypeCheck, Status: StatusError}
		return FileResult{Path: path, FS: fs, Bag: bag, Err: err}
	}
	events <- Event{File: path, Stage: StageTypeCheck, Status: StatusDone}

	return FileResult{Path: path, FS: fs, Bag: bag}
}

// ListSourceFiles returns every *.sg file under dir, sorted, the same
// set Run will drive — useful for a caller that wants to size a
// progress display before the pipeline starts.
func ListSourceFiles(dir string) ([]string, error) {
	return listSourceFiles(dir)
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sg") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

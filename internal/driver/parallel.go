package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"surge/internal/config"
	"surge/internal/diag"
	"surge/internal/source"
)

// FileResult is one file's outcome within a directory build.
type FileResult struct {
	Path   string
	Result BuildResult
}

// listSourceFiles returns every *.sg file under dir, sorted for a
// deterministic build order.
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

// BuildDir runs Build concurrently over every *.sg file under dir, up to
// jobs at a time (GOMAXPROCS when jobs <= 0). Results are returned in
// the same sorted order listSourceFiles produces; a per-file load or
// build error is recorded in that file's own result rather than
// aborting the rest of the directory.
func BuildDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []FileResult, error) {
	return BuildDirWithConfig(ctx, dir, maxDiagnostics, jobs, config.Default())
}

// BuildDirWithConfig runs the same directory build as BuildDir, sizing
// each file's arenas and scope-depth limit from cfg.
func BuildDirWithConfig(ctx context.Context, dir string, maxDiagnostics, jobs int, cfg config.Config) (*source.FileSet, []FileResult, error) {
	paths, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		fileIDs[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if loadErrs[i] != nil {
					bag := diag.NewBag(maxDiagnostics)
					results[i] = FileResult{Path: path, Result: BuildResult{Bag: bag, Err: loadErrs[i]}}
					return nil
				}

				results[i] = FileResult{Path: path, Result: BuildWithConfig(fileSet, fileIDs[i], maxDiagnostics, cfg)}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

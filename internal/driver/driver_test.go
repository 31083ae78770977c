package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"surge/internal/source"
)

func TestTokenizeCollectsEOF(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("const x = 1\n"))
	result := Tokenize(fs, id, 16)
	if len(result.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	last := result.Tokens[len(result.Tokens)-1]
	if last.Kind.String() != "EOF" {
		t.Errorf("expected stream to end in EOF, got %s", last.Kind.String())
	}
}

func TestBuildSucceedsOnWellTypedFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("const answer: i32 = 42\n"))
	result := Build(fs, id, 16)
	if result.Err != nil {
		t.Fatalf("unexpected build error: %v", result.Err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Bag.Items())
	}
}

func TestBuildStopsAtResolutionError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("const a = never_declared\n"))
	result := Build(fs, id, 16)
	if result.Err == nil {
		t.Fatal("expected a resolution error")
	}
}

func TestBuildDirRunsEveryFile(t *testing.T) {
	dir := t.TempDir()
	good := "const answer: i32 = 42\n"
	bad := "const a = never_declared\n"
	if err := os.WriteFile(filepath.Join(dir, "good.sg"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.sg"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	_, results, err := BuildDir(context.Background(), dir, 16, 0)
	if err != nil {
		t.Fatalf("unexpected directory error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byName := make(map[string]FileResult, 2)
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	if byName["good.sg"].Result.Err != nil {
		t.Errorf("expected good.sg to build cleanly, got %v", byName["good.sg"].Result.Err)
	}
	if byName["bad.sg"].Result.Err == nil {
		t.Error("expected bad.sg to fail resolution")
	}
}

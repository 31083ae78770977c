package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "surge.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValidOnItsOwn(t *testing.T) {
	cfg := Default()
	if cfg.ScopeDepthLimit < MinScopeDepthLimit {
		t.Fatalf("default scope depth limit %d is below the documented floor of %d", cfg.ScopeDepthLimit, MinScopeDepthLimit)
	}
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nsource = \"src/main.sg\"\n\n[build]\ncolor = \"off\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "src/main.sg" {
		t.Errorf("expected source to be overridden, got %q", cfg.Source)
	}
	if cfg.Color != "off" {
		t.Errorf("expected color to be overridden, got %q", cfg.Color)
	}
	if cfg.ArenaMinChunkSize != DefaultArenaMinChunkSize {
		t.Errorf("expected arena_min_chunk_size to keep its default, got %d", cfg.ArenaMinChunkSize)
	}
	if cfg.ScopeDepthLimit != DefaultScopeDepthLimit {
		t.Errorf("expected scope_depth_limit to keep its default, got %d", cfg.ScopeDepthLimit)
	}
}

func TestLoadRejectsScopeDepthBelowFloor(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[build]\nscope_depth_limit = 10\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "scope_depth_limit must be >= 64") {
		t.Fatalf("expected a scope_depth_limit validation error, got %v", err)
	}
}

func TestLoadRejectsUnknownColorMode(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[build]\ncolor = \"always\"\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "color must be one of") {
		t.Fatalf("expected a color validation error, got %v", err)
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nsource = \"main.sg\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("expected to find the manifest, got ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("expected manifest directory %q, got %q", root, filepath.Dir(path))
	}
}

func TestFindAndLoadFallsBackToDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	cfg, found, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no manifest to be found")
	}
	if cfg != Default() {
		t.Errorf("expected defaults when no manifest exists, got %+v", cfg)
	}
}

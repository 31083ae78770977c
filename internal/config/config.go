// Package config loads the optional surge.toml project manifest: the
// source entry file, arena chunk sizing, diagnostic color mode, and
// the scope-depth limit the parser enforces. Absent a manifest, every
// field falls back to a built-in default and the CLI runs from a bare
// source path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultArenaMinChunkSize is the default minimum arena chunk size. It
// counts elements (node slots) per chunk, not bytes: each arena's first
// chunk holds 4096 nodes whatever the node type's size.
const DefaultArenaMinChunkSize = 4096

// DefaultColor leaves color detection to the terminal.
const DefaultColor = "auto"

// DefaultScopeDepthLimit comfortably exceeds spec.md §8's documented
// depth-64 floor.
const DefaultScopeDepthLimit = 256

// MinScopeDepthLimit is the boundary spec.md §8 names: an
// implementation's documented limit must allow at least this much
// nesting without stack exhaustion.
const MinScopeDepthLimit = 64

// Config holds the settings a surge.toml manifest may override.
type Config struct {
	// Source is the entry file to build when the CLI is invoked with
	// no explicit path. Empty unless a manifest sets [package].source.
	Source string
	// ArenaMinChunkSize is the minimum element count each AST arena
	// grows by when it needs a new chunk.
	ArenaMinChunkSize int
	// Color is one of "auto", "on", "off".
	Color string
	// ScopeDepthLimit bounds parser scope nesting.
	ScopeDepthLimit int
}

// Default returns the built-in configuration used when no manifest is
// present or a field is left unset in one that is.
func Default() Config {
	return Config{
		ArenaMinChunkSize: DefaultArenaMinChunkSize,
		Color:             DefaultColor,
		ScopeDepthLimit:   DefaultScopeDepthLimit,
	}
}

type manifest struct {
	Package packageSection `toml:"package"`
	Build   buildSection   `toml:"build"`
}

type packageSection struct {
	Source string `toml:"source"`
}

type buildSection struct {
	ArenaMinChunkSize int    `toml:"arena_min_chunk_size"`
	Color             string `toml:"color"`
	ScopeDepthLimit   int    `toml:"scope_depth_limit"`
}

// Find walks upward from startDir looking for a surge.toml, the same
// way a version control root is discovered: checked at each directory,
// then its parent, until the filesystem root is reached.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "surge.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads and validates the manifest at path, overlaying its
// [package] and [build] sections onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Config{}, fmt.Errorf("%s: parsing TOML: %w", path, err)
	}

	if meta.IsDefined("package", "source") {
		cfg.Source = strings.TrimSpace(m.Package.Source)
	}
	if meta.IsDefined("build", "arena_min_chunk_size") {
		cfg.ArenaMinChunkSize = m.Build.ArenaMinChunkSize
	}
	if meta.IsDefined("build", "color") {
		cfg.Color = strings.ToLower(strings.TrimSpace(m.Build.Color))
	}
	if meta.IsDefined("build", "scope_depth_limit") {
		cfg.ScopeDepthLimit = m.Build.ScopeDepthLimit
	}

	if cfg.ArenaMinChunkSize <= 0 {
		return Config{}, fmt.Errorf("%s: [build].arena_min_chunk_size must be positive, got %d", path, cfg.ArenaMinChunkSize)
	}
	if cfg.ScopeDepthLimit < MinScopeDepthLimit {
		return Config{}, fmt.Errorf("%s: [build].scope_depth_limit must be >= %d, got %d", path, MinScopeDepthLimit, cfg.ScopeDepthLimit)
	}
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: [build].color must be one of auto, on, off, got %q", path, cfg.Color)
	}

	return cfg, nil
}

// FindAndLoad searches startDir and its ancestors for a surge.toml and
// loads it if found. It returns Default() with found=false if no
// manifest exists anywhere above startDir.
func FindAndLoad(startDir string) (cfg Config, found bool, err error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), false, err
	}
	if !ok {
		return Default(), false, nil
	}
	cfg, err = Load(path)
	return cfg, true, err
}

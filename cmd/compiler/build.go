package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"surge/internal/buildpipeline"
	"surge/internal/diag"
	"surge/internal/diagfmt"
	"surge/internal/driver"
	"surge/internal/source"
	"surge/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.sg|dir]",
	Short: "Run the full front end (tokenize, parse, resolve, type-check) over a file or directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "parallelism for directory builds (0 = GOMAXPROCS)")
	buildCmd.Flags().Bool("progress", false, "show a live per-file progress display (directory builds only)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	jobs, _ := cmd.Flags().GetInt("jobs")
	showProgress, _ := cmd.Flags().GetBool("progress")

	path, err := resolveSourceArg(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		fs := source.NewFileSet()
		fileID, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		result := driver.BuildWithConfig(fs, fileID, maxDiagnostics, projectConfig)
		printBuildDiagnostics(cmd, fs, result.Bag)
		if result.Err != nil || result.Bag.HasErrors() {
			os.Exit(1)
		}
		return nil
	}

	if showProgress && isTerminal(os.Stdout) {
		return runBuildDirWithProgress(cmd, path, maxDiagnostics, jobs)
	}

	fs, results, err := driver.BuildDirWithConfig(context.Background(), path, maxDiagnostics, jobs, projectConfig)
	if err != nil {
		return fmt.Errorf("building %s: %w", path, err)
	}

	failed := false
	for _, r := range results {
		printBuildDiagnostics(cmd, fs, r.Result.Bag)
		if r.Result.Err != nil || r.Result.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// runBuildDirWithProgress drives buildpipeline.Run behind a bubbletea
// progress display, then prints each file's diagnostics once the
// display has finished.
func runBuildDirWithProgress(cmd *cobra.Command, dir string, maxDiagnostics, jobs int) error {
	files, err := buildpipeline.ListSourceFiles(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	events, collect := buildpipeline.RunWithConfig(context.Background(), dir, maxDiagnostics, jobs, projectConfig)
	program := tea.NewProgram(ui.NewProgressModel("building "+dir, files, events))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("progress display: %w", err)
	}

	results, err := collect()
	if err != nil {
		return fmt.Errorf("building %s: %w", dir, err)
	}

	failed := false
	for _, r := range results {
		printBuildDiagnostics(cmd, r.FS, r.Bag)
		if r.Err != nil || (r.Bag != nil && r.Bag.HasErrors()) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func printBuildDiagnostics(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	})
}

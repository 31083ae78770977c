package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/diagfmt"
	"surge/internal/driver"
	"surge/internal/source"
	"surge/internal/tokenfmt"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] [file.sg]",
	Short: "Tokenize a surge source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	path, err := resolveSourceArg(args)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result := driver.Tokenize(fs, fileID, maxDiagnostics)

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, fs, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	case "msgpack":
		return tokenfmt.Encode(os.Stdout, result.Tokens, fs)
	default:
		return fmt.Errorf("unknown format %q (must be pretty, json, or msgpack)", format)
	}
}

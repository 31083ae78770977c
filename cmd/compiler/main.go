package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"surge/internal/config"
	"surge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "surgec",
	Short: "Surge front-end driver",
	Long:  `surgec tokenizes, parses, resolves, and type-checks surge source files`,
}

// projectConfig is loaded once from the nearest surge.toml (if any)
// above the working directory and used to seed flag defaults; an
// explicit flag always takes precedence over it.
var projectConfig config.Config

func main() {
	rootCmd.Version = version.Version

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "surgec:", err)
		os.Exit(1)
	}
	projectConfig, _, err = config.FindAndLoad(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "surgec:", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", projectConfig.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveSourceArg returns the explicit path args[0] if given, else
// projectConfig.Source from the nearest surge.toml. It is an error for
// both to be empty.
func resolveSourceArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if projectConfig.Source == "" {
		return "", fmt.Errorf("no source file given and no [package].source in surge.toml")
	}
	return projectConfig.Source, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode != "off" && isTerminal(out))
}

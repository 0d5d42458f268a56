package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rosh/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rosh",
	Short: "Rosh confidential smart-contract compiler",
	Long:  `Rosh compiles confidential smart-contract programs and explains its diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off), overrides rosh.toml and ROSH_COLOR")
	rootCmd.PersistentFlags().Bool("json", false, "emit diagnostics as machine-readable JSON, overrides rosh.toml and ROSH_JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

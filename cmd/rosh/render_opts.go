package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rosh/internal/config"
	"rosh/internal/diagfmt"
	"rosh/internal/source"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|on|off)", value)
	}
}

// resolveRenderOptions folds rosh.toml, the environment, and the global
// CLI flags into one explicit rendering configuration. Flags win over
// the environment, which wins over the file.
func resolveRenderOptions(cmd *cobra.Command, files *source.FileSet) (diagfmt.Options, error) {
	cfg, _, err := config.Load(".")
	if err != nil {
		return diagfmt.Options{}, err
	}

	machine := cfg.Diagnostics.Format == "json"
	if cmd.Root().PersistentFlags().Changed("json") {
		machine, err = cmd.Root().PersistentFlags().GetBool("json")
		if err != nil {
			return diagfmt.Options{}, fmt.Errorf("failed to get json flag: %w", err)
		}
	}

	colorValue := cfg.Diagnostics.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		colorValue, err = cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return diagfmt.Options{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return diagfmt.Options{}, err
	}

	colored := false
	switch mode {
	case colorModeOn:
		colored = true
	case colorModeOff:
		colored = false
	default:
		colored = isTerminal(os.Stderr)
	}
	if machine {
		colored = false
	}

	return diagfmt.Options{
		Machine:     machine,
		Color:       colored,
		RedactRoots: cfg.RedactRoots(),
		Files:       files,
		DocBase:     cfg.Diagnostics.DocsBase,
	}, nil
}

// Package config loads tool configuration from rosh.toml and the
// environment. Precedence, lowest to highest: built-in defaults, the
// nearest rosh.toml walking up from the start directory, environment
// variables, CLI flags (applied by the command layer).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root of rosh.toml.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
}

// Diagnostics configures error rendering.
type Diagnostics struct {
	// Format selects "human" or "json" output.
	Format string `toml:"format"`
	// Color is "auto", "on" or "off".
	Color string `toml:"color"`
	// Redact lists extra path roots to scrub from output, in addition
	// to the home and working directories.
	Redact []string `toml:"redact"`
	// DocsBase overrides the documentation root in rendered links.
	DocsBase string `toml:"docs-base"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{
			Format: "human",
			Color:  "auto",
		},
	}
}

// findRoshToml walks up from startDir looking for rosh.toml.
func findRoshToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "rosh.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the nearest rosh.toml above startDir, if any, over the
// defaults and then applies environment overrides. The returned path is
// "" when no file was found.
func Load(startDir string) (Config, string, error) {
	cfg := Default()

	path, found, err := findRoshToml(startDir)
	if err != nil {
		return cfg, "", err
	}
	if found {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, path, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, path, nil
}

// applyEnv folds ROSH_JSON and ROSH_COLOR into the configuration.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("ROSH_JSON"); ok && v != "" && v != "0" {
		c.Diagnostics.Format = "json"
	}
	if v, ok := os.LookupEnv("ROSH_COLOR"); ok && v != "" {
		c.Diagnostics.Color = v
	}
}

// RedactRoots returns the unsafe path roots for the current process:
// the home directory, the working directory, and any configured extras.
func (c Config) RedactRoots() []string {
	roots := make([]string, 0, len(c.Diagnostics.Redact)+2)
	if home, err := os.UserHomeDir(); err == nil && home != "" && home != "/" {
		roots = append(roots, home)
	}
	if wd, err := os.Getwd(); err == nil && wd != "" && wd != "/" {
		roots = append(roots, wd)
	}
	roots = append(roots, c.Diagnostics.Redact...)
	return roots
}

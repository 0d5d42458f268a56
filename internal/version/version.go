// Package version carries the build fingerprint of the rosh CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Styled returns Version with each numeric component colored for
// terminal display. Version itself stays plain so machine output never
// carries escape codes. Versions that do not look like major.minor.patch
// are returned unchanged.
func Styled() string {
	base, pre, _ := strings.Cut(Version, "-")
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if pre != "" {
		out += "-" + pre
	}
	return out
}

package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestStyled(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	defer func() {
		Version = origVersion
		color.NoColor = origNoColor
	}()

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "release", version: "1.2.3", want: "1.2.3"},
		{name: "prerelease kept", version: "0.1.0-dev", want: "0.1.0-dev"},
		{name: "not semver passes through", version: "nightly", want: "nightly"},
		{name: "two components pass through", version: "1.2", want: "1.2"},
	}
	// with styling disabled the styled form must equal the plain version
	color.NoColor = true
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			if got := Styled(); got != tt.want {
				t.Errorf("Styled() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyled_VersionStaysPlain(t *testing.T) {
	if strings.Contains(Version, "\x1b[") {
		t.Errorf("Version must not carry escape codes: %q", Version)
	}
}

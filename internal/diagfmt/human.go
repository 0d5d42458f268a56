package diagfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"rosh/internal/diag"
	"rosh/internal/source"
)

// maxMessageWidth bounds the message line of human output.
const maxMessageWidth = 512

// styles holds the style functions of one rendering call. With color
// disabled every function is the identity, so styled and plain output
// differ only in escape sequences.
type styles struct {
	errTag func(a ...any) string
	bold   func(a ...any) string
	lineNo func(a ...any) string
	faint  func(a ...any) string
}

func newStyles(enabled bool) styles {
	errTag := color.New(color.FgRed, color.Bold)
	bold := color.New(color.Bold)
	lineNo := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)
	for _, c := range []*color.Color{errTag, bold, lineNo, faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return styles{
		errTag: errTag.Sprint,
		bold:   bold.Sprint,
		lineNo: lineNo.Sprint,
		faint:  faint.Sprint,
	}
}

func renderHuman(opts Options, frames []diag.Frame, loc source.Location, e diag.Error) Failure {
	st := newStyles(opts.Color)
	code := diag.CodeOf(e)
	message := runewidth.Truncate(norm.NFC.String(e.Error()), maxMessageWidth, "...")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s\n", st.errTag("error"), st.bold("["+code+"]"), message)
	b.WriteString("\n")
	fmt.Fprintf(&b, "at %s\n", st.bold(loc.String()))
	b.WriteString("\n")

	if excerpt, lineNum, ok := lookupExcerpt(opts.Files, loc); ok {
		fmt.Fprintf(&b, " %s| %s\n", st.lineNo(fmt.Sprintf("%d", lineNum)), st.faint(excerpt))
		b.WriteString("\n")
	}

	if len(frames) > 0 {
		b.WriteString(st.bold("Trace") + ":\n")
		for _, line := range diag.TopOfTrace(frames) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "For more information see %s\n", docURL(opts, e))

	return Failure{
		Code:   code,
		Output: redact(b.String(), opts.RedactRoots),
	}
}

// lookupExcerpt fetches the 1-indexed source line a location points at.
// A missing file set, an unknown origin, a stdlib origin, an absent
// position, or an unreadable file all degrade to "no excerpt"; none of
// them is an error of the renderer.
func lookupExcerpt(files *source.FileSet, loc source.Location) (string, uint32, bool) {
	if files == nil || loc.Pos == nil {
		return "", 0, false
	}
	path, ok := loc.FileOf()
	if !ok {
		return "", 0, false
	}
	line, ok := files.Line(path, loc.Pos.Line)
	if !ok {
		return "", 0, false
	}
	return line, loc.Pos.Line, true
}

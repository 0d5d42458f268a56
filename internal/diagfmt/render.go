// Package diagfmt renders a thrown error together with its location and
// optional call trace, either as styled terminal text or as the JSON
// wire record. Rendering is pure: it produces a Failure value that a
// single top-level boundary turns into process termination, so tests
// can capture the would-be-fatal output instead of tearing the process
// down.
package diagfmt

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"rosh/internal/diag"
	"rosh/internal/source"
)

// Failure carries the fully formatted diagnostic of an abandoned
// compilation attempt. It implements error so it can travel up the call
// chain to the exit boundary.
type Failure struct {
	// Machine reports which channel discipline applies: machine output
	// is exactly one JSON object on stdout, human output goes to
	// stderr.
	Machine bool
	// Code is the stable public code of the underlying error.
	Code string
	// Output is the exact string to emit before exiting non-zero.
	Output string
}

func (f Failure) Error() string {
	return f.Output
}

// Render formats an error thrown at loc with optional context frames.
// The compilation attempt that triggered it is over: the caller's only
// remaining duty is to hand the Failure to the exit boundary.
func Render(opts Options, frames []diag.Frame, loc source.Location, e diag.Error) Failure {
	if opts.Machine {
		return renderMachine(opts, loc, e)
	}
	return renderHuman(opts, frames, loc, e)
}

func renderMachine(opts Options, loc source.Location, e diag.Error) Failure {
	record := diag.NewCompilationError(loc, e)
	record.ErrorMessage = redact(norm.NFC.String(record.ErrorMessage), opts.RedactRoots)
	for i, s := range record.Suggestions {
		record.Suggestions[i] = redact(s, opts.RedactRoots)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		// The wire record is plain strings and ints; marshalling it
		// cannot fail unless the record shape itself is broken.
		panic(fmt.Errorf("diagfmt: marshal wire record: %w", err))
	}
	return Failure{
		Machine: true,
		Code:    diag.CodeOf(e),
		Output:  string(payload),
	}
}

func docURL(opts Options, e diag.Error) string {
	base := opts.DocBase
	if base == "" {
		base = diag.DocBase
	}
	return base + diag.CodeOf(e) + ".html"
}

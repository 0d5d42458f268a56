package diagfmt

import "rosh/internal/source"

// Options configures one rendering call. It is an explicit value
// threaded into Render rather than process-global state, so the same
// process can render with different configurations (tests do).
type Options struct {
	// Machine selects the JSON wire format instead of styled text.
	Machine bool
	// Color enables ANSI styling in human output. Ignored in machine
	// mode. When false every style function is the identity.
	Color bool
	// RedactRoots lists absolute path prefixes that must not appear in
	// emitted output; each occurrence is replaced with the redaction
	// marker.
	RedactRoots []string
	// Files serves source-line excerpts. May be nil; excerpts are then
	// omitted.
	Files *source.FileSet
	// DocBase overrides the documentation root. Empty means the
	// published default.
	DocBase string
}

// PrettyOpts is a convenience constructor for human rendering.
func PrettyOpts(color bool, files *source.FileSet) Options {
	return Options{Color: color, Files: files}
}

// MachineOpts is a convenience constructor for machine rendering.
func MachineOpts() Options {
	return Options{Machine: true}
}

package source

import "strings"

type originKind uint8

const (
	originStdlib originKind = iota
	originFile
)

// Origin identifies which compilation unit a location belongs to: the
// bundled standard library or a user file. Values are immutable and
// compared structurally.
type Origin struct {
	kind originKind
	path string
}

// StdlibOrigin returns the origin of the bundled standard library.
func StdlibOrigin() Origin {
	return Origin{kind: originStdlib}
}

// FileOrigin returns the origin for a named source file.
func FileOrigin(path string) Origin {
	return Origin{kind: originFile, path: path}
}

// IsStdlib reports whether the origin is the bundled standard library.
func (o Origin) IsStdlib() bool {
	return o.kind == originStdlib
}

// FilePath returns the file path and true for file origins. The standard
// library has no path.
func (o Origin) FilePath() (string, bool) {
	if o.kind != originFile {
		return "", false
	}
	return o.path, true
}

// Compare gives the total order used for deduplication and map keys:
// the standard library sorts before any file, files sort by path.
func (o Origin) Compare(other Origin) int {
	if o.kind != other.kind {
		if o.kind < other.kind {
			return -1
		}
		return 1
	}
	return strings.Compare(o.path, other.path)
}

func (o Origin) String() string {
	if o.kind == originStdlib {
		return "rosh standard library"
	}
	return o.path
}

package source

import (
	"fmt"
	"strings"
)

// Location is a partial record of where an entity originated in source
// text. Any of the three fields may be absent; absent fields are filled
// in later by Combine as surrounding context becomes known. Values are
// never mutated in place: refinement always produces a new Location.
type Location struct {
	Label  string   // lexical context, "" when absent
	Pos    *LineCol // nil when absent
	Origin *Origin  // nil when absent
}

// sentinelFile is shown when a location reaches display with no recorded
// origin. By the time diagnostics are possible every location should be
// seeded from a real origin, so seeing this in output indicates a
// pipeline bug upstream.
const sentinelFile = "<unknown>"

// Empty returns the identity element for Combine: all fields absent.
func Empty() Location {
	return Location{}
}

// AtOrigin seeds a location with only an origin.
func AtOrigin(o Origin) Location {
	return Location{Origin: &o}
}

// AtBuiltin is the location attributed to builtin definitions.
func AtBuiltin() Location {
	o := StdlibOrigin()
	return Location{Label: "builtin", Origin: &o}
}

// AtTopLevel seeds the location used when evaluation enters the top
// level of a compilation unit.
func AtTopLevel(o Origin) Location {
	return Location{Label: "top level", Origin: &o}
}

// At returns a location with label and position forced and the origin
// inherited from base. Used when entering a new lexical context while
// keeping the enclosing file identity.
func At(label string, pos LineCol, base Location) Location {
	return Location{Label: label, Pos: &pos, Origin: base.Origin}
}

// Combine merges two locations field-wise with left bias: each field of
// the result is a's value when present, else b's. Combine is associative
// and Empty() is its identity on both sides.
func Combine(a, b Location) Location {
	out := a
	if out.Label == "" {
		out.Label = b.Label
	}
	if out.Pos == nil {
		out.Pos = b.Pos
	}
	if out.Origin == nil {
		out.Origin = b.Origin
	}
	return out
}

// LineCol returns an empty slice when no position is recorded, else
// exactly [line, column]. The empty slice is non-nil so the machine
// renderer serialises it as [] rather than null.
func (l Location) LineCol() []int {
	if l.Pos == nil {
		return []int{}
	}
	return []int{int(l.Pos.Line), int(l.Pos.Col)}
}

// FileOf returns the path of the originating file, if the location has a
// file origin. Standard-library locations have no path.
func (l Location) FileOf() (string, bool) {
	if l.Origin == nil {
		return "", false
	}
	return l.Origin.FilePath()
}

// Equal compares locations structurally, treating pointer fields by
// value.
func (l Location) Equal(other Location) bool {
	return l.Compare(other) == 0
}

// Compare gives a total order over locations for use as map keys:
// origin first, then position, then label. Absent fields sort before
// present ones.
func (l Location) Compare(other Location) int {
	if c := compareOrigins(l.Origin, other.Origin); c != 0 {
		return c
	}
	if c := comparePositions(l.Pos, other.Pos); c != 0 {
		return c
	}
	return strings.Compare(l.Label, other.Label)
}

func compareOrigins(a, b *Origin) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func comparePositions(a, b *LineCol) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if a.Line != b.Line {
		if a.Line < b.Line {
			return -1
		}
		return 1
	}
	if a.Col != b.Col {
		if a.Col < b.Col {
			return -1
		}
		return 1
	}
	return 0
}

// String renders the location as origin:line:col:label with absent
// parts omitted. A location with no origin at all falls back to the
// sentinel file name rather than failing.
func (l Location) String() string {
	var b strings.Builder
	if l.Origin != nil {
		b.WriteString(l.Origin.String())
	} else {
		b.WriteString(sentinelFile)
	}
	if l.Pos != nil {
		fmt.Fprintf(&b, ":%d:%d", l.Pos.Line, l.Pos.Col)
	}
	if l.Label != "" {
		b.WriteString(":")
		b.WriteString(l.Label)
	}
	return b.String()
}

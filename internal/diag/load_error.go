package diag

import (
	"fmt"
	"path/filepath"
)

// LoadPrefix is the code prefix of the source-loader family.
const LoadPrefix = "RF"

// LoadKind enumerates failures to bring a compilation unit into the
// pipeline. Indexes are frozen; append only.
type LoadKind uint8

const (
	// LoadUnreadable means the file could not be read from disk.
	LoadUnreadable LoadKind = 0
	// LoadNotUTF8 means the file content is not valid UTF-8.
	LoadNotUTF8 LoadKind = 1
	// LoadEmpty means the file contains no program text.
	LoadEmpty LoadKind = 2
	// LoadWrongExtension means the path does not name a .rsh source.
	LoadWrongExtension LoadKind = 3
)

func init() {
	RegisterFamily(LoadPrefix, map[int]string{
		int(LoadUnreadable):     "source file could not be read",
		int(LoadNotUTF8):        "source file is not valid UTF-8",
		int(LoadEmpty):          "source file is empty",
		int(LoadWrongExtension): "path does not name a .rsh source file",
	})
}

// LoadError is a failure to load a compilation unit.
type LoadError struct {
	Kind LoadKind
	Path string
	Err  error // underlying cause for LoadUnreadable, nil otherwise
}

func (e LoadError) ErrorCode() (string, int) {
	return LoadPrefix, int(e.Kind)
}

func (e LoadError) Error() string {
	switch e.Kind {
	case LoadUnreadable:
		return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
	case LoadNotUTF8:
		return fmt.Sprintf("%s is not valid UTF-8", e.Path)
	case LoadEmpty:
		return fmt.Sprintf("%s contains no program text", e.Path)
	case LoadWrongExtension:
		return fmt.Sprintf("%s is not a .rsh source file", e.Path)
	}
	return "unknown load failure"
}

func (e LoadError) JSONMessage() string {
	return e.Error()
}

// Suggestions points at the offending extension and proposes the
// expected one.
func (e LoadError) Suggestions() (string, []string) {
	if e.Kind != LoadWrongExtension {
		return "", nil
	}
	ext := filepath.Ext(e.Path)
	base := e.Path[:len(e.Path)-len(ext)]
	return ext, []string{base + ".rsh"}
}

// Unwrap exposes the underlying read error for errors.Is checks.
func (e LoadError) Unwrap() error {
	return e.Err
}

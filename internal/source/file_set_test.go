package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddVirtualAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rsh", []byte("first line\nsecond line\nthird line"))
	f := fs.Get(id)

	tests := []struct {
		name     string
		line     uint32
		expected string
		wantOK   bool
	}{
		{"first line", 1, "first line", true},
		{"middle line", 2, "second line", true},
		{"last line without newline", 3, "third line", true},
		{"line zero", 0, "", false},
		{"past end", 4, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.GetLine(tt.line)
			if ok != tt.wantOK || got != tt.expected {
				t.Errorf("GetLine(%d) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.expected, tt.wantOK)
			}
		})
	}
}

func TestFileSet_LoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rsh")
	content := []byte{0xEF, 0xBB, 0xBF}
	content = append(content, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	f := fs.Get(id)

	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "a\nb\n" {
		t.Errorf("normalized content = %q, want %q", f.Content, "a\nb\n")
	}
}

func TestFileSet_Line(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("mem.rsh", []byte("only line"))

	if got, ok := fs.Line("mem.rsh", 1); !ok || got != "only line" {
		t.Errorf("Line() = (%q, %v), want (%q, true)", got, ok, "only line")
	}
	if _, ok := fs.Line(filepath.Join(t.TempDir(), "missing.rsh"), 1); ok {
		t.Error("Line() on a missing file must degrade, not succeed")
	}
}

func TestFileSet_LineLoadsOnDemand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.rsh")
	if err := os.WriteFile(path, []byte("from disk\nline two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	if got, ok := fs.Line(path, 2); !ok || got != "line two" {
		t.Errorf("Line() = (%q, %v), want (%q, true)", got, ok, "line two")
	}
	if fs.Len() != 1 {
		t.Errorf("FileSet.Len() = %d after on-demand load, want 1", fs.Len())
	}
}

package source

import (
	"reflect"
	"testing"
)

func loc(label string, pos *LineCol, origin *Origin) Location {
	return Location{Label: label, Pos: pos, Origin: origin}
}

func pos(line, col uint32) *LineCol {
	return &LineCol{Line: line, Col: col}
}

func fileOrigin(path string) *Origin {
	o := FileOrigin(path)
	return &o
}

func stdlibOrigin() *Origin {
	o := StdlibOrigin()
	return &o
}

func sampleLocations() []Location {
	return []Location{
		Empty(),
		loc("top level", nil, nil),
		loc("", pos(3, 7), nil),
		loc("", nil, fileOrigin("a.rsh")),
		loc("while loop", pos(1, 1), fileOrigin("b.rsh")),
		loc("builtin", nil, stdlibOrigin()),
		loc("", pos(12, 4), fileOrigin("foo.rsh")),
	}
}

func TestCombine_MonoidLaws(t *testing.T) {
	samples := sampleLocations()

	for _, a := range samples {
		if got := Combine(a, Empty()); !got.Equal(a) {
			t.Errorf("Combine(%v, Empty()) = %v, want %v", a, got, a)
		}
		if got := Combine(Empty(), a); !got.Equal(a) {
			t.Errorf("Combine(Empty(), %v) = %v, want %v", a, got, a)
		}
	}

	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := Combine(Combine(a, b), c)
				right := Combine(a, Combine(b, c))
				if !left.Equal(right) {
					t.Errorf("associativity broken for (%v, %v, %v): %v != %v", a, b, c, left, right)
				}
			}
		}
	}
}

func TestCombine_LeftBias(t *testing.T) {
	for _, a := range sampleLocations() {
		for _, b := range sampleLocations() {
			got := Combine(a, b)

			wantLabel := a.Label
			if wantLabel == "" {
				wantLabel = b.Label
			}
			if got.Label != wantLabel {
				t.Errorf("Combine(%v, %v).Label = %q, want %q", a, b, got.Label, wantLabel)
			}

			wantPos := a.Pos
			if wantPos == nil {
				wantPos = b.Pos
			}
			if got.Pos != wantPos {
				t.Errorf("Combine(%v, %v).Pos = %v, want %v", a, b, got.Pos, wantPos)
			}

			wantOrigin := a.Origin
			if wantOrigin == nil {
				wantOrigin = b.Origin
			}
			if got.Origin != wantOrigin {
				t.Errorf("Combine(%v, %v).Origin = %v, want %v", a, b, got.Origin, wantOrigin)
			}
		}
	}
}

func TestLocation_LineCol(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected []int
	}{
		{
			name:     "no position recorded",
			loc:      Empty(),
			expected: []int{},
		},
		{
			name:     "position recorded",
			loc:      loc("", pos(12, 4), fileOrigin("foo.rsh")),
			expected: []int{12, 4},
		},
		{
			name:     "position without origin",
			loc:      loc("", pos(1, 1), nil),
			expected: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.LineCol()
			if got == nil {
				t.Fatal("LineCol() returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("LineCol() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLocation_FileOf(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		wantPath string
		wantOK   bool
	}{
		{
			name:     "file origin",
			loc:      loc("", nil, fileOrigin("main.rsh")),
			wantPath: "main.rsh",
			wantOK:   true,
		},
		{
			name:   "stdlib origin has no path",
			loc:    AtBuiltin(),
			wantOK: false,
		},
		{
			name:   "no origin",
			loc:    Empty(),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := tt.loc.FileOf()
			if ok != tt.wantOK || path != tt.wantPath {
				t.Errorf("FileOf() = (%q, %v), want (%q, %v)", path, ok, tt.wantPath, tt.wantOK)
			}
		})
	}
}

func TestLocation_At(t *testing.T) {
	base := AtTopLevel(FileOrigin("main.rsh"))
	got := At("loop body", LineCol{Line: 9, Col: 2}, base)

	if got.Label != "loop body" {
		t.Errorf("At() label = %q, want %q", got.Label, "loop body")
	}
	if got.Pos == nil || *got.Pos != (LineCol{Line: 9, Col: 2}) {
		t.Errorf("At() pos = %v, want 9:2", got.Pos)
	}
	if got.Origin != base.Origin {
		t.Errorf("At() origin = %v, want inherited %v", got.Origin, base.Origin)
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{
			name:     "origin position and label",
			loc:      loc("while loop", pos(3, 7), fileOrigin("a.rsh")),
			expected: "a.rsh:3:7:while loop",
		},
		{
			name:     "origin and position only",
			loc:      loc("", pos(12, 4), fileOrigin("foo.rsh")),
			expected: "foo.rsh:12:4",
		},
		{
			name:     "stdlib origin",
			loc:      AtBuiltin(),
			expected: "rosh standard library:builtin",
		},
		{
			name:     "no origin falls back to sentinel",
			loc:      loc("", pos(1, 2), nil),
			expected: "<unknown>:1:2",
		},
		{
			name:     "fully absent",
			loc:      Empty(),
			expected: "<unknown>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLocation_CompareTotalOrder(t *testing.T) {
	ordered := []Location{
		Empty(),
		loc("", nil, stdlibOrigin()),
		loc("", nil, fileOrigin("a.rsh")),
		loc("", pos(1, 1), fileOrigin("a.rsh")),
		loc("", pos(1, 2), fileOrigin("a.rsh")),
		loc("x", pos(1, 2), fileOrigin("a.rsh")),
		loc("", nil, fileOrigin("b.rsh")),
	}

	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Compare(ordered[j])
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%v, %v) = %d, want < 0", ordered[i], ordered[j], got)
			case i == j && got != 0:
				t.Errorf("Compare(%v, %v) = %d, want 0", ordered[i], ordered[j], got)
			case i > j && got <= 0:
				t.Errorf("Compare(%v, %v) = %d, want > 0", ordered[i], ordered[j], got)
			}
		}
	}
}

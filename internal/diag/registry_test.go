package diag

import (
	"sort"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		wantOK bool
	}{
		{"known internal code", "RI0000", true},
		{"known loader code", "RF0002", true},
		{"unknown index", "RI9999", false},
		{"unknown prefix", "ZZ0000", false},
		{"wrong width", "RI000", false},
		{"lowercase rejected", "ri0000", false},
		{"no prefix", "0000", false},
		{"garbage", "RI00x0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := Describe(tt.code)
			if ok != tt.wantOK {
				t.Errorf("Describe(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && desc == "" {
				t.Errorf("Describe(%q) returned empty description", tt.code)
			}
		})
	}
}

func TestCodes_SortedAndComplete(t *testing.T) {
	codes := Codes()
	if !sort.StringsAreSorted(codes) {
		t.Errorf("Codes() not sorted: %v", codes)
	}

	want := map[string]bool{"RI0000": false, "RI0001": false, "RF0000": false, "RF0003": false}
	for _, code := range codes {
		if _, tracked := want[code]; tracked {
			want[code] = true
		}
	}
	for code, seen := range want {
		if !seen {
			t.Errorf("Codes() missing %s", code)
		}
	}
}

func TestRegisterFamily_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a prefix twice must panic")
		}
	}()
	RegisterFamily(InternalPrefix, map[int]string{0: "dup"})
}

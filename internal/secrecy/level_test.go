package secrecy

import "testing"

func TestMeet_Table(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Level
		expected Level
	}{
		{"public meet public", Public, Public, Public},
		{"public meet secret", Public, Secret, Secret},
		{"secret meet public", Secret, Public, Secret},
		{"secret meet secret", Secret, Secret, Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Meet(tt.a, tt.b); got != tt.expected {
				t.Errorf("Meet(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMeet_Laws(t *testing.T) {
	levels := []Level{Public, Secret}

	for _, a := range levels {
		// identity and absorption
		if Meet(a, Public) != a {
			t.Errorf("Public must be identity, Meet(%v, Public) != %v", a, a)
		}
		if Meet(a, Secret) != Secret {
			t.Errorf("Secret must absorb, Meet(%v, Secret) != Secret", a)
		}
		// idempotence
		if Meet(a, a) != a {
			t.Errorf("Meet(%v, %v) != %v", a, a, a)
		}
		for _, b := range levels {
			// commutativity
			if Meet(a, b) != Meet(b, a) {
				t.Errorf("Meet(%v, %v) != Meet(%v, %v)", a, b, b, a)
			}
			// associativity
			for _, c := range levels {
				if Meet(Meet(a, b), c) != Meet(a, Meet(b, c)) {
					t.Errorf("associativity broken for (%v, %v, %v)", a, b, c)
				}
			}
		}
	}
}

func TestTagged(t *testing.T) {
	pub := TagPublic(42)
	if pub.Level != Public || pub.Value != 42 {
		t.Errorf("TagPublic(42) = %+v", pub)
	}

	sec := TagSecret("balance")
	if sec.Level != Secret || sec.Value != "balance" {
		t.Errorf("TagSecret(%q) = %+v", "balance", sec)
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		name     string
		imposed  Level
		value    Tagged[int]
		expected Level
	}{
		{"public over public stays public", Public, TagPublic(7), Public},
		{"secret operand demotes result", Secret, TagPublic(7), Secret},
		{"public imposition keeps secret", Public, TagSecret(7), Secret},
		{"secret over secret", Secret, TagSecret(7), Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lower(tt.imposed, tt.value)
			if got.Level != tt.expected {
				t.Errorf("Lower(%v, %+v).Level = %v, want %v", tt.imposed, tt.value, got.Level, tt.expected)
			}
			if got.Value != tt.value.Value {
				t.Errorf("Lower must keep the payload untouched, got %v", got.Value)
			}
		})
	}
}

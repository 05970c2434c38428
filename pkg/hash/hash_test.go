package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestPrefix(t *testing.T) {
	fullHash := SHA256Hex("192.168.1.1")

	tests := []struct {
		name      string
		prefixLen int
		want      string
	}{
		{"12 char prefix", 12, fullHash[:12]},
		{"4 char prefix", 4, fullHash[:4]},
		{"full hash if prefix too long", 100, fullHash},
		{"full hash if negative", -1, fullHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefix("192.168.1.1", tt.prefixLen)
			if got != tt.want {
				t.Errorf("Prefix(_, %d) = %s, want %s", tt.prefixLen, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("ab", "c")
	b := Fingerprint("a", "bc")
	if a == b {
		t.Error("part boundaries must affect the fingerprint")
	}
	if Fingerprint("x", "y") != Fingerprint("x", "y") {
		t.Error("Fingerprint should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("Fingerprint length = %d, want 64", len(a))
	}
	if Fingerprint() != SHA256Hex("") {
		t.Error("empty fingerprint should hash the empty string")
	}
}

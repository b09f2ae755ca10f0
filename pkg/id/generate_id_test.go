package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		got := NewID32()
		if !reHex32.MatchString(got) {
			t.Fatalf("not 32-char lowercase hex: %q", got)
		}
		if seen[got] {
			t.Fatalf("duplicate id: %q", got)
		}
		seen[got] = true
	}
}

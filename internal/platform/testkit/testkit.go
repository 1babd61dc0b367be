// Package testkit holds small assertions shared by package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails unless haystack contains needle. Long haystacks are dumped to a temp file
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	if len(haystack) <= 512 {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
	dump := filepath.Join(t.TempDir(), "haystack.txt")
	_ = os.WriteFile(dump, []byte(haystack), 0o600)
	t.Fatalf("expected %q; full output written to %s", needle, dump)
}

// Env sets key/value pairs for the duration of the test
func Env(t *testing.T, kv ...string) {
	t.Helper()
	if len(kv)%2 != 0 {
		t.Fatalf("testkit.Env: odd number of arguments")
	}
	for i := 0; i < len(kv); i += 2 {
		t.Setenv(kv[i], kv[i+1])
	}
}

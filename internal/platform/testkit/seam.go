package testkit

import "testing"

// Swap replaces a package level variable (usually a func seam) until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

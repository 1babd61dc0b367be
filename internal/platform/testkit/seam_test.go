package testkit

import "testing"

var clock = func() string { return "real" }

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clock, func() string { return "fake" })
		if clock() != "fake" {
			t.Fatalf("swap did not take effect")
		}
	})
	if clock() != "real" {
		t.Fatalf("swap was not restored")
	}
}

package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	bi := Info("")
	if bi.Service != "wordbound" {
		t.Fatalf("service = %q", bi.Service)
	}
	if bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected defaults %+v", bi)
	}
	if got := Info("wordbound-api").Service; got != "wordbound-api" {
		t.Fatalf("service = %q", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	kit "wordbound/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("WB_")
	t.Setenv("WB_NAME", "  wordbound ")
	if got := c.MustString("NAME"); got != "wordbound" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestPorts(t *testing.T) {
	c := New().Prefix("WB_")
	t.Setenv("WB_PORT", "8080")
	if got := c.MustPort("PORT"); got != ":8080" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("WB_COLON", ":9090")
	if got := c.MayPort("COLON", "4000"); got != ":9090" {
		t.Fatalf("MayPort = %q", got)
	}
	if got := c.MayPort("UNSET", "4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("WB_BAD", "70000")
	if got := c.MayPort("BAD", ":4000"); got != ":4000" {
		t.Fatalf("MayPort invalid = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("WB_")
	t.Setenv("WB_N", "12")
	t.Setenv("WB_NBAD", "twelve")
	t.Setenv("WB_B", "true")
	t.Setenv("WB_BBAD", "sure")
	t.Setenv("WB_D", "250ms")
	t.Setenv("WB_DBAD", "soon")

	if got := c.MayInt("N", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("NBAD", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if !c.MayBool("B", false) || c.MayBool("BBAD", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DBAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("NOPE", "dflt"); got != "dflt" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("WB_")
	t.Setenv("WB_ORIGINS", " https://a.example , ,https://b.example ")
	want := []string{"https://a.example", "https://b.example"}
	if got := c.MayCSV("ORIGINS", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("WB_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("MayCSV default = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("WB_")
	t.Setenv("WB_PRESET", "STRICT")
	if got := c.MayEnum("PRESET", "default", "default", "strict"); got != "strict" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("UNSET", "default", "default", "strict"); got != "default" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("WB_BAD", "loose")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "default", "default", "strict") })
}

func TestMayFile(t *testing.T) {
	c := New().Prefix("WB_")
	dir := t.TempDir()
	p := filepath.Join(dir, "pack.yaml")
	if err := os.WriteFile(p, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WB_PACK", p)
	if got := c.MayFile("PACK"); got != p {
		t.Fatalf("MayFile = %q", got)
	}
	t.Setenv("WB_DIR", dir)
	if got := c.MayFile("DIR"); got != "" {
		t.Fatalf("MayFile dir = %q", got)
	}
	t.Setenv("WB_GONE", filepath.Join(dir, "missing.json"))
	if got := c.MayFile("GONE"); got != "" {
		t.Fatalf("MayFile missing = %q", got)
	}
	if got := c.MayFile("UNSET"); got != "" {
		t.Fatalf("MayFile unset = %q", got)
	}
}

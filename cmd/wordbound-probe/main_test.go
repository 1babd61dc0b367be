package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "wordbound/internal/platform/errors"
	kit "wordbound/internal/platform/testkit"
)

func probe(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	kit.Swap(t, &newRunID, func() string { return "run-1" })
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRun_JSON(t *testing.T) {
	out, err := probe(t, "", "-text", "hello world", "-pos", "8", "-json")
	if err != nil {
		t.Fatal(err)
	}
	var got result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	want := result{
		RunID: "run-1", Preset: "default", Length: 11, Position: 8,
		Word: "world", Found: true, Start: 6, End: 11,
		Before: "wo", After: "rld", FirstWord: "hello", LastWord: "world",
	}
	if got != want {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}

func TestRun_TextDefaultsToEnd(t *testing.T) {
	out, err := probe(t, "don't stop\n", "-text", "-", "-preset", "strict")
	if err != nil {
		t.Fatal(err)
	}
	kit.MustContain(t, out, "strict")
	kit.MustContain(t, out, "10")
	kit.MustContain(t, out, `"stop"`)
}

func TestRun_AutoAndPack(t *testing.T) {
	out, err := probe(t, "", "-text", "你好。世界", "-pos", "0", "-preset", "auto", "-json")
	if err != nil {
		t.Fatal(err)
	}
	kit.MustContain(t, out, `"preset": "cjk"`)
	kit.MustContain(t, out, `"word": "你好"`)

	pack := filepath.Join(t.TempDir(), "slashes.yaml")
	if err := os.WriteFile(pack, []byte("extends: default\nwords: [\"/\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = probe(t, "", "-text", "and/or", "-pos", "1", "-pack", pack, "-json")
	if err != nil {
		t.Fatal(err)
	}
	kit.MustContain(t, out, `"preset": "slashes"`)
	kit.MustContain(t, out, `"word": "and"`)
}

func TestRun_Errors(t *testing.T) {
	_, err := probe(t, "", "-text", "abc", "-pos", "9")
	if !perr.IsCode(err, perr.ErrorCodeOutOfRange) {
		t.Fatalf("out of range err = %v", err)
	}
	_, err = probe(t, "", "-text", "abc", "-preset", "klingon")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("unknown preset err = %v", err)
	}
	_, err = probe(t, "", "-nope")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad flag err = %v", err)
	}
}

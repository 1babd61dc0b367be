package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "wordbound/internal/platform/testkit"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"info":    "info",
		"warn":    "warn",
		"warning": "warn",
		"error":   "error",
		"fatal":   "fatal",
		"panic":   "panic",
		"off":     "disabled",
		"":        "info",
		" junk ":  "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInit_ChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "wordbound-test",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	Get().Info().Msg("root-msg")
	Named("delimiter").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	ctx = WithRun(ctx, "run-9")
	ctx = WithPreset(ctx, "strict")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Debug().Msg("bare-msg")

	out := buf.String()
	for _, want := range []string{
		"root-msg", "named-msg", "ctx-msg", "bare-msg",
		`"component":"delimiter"`,
		`"request_id":"req-123"`,
		`"run_id":"run-9"`,
		`"preset":"strict"`,
		`"service":"wordbound-test"`,
		`"build":"test"`,
	} {
		kit.MustContain(t, out, want)
	}
	if strings.Contains(out, `"request_id":""`) {
		t.Fatalf("empty ids must not be logged: %s", out)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "svc-b")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "svc-b" {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}

func TestWithHelpers_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithRun(ctx, "") != ctx || WithPreset(ctx, "") != ctx {
		t.Fatalf("empty ids should return ctx unchanged")
	}
}

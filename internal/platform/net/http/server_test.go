package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"wordbound/internal/platform/config"
	phttp "wordbound/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Setenv("SRV_PORT", "4123")
	t.Setenv("SRV_SHUTDOWN_GRACE", "2s")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRV_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	if srv.Addr() != ":4123" {
		t.Fatalf("addr = %q", srv.Addr())
	}

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(g phttp.Router) {
		g.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" || resp.Header.Get("X-MW") != "yes" {
		t.Fatalf("got %q mw=%q", body, resp.Header.Get("X-MW"))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/platform/metrics"
	phttp "wordbound/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, opt Options) http.Handler {
	t.Helper()
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), opt)
	return m
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMount_Defaults(t *testing.T) {
	h := newServer(t, Options{})

	rec := get(h, "/api/v1/meta/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"preset":"default"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/words/at", strings.NewReader(`{"text":"go fast","position":1}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"word":"go"`)

	require.Equal(t, http.StatusNotFound, get(h, "/metrics").Code)
	require.Equal(t, http.StatusNotFound, get(h, "/api/docs/doc.json").Code)
}

func TestMount_ActivePresetAndMetrics(t *testing.T) {
	reg, err := delimiter.NewRegistry()
	require.NoError(t, err)
	strict, err := reg.Get("strict")
	require.NoError(t, err)
	col := metrics.New("wordbound_api_test")

	h := newServer(t, Options{
		Presets:       reg,
		Active:        delimiter.NewLive(strict),
		Metrics:       col,
		EnableSwagger: true,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/words/after", strings.NewReader(`{"text":"don't","position":3}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"preset":"strict"`)
	require.Contains(t, rec.Body.String(), `"fragment":""`)

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `wordbound_api_test_word_lookups_total{op="after",outcome="empty",preset="strict"} 1`)
	require.Contains(t, body, `route="/api/v1/words/after"`)

	require.Equal(t, http.StatusOK, get(h, "/api/docs/doc.json").Code)
}

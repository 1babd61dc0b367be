// Package middleware adapts chi and go-chi/cors middleware without leaking their types,
// and adds the project's own request logging and panic recovery
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http decorator
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-Id and stores it on the context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache disables client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips/deflates responses at level (flate.BestSpeed .. flate.BestCompression)
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes drops a trailing slash before routing
func StripSlashes() Middleware { return chimw.StripSlashes }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the read-only and lookup verbs the API uses from the given origins
func CORS(o CORSOptions) Middleware {
	origins := o.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         o.MaxAge,
	})
}

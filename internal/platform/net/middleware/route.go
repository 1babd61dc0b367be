package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern is the matched chi pattern (e.g. /api/v1/words/at), or "unmatched".
// Only meaningful after the router has run, so call it once next.ServeHTTP returns
func RoutePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

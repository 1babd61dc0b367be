package middleware

import (
	"net/http"
	"time"

	"wordbound/internal/platform/logger"
	pnet "wordbound/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking at least Slow at warn level; 0 disables it
	Slow time.Duration
}

// AccessLog copies the request id into the logger context and logs one line per request
// with method, route pattern, status, bytes and elapsed time
func AccessLog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			r = r.WithContext(ctx)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := logger.C(ctx)
			evt := log.Info()
			switch {
			case status >= 500:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", RoutePattern(r)).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"wordbound/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
	// Extra runs after the common stack, e.g. a metrics middleware
	Extra []func(http.Handler) http.Handler
}

// CommonStack is the middleware chain every API route runs through
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	return append(stack, o.Extra...)
}

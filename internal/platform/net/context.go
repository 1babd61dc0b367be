// Package net holds transport helpers shared by HTTP handlers and middleware
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware would put it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

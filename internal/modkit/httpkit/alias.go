// Package httpkit re-exports the platform http seam for modules so they never import
// internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "wordbound/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

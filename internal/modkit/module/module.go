// Package module holds the Module contract and a port registry for bootstrap wiring
package module

import (
	phttp "wordbound/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives here too so a module can export its own
// ports type without importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

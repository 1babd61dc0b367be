// Package modkit wires API modules: shared deps, build options and the Module contract
package modkit

import (
	phttp "wordbound/internal/platform/net/http"
)

// Module is the surface every API module exposes to the composition root
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring, or nil
	Ports() any
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

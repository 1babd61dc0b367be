// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"wordbound/internal/core/version"
	"wordbound/internal/modkit/httpkit"
)

// PresetSource reports the active delimiter preset
type PresetSource interface {
	Active() string
	Names() []string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Presets is optional; health omits preset details without it
	Presets PresetSource
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool     `json:"ok"                example:"true"`
	Service string   `json:"service"           example:"wordbound-api"`
	Preset  string   `json:"preset,omitempty"  example:"default"`
	Presets []string `json:"presets,omitempty"`
	Started string   `json:"started"           example:"2026-10-01T13:00:00Z"`
	Uptime  int64    `json:"uptime"            example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	out := HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Presets != nil {
		out.Preset = h.deps.Presets.Active()
		out.Presets = h.deps.Presets.Names()
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

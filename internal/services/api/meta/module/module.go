// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "wordbound/internal/modkit"
	"wordbound/internal/modkit/httpkit"
	"wordbound/internal/modkit/module"

	metahttp "wordbound/internal/services/api/meta/http"
)

// ServiceName is reported by health and version
const ServiceName = "wordbound-api"

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	startedAt time.Time
}

// New constructs a meta module. Presets come from the words module ports when
// injected with modkit.WithPorts, otherwise from the port registry at request time
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{b: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Presets:     m.presets(),
		})
	})
}

func (m *Module) presets() metahttp.PresetSource {
	if p, ok := m.b.Ports.(metahttp.PresetSource); ok {
		return p
	}
	return registryPresets{}
}

// registryPresets looks the words ports up lazily, so mount order does not matter
type registryPresets struct{}

func (registryPresets) source() (metahttp.PresetSource, bool) {
	return module.Lookup[metahttp.PresetSource]("words")
}

func (r registryPresets) Active() string {
	if src, ok := r.source(); ok {
		return src.Active()
	}
	return ""
}

func (r registryPresets) Names() []string {
	if src, ok := r.source(); ok {
		return src.Names()
	}
	return nil
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

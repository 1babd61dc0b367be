// Package module wires word lookups into the API using modkit
package module

import (
	modkit "wordbound/internal/modkit"
	"wordbound/internal/modkit/httpkit"
	wordshttp "wordbound/internal/services/api/words/http"
	wordssvc "wordbound/internal/services/api/words/service"
)

// Module implements the words module
type Module struct {
	b     modkit.Built
	svc   *wordssvc.Svc
	ports Ports
}

// New constructs the words module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{modkit.WithName("words"), modkit.WithPrefix("/words")}, opts...)...)

	svc := wordssvc.New(deps.Presets, deps.Active, deps.Metrics)
	return &Module{
		b:     b,
		svc:   svc,
		ports: Ports{Words: svc, Presets: svc},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { wordshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

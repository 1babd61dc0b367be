package modkit

import (
	"net/http"
	"strings"

	"wordbound/internal/modkit/httpkit"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts in order. Later options win; the prefix is normalised to "/x"
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   normPrefix(c.prefix),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount mounts b's middleware and routes under b.Prefix. own registers the module's endpoints
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		own(sub)
		b.Register(sub)
	})
}

func normPrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}

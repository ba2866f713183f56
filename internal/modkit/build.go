package modkit

import (
	"net/http"

	"hourglass/internal/modkit/httpkit"
)

// Built is the resolved option set. It satisfies Module on its own, so a
// module can embed it and only add its constructor.
type Built struct {
	name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	ports    any
	Register func(httpkit.Router)
}

// Build applies opts over the defaults
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		ports:    c.ports,
		Register: c.register,
	}
}

// Name satisfies Module
func (b Built) Name() string { return b.name }

// Ports satisfies Module
func (b Built) Ports() any { return b.ports }

// MountRoutes mounts Register under Prefix with the module middleware
func (b Built) MountRoutes(r httpkit.Router) {
	if b.Prefix == "" {
		r.Group(func(g httpkit.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			b.Register(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, b.Register)
}

var _ Module = Built{}

// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"hourglass/internal/core/version"
	"hourglass/internal/modkit"
	"hourglass/internal/modkit/httpkit"
	metahttp "hourglass/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{startedAt: deps.Now()}

	hd := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   m.startedAt,
		Now:         deps.Now,
	}
	// leave the interfaces nil rather than typed-nil so ready reports skipped
	if deps.PG != nil {
		hd.PG = deps.PG
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}

	m.Built = modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRegister(func(r httpkit.Router) { metahttp.Register(r, hd) }),
	}, opts...)...)
	return m
}

var _ modkit.Module = (*Module)(nil)

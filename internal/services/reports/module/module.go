// Package module wires reports into the API using modkit
package module

import (
	"hourglass/internal/modkit"
	"hourglass/internal/modkit/httpkit"
	dom "hourglass/internal/services/reports/domain"
	reportshttp "hourglass/internal/services/reports/http"
	"hourglass/internal/services/reports/repo"
	"hourglass/internal/services/reports/service"
)

// Ports exposed by the reports module
type Ports struct {
	Reports dom.ServicePort
}

// Module implements modkit.Module
type Module struct {
	modkit.Built
}

// New constructs the reports module from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith constructs the reports module from o. Time entries come from
// ClickHouse when deps.CH is set and from Postgres otherwise.
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	storage := repo.NewPG().Bind(deps.PG)
	var entries dom.TimeEntryReader = repo.PGTimeEntries{S: storage}
	if deps.CH != nil {
		entries = repo.NewCHTimeEntries(deps.CH, o.CHTable)
	}

	svc := service.New(
		repo.NewCachedSnapshots(storage, o.SnapshotTTL),
		entries,
		repo.NewSettings(deps.PG),
		service.Config{Brand: o.Brand, Clock: deps.Now, ReadOnlyCurrent: o.ReadOnlyCurrent},
	)

	m := &Module{}
	m.Built = modkit.Build(append([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix("/reports"),
		modkit.WithPorts(Ports{Reports: svc}),
		modkit.WithRegister(func(r httpkit.Router) { reportshttp.Register(r, svc) }),
	}, opts...)...)
	return m
}

var _ modkit.Module = (*Module)(nil)

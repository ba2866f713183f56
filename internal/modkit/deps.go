// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"hourglass/internal/modkit/repokit"
	"hourglass/internal/platform/config"
	"hourglass/internal/platform/logger"
	"hourglass/internal/platform/store"
)

// Deps holds what every module may need. CH is optional.
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    store.Clickhouse
	Clock func() time.Time
}

// Now reads the injected clock, defaulting to wall time
func (d Deps) Now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

// FromStore copies the opened backends into deps
func FromStore(s *store.Store, cfg config.Conf) Deps {
	d := Deps{Cfg: cfg}
	if s != nil {
		d.Log, d.PG, d.CH = s.Log, s.PG, s.CH
	}
	return d
}

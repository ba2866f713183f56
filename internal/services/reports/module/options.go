package module

import (
	"time"

	"hourglass/internal/platform/config"
)

// Options configures the reports module
type Options struct {
	Brand       string
	SnapshotTTL time.Duration
	CHTable     string
	// ReadOnlyCurrent keeps grids and exports from storing the current query
	ReadOnlyCurrent bool
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	return Options{
		Brand:       cfg.Prefix("CORE_API_").MayString("BRAND", "Hourglass"),
		SnapshotTTL: cfg.Prefix("CORE_REPORTS_").MayDuration("SNAPSHOT_TTL", 30*time.Second),
		CHTable:     cfg.Prefix("CORE_REPORTS_").MayString("CH_TABLE", "time_entries"),
	}
}

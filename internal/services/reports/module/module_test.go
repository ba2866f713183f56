package module

import (
	"testing"
	"time"

	"hourglass/internal/modkit"
	"hourglass/internal/modkit/module"
	"hourglass/internal/platform/config"
	dom "hourglass/internal/services/reports/domain"

	"github.com/stretchr/testify/assert"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_API_BRAND", "Acme")
	t.Setenv("CORE_REPORTS_SNAPSHOT_TTL", "2m")

	o := FromConfig(config.New())
	assert.Equal(t, "Acme", o.Brand)
	assert.Equal(t, 2*time.Minute, o.SnapshotTTL)
	assert.Equal(t, "time_entries", o.CHTable)
	assert.False(t, o.ReadOnlyCurrent)
}

func TestNew_ExposesServicePort(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()})
	assert.Equal(t, "reports", m.Name())
	assert.Equal(t, "/reports", m.Prefix)

	_, ok := module.PortsOf[dom.ServicePort](m)
	assert.True(t, ok)
}

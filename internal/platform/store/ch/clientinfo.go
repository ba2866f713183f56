package ch

import (
	"os"
	"runtime"
	"strings"

	"hourglass/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo names this process in system.query_log so report reads can
// be traced back to the binary and build that issued them
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	bi := version.Info()
	c := bi.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	type kv = struct{ Name, Version string }
	return clickhouse.ClientInfo{Products: []kv{
		{Name: "hourglass", Version: bi.Version},
		{Name: "role", Version: strings.TrimSpace(role)},
		{Name: "tag", Version: strings.TrimSpace(tag)},
		{Name: "go", Version: runtime.Version()},
		{Name: "commit", Version: c},
		{Name: "host", Version: host},
	}}
}

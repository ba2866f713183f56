// Package version reports build metadata stamped in at link time
package version

import "runtime/debug"

// BuildInfo is what /meta/version returns
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped values. Build with
// -ldflags "-X 'hourglass/internal/core/version.version=v0.1.0' -X 'hourglass/internal/core/version.commit=abcd'"
// When commit was not stamped the VCS revision from the module build info is used.
func Info() BuildInfo {
	c := commit
	if c == "none" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					c = s.Value
				}
			}
		}
	}
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  c,
		Date:    date,
	}
}

// Service names the API binary in logs and meta responses
const Service = "hourglass-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

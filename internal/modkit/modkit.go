package modkit

import (
	phttp "hourglass/internal/platform/net/http"
)

// Module is what the API composes: something that mounts routes and hands
// out ports to other modules or binaries
type Module interface {
	// MountRoutes registers the module's endpoints on r
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set
	Ports() any
	Name() string
}

// Package module holds the module contract and port lookup helpers. It sits
// beside modkit so binaries can pull ports without importing every module.
package module

import (
	phttp "hourglass/internal/platform/net/http"
)

// Module mirrors modkit.Module
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

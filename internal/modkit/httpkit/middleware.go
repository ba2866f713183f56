package httpkit

import (
	"net/http"
	"time"

	phttp "hourglass/internal/platform/net/http"
	"hourglass/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Origins []string
	Timeout time.Duration // 0 means 30s
	SlowLog time.Duration // 0 disables slow request warnings
}

// CommonStack is the baseline middleware for the versioned API
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	if opt.Timeout <= 0 {
		opt.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(opt.SlowLog),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(opt.Origins),
		middleware.Compress(),
		middleware.StripSlashes(),
		middleware.Timeout(opt.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

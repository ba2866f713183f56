// Package middleware adapts chi and cors middleware and adds the in-house ones
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID propagates X-Request-ID or mints one
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// NoCache disables client and proxy caching; reports are always live
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Compress gzips responses at BestSpeed
func Compress() func(http.Handler) http.Handler { return chimw.Compress(flate.BestSpeed) }

// StripSlashes drops a trailing slash before routing
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 for load balancers
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORS allows origins to call the API. Content-Disposition and X-Export-ID are
// exposed so browsers can name downloaded exports.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Export-ID", "X-Request-ID"},
		MaxAge:         300,
	})
}

package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves the OpenAPI document at /docs/doc.json and the swagger UI under /docs
func MountSwagger(r Router, enabled bool, doc []byte) {
	if !enabled {
		return
	}
	r.Get("/docs/doc.json", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	})
	r.Handle("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
}

// MountProfiler serves pprof under prefix when enabled, e.g. "/debug"
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}

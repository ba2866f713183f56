// Package api composes the HTTP API from its modules
package api

import (
	_ "embed"

	"hourglass/internal/modkit"
	"hourglass/internal/modkit/httpkit"
	"hourglass/internal/modkit/module"
	"hourglass/internal/platform/config"
	"hourglass/internal/platform/logger"
	phttp "hourglass/internal/platform/net/http"
	"hourglass/internal/platform/store"

	metamod "hourglass/internal/services/api/meta/module"
	reportsmod "hourglass/internal/services/reports/module"
)

//go:embed openapi.json
var openAPISpec []byte

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
	// Auth resolves the bearer token; nil trusts the gateway's user name
	Auth httpkit.TokenFunc
}

// FromConfig reads the CORE_API_ switches
func FromConfig(cfg config.Conf) Options {
	api := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  api.MayBool("SWAGGER", false),
		EnableProfiler: api.MayBool("PROFILER", false),
		Stack: httpkit.StackOptions{
			Origins: api.MayCSV("CORS_ORIGINS", []string{"*"}),
			Timeout: api.MayDuration("TIMEOUT", 0),
			SlowLog: api.MayDuration("SLOW_LOG", 0),
		},
	}
}

// Mount mounts the API onto r and returns the modules it built
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.FromStore(opt.Store, opt.Config)

	meta := metamod.New(deps)
	reports := reportsmod.New(deps)

	tok := opt.Auth
	if tok == nil {
		tok = httpkit.UserNameToken
	}
	port := httpkit.NewPortFunc(tok)

	phttp.MountSwagger(r, opt.EnableSwagger, openAPISpec)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		meta.MountRoutes(api)
		httpkit.Protected(api, port, reports.MountRoutes)
	})

	mods := []module.Module{meta, reports}
	if opt.Logger != nil {
		for _, m := range mods {
			opt.Logger.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	}
	return mods
}

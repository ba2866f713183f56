// @title         Hourglass API
// @version       0.1.0
// @description   Time tracking reports: filters, grouped grids and exports

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hourglass/internal/core/version"
	"hourglass/internal/modkit/repokit"
	"hourglass/internal/platform/config"
	"hourglass/internal/platform/logger"
	phttp "hourglass/internal/platform/net/http"
	"hourglass/internal/platform/store"
	"hourglass/internal/platform/store/migrate"
	"hourglass/internal/services/api"
	"hourglass/internal/services/reports/repo"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.Service
	}
	if opt.Version == "" {
		opt.Version = version.Info().Version
	}
	logger.Init(opt)
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stCfg := store.ConfigFrom(root, version.Service)
	if root.Prefix("CORE_PG_").MayBool("MIGRATE", true) {
		if err := migrate.Up(stCfg.PG.URL, repo.Migrations, repo.MigrationsDir); err != nil {
			l.Fatal().Err(err).Msg("migrations failed")
		}
	}

	st, err := store.Open(ctx, stCfg, *l)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	srv := phttp.NewServer(apiCfg.MayPort("PORT", 4000))

	opts := api.FromConfig(root)
	opts.Store = st
	opts.Logger = l
	api.Mount(srv.Router(), opts)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}

// Package migrate applies embedded SQL migrations with golang-migrate
package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"hourglass/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// DriverURL rewrites a postgres:// or postgresql:// DSN to the pgx5 scheme
func DriverURL(dsn string) string {
	for _, p := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, p); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// Up applies every pending migration found under dir in fsys
func Up(dsn string, fsys fs.FS, dir string) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, DriverURL(dsn))
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		if serr, derr := m.Close(); serr != nil || derr != nil {
			logger.Named("migrate").Warn().AnErr("source", serr).AnErr("database", derr).Msg("close migrate")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	v, dirty, _ := m.Version()
	logger.Named("migrate").Info().Uint("version", v).Bool("dirty", dirty).Msg("schema up to date")
	return nil
}

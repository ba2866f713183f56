// Package pg opens a pgx pool
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	AppName  string
}

// PG owns the pool
type PG struct {
	Pool *pgxpool.Pool
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg and creates the pool. tracer may be nil.
func Open(ctx context.Context, cfg Config, tracer *Tracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if tracer != nil {
		pcfg.ConnConfig.Tracer = tracer
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool}, nil
}

// WaitReady pings with exponential backoff, capped at 2s between attempts
func (p *PG) WaitReady(ctx context.Context) error {
	const attempts = 20
	backoff := 150 * time.Millisecond
	var last error
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		last = p.Pool.Ping(pctx)
		cancel()
		if last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, 2*time.Second)
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, last)
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}

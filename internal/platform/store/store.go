// Package store opens the configured backends behind small seams
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hourglass/internal/platform/logger"
	chx "hourglass/internal/platform/store/ch"
	"hourglass/internal/platform/store/pg"
)

// Row is a single scannable row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn inside a transaction, rolling back when fn errors
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar read and batch-insert seam
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Config selects and configures backends
type Config struct {
	AppName string

	PG struct {
		URL      string
		MaxConns int32
		LogSQL   bool
		SlowMs   int
	}

	// CH is optional; an empty URL leaves Store.CH nil
	CH struct {
		URL string
	}
}

// Store holds the opened backends. PG is always set after Open; CH may be nil.
type Store struct {
	Log logger.Logger
	PG  TxRunner
	CH  Clickhouse
}

// Open connects every configured backend, pinging PG with backoff until ctx ends
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Store, error) {
	s := &Store{Log: log}

	var tracer *pg.Tracer
	if cfg.PG.LogSQL {
		tracer = pg.NewTracer(log, time.Duration(cfg.PG.SlowMs)*time.Millisecond)
	}
	p, err := pg.Open(ctx, pg.Config{URL: cfg.PG.URL, MaxConns: cfg.PG.MaxConns, AppName: cfg.AppName}, tracer)
	if err != nil {
		return nil, fmt.Errorf("pg open: %w", err)
	}
	if err := p.WaitReady(ctx); err != nil {
		p.Close()
		return nil, err
	}
	s.PG = newPGAdapter(p)

	if cfg.CH.URL != "" {
		c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: "api", Tag: cfg.AppName})
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("ch open: %w", err)
		}
		s.CH = newCHAdapter(c)
	}
	return s, nil
}

// Guard pings every backend that can be pinged
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pg: %w", err))
		}
	}
	if p, ok := s.CH.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("ch: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every opened backend
func (s *Store) Close() error {
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

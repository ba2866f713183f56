package store

import (
	"context"

	"hourglass/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgAdapter exposes a pgx pool as a TxRunner. Tracing happens inside pgx.
type pgAdapter struct{ p *pg.PG }

func newPGAdapter(p *pg.PG) *pgAdapter { return &pgAdapter{p: p} }

func (a *pgAdapter) Ping(ctx context.Context) error { return a.p.Pool.Ping(ctx) }

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	return ct, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return a.p.Pool.QueryRow(ctx, sql, args...)
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, a.p.Pool, func(tx pgx.Tx) error {
		return fn(txQuerier{tx: tx})
	})
}

type txQuerier struct{ tx pgx.Tx }

func (t txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	ct, err := t.tx.Exec(ctx, sql, args...)
	return ct, err
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return t.tx.QueryRow(ctx, sql, args...)
}

var (
	_ TxRunner   = (*pgAdapter)(nil)
	_ CommandTag = pgconn.CommandTag{}
)

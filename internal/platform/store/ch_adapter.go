package store

import (
	"context"
	"errors"

	chx "hourglass/internal/platform/store/ch"
)

type chAdapter struct{ c *chx.CH }

func newCHAdapter(c *chx.CH) *chAdapter { return &chAdapter{c: c} }

func (a *chAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.c.Insert(ctx, table, rows)
}

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a *chAdapter) Close() error { return a.c.Close() }

func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.c == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.c.Ping(ctx)
}

// chRows drops the error from Close so driver rows satisfy Rows
type chRows struct{ chx.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }

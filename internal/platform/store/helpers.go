package store

import (
	"context"

	perr "hourglass/internal/platform/errors"
)

// Many scans every row with scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ExecOne runs a write that must touch exactly one row; zero rows is not found
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	switch n := tag.RowsAffected(); {
	case n == 0:
		return perr.ErrNotFound
	case n > 1:
		return perr.Conflictf("expected one row, touched %d", n)
	}
	return nil
}

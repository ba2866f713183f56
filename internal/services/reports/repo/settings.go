package repo

import (
	"context"
	"time"

	"hourglass/internal/modkit/repokit"
	dom "hourglass/internal/services/reports/domain"
)

const writeTimeout = 5 * time.Second

// Settings is the Postgres SettingsStore. Reads go straight to the pool;
// writes run in a transaction with a statement timeout.
type Settings struct {
	db    repokit.TxRunner
	write repokit.TxRunner
	b     repokit.Binder[Storage]
}

// NewSettings binds the settings store to db
func NewSettings(db repokit.TxRunner) *Settings {
	return &Settings{
		db:    db,
		write: repokit.WithBeginHooks(db, repokit.StatementTimeout(writeTimeout)),
		b:     NewPG(),
	}
}

// CurrentQuery returns the stored current query or the default one
func (s *Settings) CurrentQuery(ctx context.Context, memberID int) (dom.ReportQuery, error) {
	q, ok, err := repokit.MustBind(s.b, s.db).CurrentQuery(ctx, memberID)
	if err != nil {
		return dom.ReportQuery{}, err
	}
	if !ok {
		return dom.DefaultQuery(), nil
	}
	return q, nil
}

// SaveCurrentQuery replaces the member's current query
func (s *Settings) SaveCurrentQuery(ctx context.Context, memberID int, q dom.ReportQuery) error {
	return repokit.WithTx(ctx, s.write, func(tx repokit.Queryer) error {
		return repokit.MustBind(s.b, tx).UpsertCurrentQuery(ctx, memberID, q)
	})
}

// SavedQueries returns the member's named queries in insertion order
func (s *Settings) SavedQueries(ctx context.Context, memberID int) ([]dom.ReportQuery, error) {
	return repokit.MustBind(s.b, s.db).NamedQueries(ctx, memberID)
}

// SaveNamedQuery inserts q and returns it with its new QueryID
func (s *Settings) SaveNamedQuery(ctx context.Context, memberID int, q dom.ReportQuery) (dom.ReportQuery, error) {
	err := repokit.WithTx(ctx, s.write, func(tx repokit.Queryer) error {
		id, err := repokit.MustBind(s.b, tx).InsertNamedQuery(ctx, memberID, q)
		if err != nil {
			return err
		}
		q.QueryID = &id
		return nil
	})
	if err != nil {
		return dom.ReportQuery{}, err
	}
	return q, nil
}

// DeleteNamedQuery removes one of the member's named queries
func (s *Settings) DeleteNamedQuery(ctx context.Context, memberID, queryID int) error {
	return repokit.WithTx(ctx, s.write, func(tx repokit.Queryer) error {
		return repokit.MustBind(s.b, tx).DeleteNamedQuery(ctx, memberID, queryID)
	})
}

var _ dom.SettingsStore = (*Settings)(nil)

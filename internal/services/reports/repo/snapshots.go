package repo

import (
	"context"
	"time"

	"hourglass/internal/core/timesheet"
	"hourglass/internal/platform/cache"
	perr "hourglass/internal/platform/errors"
)

// LoadSnapshot reads every entity table through s and builds a snapshot
func LoadSnapshot(ctx context.Context, s Storage) (*timesheet.Snapshot, error) {
	var (
		t   timesheet.Tables
		err error
	)
	if t.Members, err = s.Members(ctx); err != nil {
		return nil, err
	}
	if t.Clients, err = s.Clients(ctx); err != nil {
		return nil, err
	}
	if t.Projects, err = s.Projects(ctx); err != nil {
		return nil, err
	}
	if t.Roles, err = s.Roles(ctx); err != nil {
		return nil, err
	}
	if t.Assignments, err = s.Assignments(ctx); err != nil {
		return nil, err
	}
	if t.TaskTypes, err = s.TaskTypes(ctx); err != nil {
		return nil, err
	}
	return timesheet.NewSnapshot(t), nil
}

// CachedSnapshots serves a snapshot from a read-through cache
type CachedSnapshots struct {
	c *cache.ReadThrough[*timesheet.Snapshot]
}

// NewCachedSnapshots caches LoadSnapshot over s for ttl. A ttl <= 0 keeps the
// snapshot until Invalidate.
func NewCachedSnapshots(s Storage, ttl time.Duration) *CachedSnapshots {
	return &CachedSnapshots{c: cache.NewReadThrough[*timesheet.Snapshot](func(ctx context.Context) (*timesheet.Snapshot, error) {
		snap, err := LoadSnapshot(ctx, s)
		if err != nil {
			return nil, perr.WithOp(err, "reports.snapshot")
		}
		return snap, nil
	}, ttl)}
}

// Snapshot implements domain.SnapshotProvider
func (c *CachedSnapshots) Snapshot(ctx context.Context) (*timesheet.Snapshot, error) {
	return c.c.Get(ctx)
}

// Invalidate implements domain.SnapshotProvider
func (c *CachedSnapshots) Invalidate() { c.c.Invalidate() }

package domain

import (
	"context"
	"time"

	"hourglass/internal/core/timesheet"
)

// SnapshotProvider hands out the current entity snapshot
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*timesheet.Snapshot, error)
	// Invalidate drops any cached snapshot so the next call reloads
	Invalidate()
}

// TimeEntryReader reads entries whose date falls in [from, to]
type TimeEntryReader interface {
	TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error)
}

// SettingsStore persists current and named queries per member
type SettingsStore interface {
	// CurrentQuery returns the stored current query or DefaultQuery
	CurrentQuery(ctx context.Context, memberID int) (ReportQuery, error)
	SaveCurrentQuery(ctx context.Context, memberID int, q ReportQuery) error
	// SavedQueries returns the member's named queries in any order
	SavedQueries(ctx context.Context, memberID int) ([]ReportQuery, error)
	SaveNamedQuery(ctx context.Context, memberID int, q ReportQuery) (ReportQuery, error)
	DeleteNamedQuery(ctx context.Context, memberID, queryID int) error
}

// ServicePort is what the transport layers call
type ServicePort interface {
	Requester(ctx context.Context, userName string) (timesheet.Member, error)
	DropDowns(ctx context.Context, requester timesheet.Member) (DropDowns, error)
	Grid(ctx context.Context, requester timesheet.Member, q ReportQuery) (GridResult, error)
	Export(ctx context.Context, requester timesheet.Member, q ReportQuery, fileTypeID *int) (ExportResult, error)
	SaveQuery(ctx context.Context, requester timesheet.Member, q ReportQuery) (ReportQuery, error)
	DeleteQuery(ctx context.Context, requester timesheet.Member, queryID int) error
	RefreshSnapshot(ctx context.Context, requester timesheet.Member) error
}

package service

import (
	"context"
	"time"

	"hourglass/internal/core/timesheet"
	dom "hourglass/internal/services/reports/domain"

	"github.com/stretchr/testify/mock"
)

type mockSnapshots struct{ mock.Mock }

func (m *mockSnapshots) Snapshot(ctx context.Context) (*timesheet.Snapshot, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*timesheet.Snapshot)
	return s, args.Error(1)
}

func (m *mockSnapshots) Invalidate() { m.Called() }

type mockEntries struct{ mock.Mock }

func (m *mockEntries) TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error) {
	args := m.Called(ctx, from, to)
	es, _ := args.Get(0).([]timesheet.TimeEntry)
	return es, args.Error(1)
}

type mockSettings struct{ mock.Mock }

func (m *mockSettings) CurrentQuery(ctx context.Context, memberID int) (dom.ReportQuery, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(dom.ReportQuery), args.Error(1)
}

func (m *mockSettings) SaveCurrentQuery(ctx context.Context, memberID int, q dom.ReportQuery) error {
	return m.Called(ctx, memberID, q).Error(0)
}

func (m *mockSettings) SavedQueries(ctx context.Context, memberID int) ([]dom.ReportQuery, error) {
	args := m.Called(ctx, memberID)
	qs, _ := args.Get(0).([]dom.ReportQuery)
	return qs, args.Error(1)
}

func (m *mockSettings) SaveNamedQuery(ctx context.Context, memberID int, q dom.ReportQuery) (dom.ReportQuery, error) {
	args := m.Called(ctx, memberID, q)
	return args.Get(0).(dom.ReportQuery), args.Error(1)
}

func (m *mockSettings) DeleteNamedQuery(ctx context.Context, memberID, queryID int) error {
	return m.Called(ctx, memberID, queryID).Error(0)
}

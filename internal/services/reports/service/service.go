// Package service implements the reports operations over the domain ports
package service

import (
	"context"
	"strings"
	"time"

	"hourglass/internal/core/daterange"
	"hourglass/internal/core/export"
	"hourglass/internal/core/reporting"
	"hourglass/internal/core/timesheet"
	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/logger"
	dom "hourglass/internal/services/reports/domain"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Config for the reports service
type Config struct {
	// Brand opens every export file name
	Brand string
	// Clock supplies "now"; nil means time.Now
	Clock func() time.Time
	// ReadOnlyCurrent stops Grid and Export from storing the current query
	ReadOnlyCurrent bool
}

// Service implements domain.ServicePort
type Service struct {
	snapshots dom.SnapshotProvider
	entries   dom.TimeEntryReader
	settings  dom.SettingsStore
	cfg       Config
}

var _ dom.ServicePort = (*Service)(nil)

// New wires the service. Every port is required.
func New(snapshots dom.SnapshotProvider, entries dom.TimeEntryReader, settings dom.SettingsStore, cfg Config) *Service {
	if snapshots == nil || entries == nil || settings == nil {
		panic("reports service: nil port")
	}
	if cfg.Brand == "" {
		cfg.Brand = "Hourglass"
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Service{snapshots: snapshots, entries: entries, settings: settings, cfg: cfg}
}

func log(ctx context.Context) *logger.Logger {
	l := logger.C(ctx).With().Str("component", "reports").Logger()
	return &l
}

// Requester resolves an active member by user name
func (s *Service) Requester(ctx context.Context, userName string) (timesheet.Member, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return timesheet.Member{}, err
	}
	return snap.MemberByUserName(userName)
}

// report is a computed grid before it is flattened for transport
type report struct {
	query         dom.ReportQuery
	rng           daterange.Range
	singleProject string
	result        reporting.Report
}

// Grid resolves, filters and groups q for the requester
func (s *Service) Grid(ctx context.Context, m timesheet.Member, q dom.ReportQuery) (dom.GridResult, error) {
	r, err := s.run(ctx, m, q)
	if err != nil {
		return dom.GridResult{}, err
	}
	return gridView(r), nil
}

// Export runs the grid and renders it in the requested file type; nil means Excel
func (s *Service) Export(ctx context.Context, m timesheet.Member, q dom.ReportQuery, fileTypeID *int) (dom.ExportResult, error) {
	f, err := export.FormatByID(fileTypeID)
	if err != nil {
		return dom.ExportResult{}, err
	}
	r, err := s.run(ctx, m, q)
	if err != nil {
		return dom.ExportResult{}, err
	}

	doc := export.Document{
		Brand:         s.cfg.Brand,
		SingleProject: r.singleProject,
		From:          r.rng.From,
		To:            r.rng.To,
		Report:        r.result,
		Columns:       r.query.Columns(),
		GeneratedAt:   s.cfg.Clock(),
	}
	body, err := f.Render(doc)
	if err != nil {
		return dom.ExportResult{}, err
	}
	res := dom.ExportResult{
		Bytes:       body,
		FileName:    export.FileName(s.cfg.Brand, r.singleProject, r.rng.From, r.rng.To, f),
		ContentType: f.ContentType(),
		RenderID:    uuid.NewString(),
		Deferred:    f.Deferred(),
	}
	log(ctx).Info().
		Str("export_id", res.RenderID).
		Str("file", res.FileName).
		Int("bytes", len(body)).
		Bool("deferred", res.Deferred).
		Msg("report exported")
	return res, nil
}

// run is the grid pipeline shared by Grid and Export. Input and the single
// project are checked before the current query is written.
func (s *Service) run(ctx context.Context, m timesheet.Member, q dom.ReportQuery) (report, error) {
	q = normalize(q)
	today := daterange.TodayIn(s.cfg.Clock(), m.Location())
	rng, err := q.Range(today, m.WeekStart.Weekday())
	if err != nil {
		return report{}, err
	}
	dim, err := reporting.DimensionByID(q.GroupByID)
	if err != nil {
		return report{}, err
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return report{}, err
	}
	filter := q.Filter()
	var single string
	if id, ok := filter.SingleProjectID(); ok {
		p, err := snap.Project(id)
		if err != nil {
			return report{}, err
		}
		single = p.Name
	}

	if err := s.syncCurrent(ctx, m, q); err != nil {
		return report{}, err
	}

	raw, err := s.entries.TimeEntries(ctx, rng.From, rng.To)
	if err != nil {
		return report{}, err
	}
	// visibility only needs ids, so entries the requester cannot see never
	// reach Hydrate
	entries, err := snap.Hydrate(reporting.NewViewer(m, snap).Visible(raw))
	if err != nil {
		// the snapshot is older than the entries; reload it on the next request
		s.snapshots.Invalidate()
		return report{}, err
	}
	entries = filter.Apply(entries)

	res := reporting.GroupBy(dim, entries)
	log(ctx).Debug().
		Int("member_id", m.ID).
		Int("read", len(raw)).
		Int("kept", len(entries)).
		Int("groups", len(res.Groups)).
		Msg("grid computed")
	return report{query: q, rng: rng, singleProject: single, result: res}, nil
}

// syncCurrent stores q as the current query unless it already is
func (s *Service) syncCurrent(ctx context.Context, m timesheet.Member, q dom.ReportQuery) error {
	if s.cfg.ReadOnlyCurrent {
		return nil
	}
	cur, err := s.settings.CurrentQuery(ctx, m.ID)
	if err != nil {
		return err
	}
	if cur.Equal(q) {
		return nil
	}
	return s.settings.SaveCurrentQuery(ctx, m.ID, q)
}

// SaveQuery stores q under its name
func (s *Service) SaveQuery(ctx context.Context, m timesheet.Member, q dom.ReportQuery) (dom.ReportQuery, error) {
	q = normalize(q)
	if q.QueryName == nil {
		return dom.ReportQuery{}, perr.WithField(perr.InvalidArgf("query_name is required"), "query_name")
	}
	if _, err := q.Range(daterange.TodayIn(s.cfg.Clock(), m.Location()), m.WeekStart.Weekday()); err != nil {
		return dom.ReportQuery{}, err
	}
	if _, err := reporting.DimensionByID(q.GroupByID); err != nil {
		return dom.ReportQuery{}, err
	}
	q.QueryID = nil
	saved, err := s.settings.SaveNamedQuery(ctx, m.ID, q)
	if err != nil {
		return dom.ReportQuery{}, err
	}
	log(ctx).Info().Int("member_id", m.ID).Str("query", *saved.QueryName).Msg("query saved")
	return saved, nil
}

// DeleteQuery removes one of the requester's named queries
func (s *Service) DeleteQuery(ctx context.Context, m timesheet.Member, queryID int) error {
	return s.settings.DeleteNamedQuery(ctx, m.ID, queryID)
}

// RefreshSnapshot drops the cached snapshot. Admins only.
func (s *Service) RefreshSnapshot(ctx context.Context, m timesheet.Member) error {
	if !m.IsAdmin {
		return perr.Forbiddenf("only admins may refresh the report snapshot")
	}
	s.snapshots.Invalidate()
	log(ctx).Info().Int("member_id", m.ID).Msg("snapshot invalidated")
	return nil
}

// normalize trims and NFC-folds the query name so equal names compare equal
func normalize(q dom.ReportQuery) dom.ReportQuery {
	if q.QueryName == nil {
		return q
	}
	name := norm.NFC.String(strings.TrimSpace(*q.QueryName))
	if name == "" {
		q.QueryName = nil
	} else {
		q.QueryName = &name
	}
	return q
}

// Package repo provides the Postgres and ClickHouse storage of the reports service
package repo

import (
	"context"
	"time"

	"hourglass/internal/core/timesheet"
	"hourglass/internal/modkit/repokit"
	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/store"
	dom "hourglass/internal/services/reports/domain"
)

type binder struct{}

// NewPG constructs the Postgres binder
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is everything the reports service reads or writes in Postgres
type Storage interface {
	Members(ctx context.Context) ([]timesheet.Member, error)
	Clients(ctx context.Context) ([]timesheet.Client, error)
	Projects(ctx context.Context) ([]timesheet.Project, error)
	Roles(ctx context.Context) ([]timesheet.ProjectRole, error)
	Assignments(ctx context.Context) ([]timesheet.Assignment, error)
	TaskTypes(ctx context.Context) ([]timesheet.TaskType, error)
	TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error)

	CurrentQuery(ctx context.Context, memberID int) (dom.ReportQuery, bool, error)
	UpsertCurrentQuery(ctx context.Context, memberID int, q dom.ReportQuery) error
	NamedQueries(ctx context.Context, memberID int) ([]dom.ReportQuery, error)
	InsertNamedQuery(ctx context.Context, memberID int, q dom.ReportQuery) (int, error)
	DeleteNamedQuery(ctx context.Context, memberID, queryID int) error
}

type pg struct{ q repokit.Queryer }

func (s *pg) Members(ctx context.Context) ([]timesheet.Member, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.Member, error) {
		var m timesheet.Member
		var ws int
		err := r.Scan(&m.ID, &m.UserName, &m.FullName, &m.IsAdmin, &m.IsManager, &m.IsActive, &ws, &m.TimeZone)
		m.WeekStart = timesheet.WeekStart(ws)
		return m, err
	}, `
		SELECT id, user_name, full_name, is_admin, is_manager, is_active, week_start, time_zone
		FROM members
		ORDER BY full_name, id`)
	return out, perr.FromPostgres(err, "load members")
}

func (s *pg) Clients(ctx context.Context) ([]timesheet.Client, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.Client, error) {
		var c timesheet.Client
		return c, r.Scan(&c.ID, &c.Name, &c.IsActive)
	}, `SELECT id, name, is_active FROM clients ORDER BY name, id`)
	return out, perr.FromPostgres(err, "load clients")
}

func (s *pg) Projects(ctx context.Context) ([]timesheet.Project, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.Project, error) {
		var p timesheet.Project
		return p, r.Scan(&p.ID, &p.Name, &p.IsActive, &p.IsPrivate, &p.ClientID)
	}, `SELECT id, name, is_active, is_private, client_id FROM projects ORDER BY name, id`)
	return out, perr.FromPostgres(err, "load projects")
}

func (s *pg) Roles(ctx context.Context) ([]timesheet.ProjectRole, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.ProjectRole, error) {
		var pr timesheet.ProjectRole
		return pr, r.Scan(&pr.ID, &pr.Name)
	}, `SELECT id, name FROM project_roles ORDER BY id`)
	return out, perr.FromPostgres(err, "load project roles")
}

func (s *pg) Assignments(ctx context.Context) ([]timesheet.Assignment, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.Assignment, error) {
		var a timesheet.Assignment
		return a, r.Scan(&a.MemberID, &a.ProjectID, &a.RoleID)
	}, `SELECT member_id, project_id, role_id FROM member_project_roles ORDER BY project_id, member_id`)
	return out, perr.FromPostgres(err, "load assignments")
}

func (s *pg) TaskTypes(ctx context.Context) ([]timesheet.TaskType, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.TaskType, error) {
		var t timesheet.TaskType
		return t, r.Scan(&t.ID, &t.Name)
	}, `SELECT id, name FROM task_types ORDER BY id`)
	return out, perr.FromPostgres(err, "load task types")
}

func (s *pg) TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error) {
	out, err := store.Many(ctx, s.q, func(r store.Row) (timesheet.TimeEntry, error) {
		var e timesheet.TimeEntry
		var actual, estimated int64
		err := r.Scan(&e.ID, &e.Date, &e.TimeFrom, &e.TimeTo, &actual, &estimated,
			&e.Description, &e.MemberID, &e.ProjectID, &e.TaskTypeID)
		e.Actual = time.Duration(actual) * time.Second
		e.Estimated = time.Duration(estimated) * time.Second
		return e, err
	}, `
		SELECT id, date, time_from, time_to, time_actual, time_estimated,
		       description, member_id, project_id, task_type_id
		FROM time_entries
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date, id`, from, to)
	return out, perr.FromPostgres(err, "load time entries")
}

const queryCols = `query_id, query_name, group_by_id, show_column_ids, date_static_id,
	to_char(date_from, 'YYYY-MM-DD'), to_char(date_to, 'YYYY-MM-DD'),
	project_ids, member_ids, client_ids`

func scanQuery(r store.Row) (dom.ReportQuery, error) {
	var q dom.ReportQuery
	err := r.Scan(&q.QueryID, &q.QueryName, &q.GroupByID, &q.ShowColumnIDs, &q.DateStaticID,
		&q.DateFrom, &q.DateTo, &q.ProjectIDs, &q.MemberIDs, &q.ClientIDs)
	return q, err
}

func (s *pg) CurrentQuery(ctx context.Context, memberID int) (dom.ReportQuery, bool, error) {
	out, err := store.Many(ctx, s.q, scanQuery, `
		SELECT `+queryCols+`
		FROM report_queries
		WHERE member_id = $1 AND is_current`, memberID)
	if err != nil {
		return dom.ReportQuery{}, false, perr.FromPostgres(err, "load current query")
	}
	if len(out) == 0 {
		return dom.ReportQuery{}, false, nil
	}
	return out[0], true, nil
}

func (s *pg) UpsertCurrentQuery(ctx context.Context, memberID int, q dom.ReportQuery) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO report_queries (
			member_id, is_current, query_id, query_name, group_by_id, show_column_ids,
			date_static_id, date_from, date_to, project_ids, member_ids, client_ids)
		VALUES ($1, true, $2, $3, $4, COALESCE($5::int[], '{}'),
			$6, $7::text::date, $8::text::date,
			COALESCE($9::int[], '{}'), COALESCE($10::int[], '{}'), COALESCE($11::int[], '{}'))
		ON CONFLICT (member_id) WHERE is_current DO UPDATE SET
			query_id        = EXCLUDED.query_id,
			query_name      = EXCLUDED.query_name,
			group_by_id     = EXCLUDED.group_by_id,
			show_column_ids = EXCLUDED.show_column_ids,
			date_static_id  = EXCLUDED.date_static_id,
			date_from       = EXCLUDED.date_from,
			date_to         = EXCLUDED.date_to,
			project_ids     = EXCLUDED.project_ids,
			member_ids      = EXCLUDED.member_ids,
			client_ids      = EXCLUDED.client_ids,
			updated_at      = now()`,
		memberID, q.QueryID, q.QueryName, q.GroupByID, q.ShowColumnIDs,
		q.DateStaticID, q.DateFrom, q.DateTo,
		q.ProjectIDs, q.MemberIDs, q.ClientIDs)
	return perr.FromPostgres(err, "save current query")
}

func (s *pg) NamedQueries(ctx context.Context, memberID int) ([]dom.ReportQuery, error) {
	out, err := store.Many(ctx, s.q, scanQuery, `
		SELECT `+queryCols+`
		FROM report_queries
		WHERE member_id = $1 AND NOT is_current
		ORDER BY id`, memberID)
	return out, perr.FromPostgres(err, "load saved queries")
}

// InsertNamedQuery stores q and points its query_id at the new row
func (s *pg) InsertNamedQuery(ctx context.Context, memberID int, q dom.ReportQuery) (int, error) {
	var id int
	err := s.q.QueryRow(ctx, `
		INSERT INTO report_queries (
			member_id, is_current, query_name, group_by_id, show_column_ids,
			date_static_id, date_from, date_to, project_ids, member_ids, client_ids)
		VALUES ($1, false, $2, $3, COALESCE($4::int[], '{}'),
			$5, $6::text::date, $7::text::date,
			COALESCE($8::int[], '{}'), COALESCE($9::int[], '{}'), COALESCE($10::int[], '{}'))
		RETURNING id`,
		memberID, q.QueryName, q.GroupByID, q.ShowColumnIDs,
		q.DateStaticID, q.DateFrom, q.DateTo,
		q.ProjectIDs, q.MemberIDs, q.ClientIDs).Scan(&id)
	if err != nil {
		return 0, perr.FromPostgres(err, "save query")
	}
	if _, err := s.q.Exec(ctx, `UPDATE report_queries SET query_id = id WHERE id = $1`, id); err != nil {
		return 0, perr.FromPostgres(err, "save query")
	}
	return id, nil
}

func (s *pg) DeleteNamedQuery(ctx context.Context, memberID, queryID int) error {
	err := store.ExecOne(ctx, s.q, `
		DELETE FROM report_queries
		WHERE member_id = $1 AND id = $2 AND NOT is_current`, memberID, queryID)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.NotFoundf("saved query %d not found", queryID)
	}
	return perr.FromPostgres(err, "delete query")
}

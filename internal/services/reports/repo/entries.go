package repo

import (
	"context"
	"time"

	"hourglass/internal/core/daterange"
	"hourglass/internal/core/timesheet"
	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/store"
)

// PGTimeEntries reads entries from Postgres
type PGTimeEntries struct{ S Storage }

// TimeEntries implements domain.TimeEntryReader
func (p PGTimeEntries) TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error) {
	return p.S.TimeEntries(ctx, from, to)
}

// CHTimeEntries reads entries from a ClickHouse replica of time_entries
type CHTimeEntries struct {
	CH    store.Clickhouse
	Table string
}

// NewCHTimeEntries reads from table, defaulting to time_entries
func NewCHTimeEntries(ch store.Clickhouse, table string) CHTimeEntries {
	if table == "" {
		table = "time_entries"
	}
	return CHTimeEntries{CH: ch, Table: table}
}

// TimeEntries implements domain.TimeEntryReader. Columns are Int64, with
// task_type_id Nullable(Int64) and date a Date.
func (c CHTimeEntries) TimeEntries(ctx context.Context, from, to time.Time) ([]timesheet.TimeEntry, error) {
	rows, err := c.CH.Query(ctx, `
		SELECT id, date, time_from, time_to, time_actual, time_estimated,
		       description, member_id, project_id, task_type_id
		FROM `+c.Table+`
		WHERE date BETWEEN ? AND ?
		ORDER BY date, id`, from, to)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "load time entries")
	}
	defer rows.Close()

	var out []timesheet.TimeEntry
	for rows.Next() {
		var (
			id, tFrom, tTo, actual, estimated, memberID, projectID int64
			task                                                   *int64
			e                                                      timesheet.TimeEntry
		)
		if err := rows.Scan(&id, &e.Date, &tFrom, &tTo, &actual, &estimated,
			&e.Description, &memberID, &projectID, &task); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan time entry")
		}
		e.ID = int(id)
		e.Date = daterange.Day(e.Date)
		e.TimeFrom, e.TimeTo = int(tFrom), int(tTo)
		e.Actual = time.Duration(actual) * time.Second
		e.Estimated = time.Duration(estimated) * time.Second
		e.MemberID, e.ProjectID = int(memberID), int(projectID)
		if task != nil {
			v := int(*task)
			e.TaskTypeID = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "read time entries")
	}
	return out, nil
}

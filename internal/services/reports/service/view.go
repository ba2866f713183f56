package service

import (
	"time"

	"hourglass/internal/core/reporting"
	"hourglass/internal/core/timesheet"
	dom "hourglass/internal/services/reports/domain"
)

func gridView(r report) dom.GridResult {
	out := dom.GridResult{
		GroupByID:             int(r.result.Dimension.ID()),
		DateFrom:              r.rng.From.Format(time.DateOnly),
		DateTo:                r.rng.To.Format(time.DateOnly),
		Groups:                make([]dom.GroupView, 0, len(r.result.Groups)),
		TotalActualSeconds:    seconds(r.result.Totals.Actual),
		TotalEstimatedSeconds: seconds(r.result.Totals.Estimated),
		CurrentQuery:          r.query,
	}
	if r.singleProject != "" {
		name := r.singleProject
		out.SingleProjectName = &name
	}
	for _, g := range r.result.Groups {
		out.Groups = append(out.Groups, groupView(g))
	}
	return out
}

func groupView(g reporting.Group) dom.GroupView {
	gv := dom.GroupView{
		ID:                    g.Key.ID,
		Name:                  g.Key.Name,
		Entries:               make([]dom.EntryRow, 0, len(g.Entries)),
		TotalActualSeconds:    seconds(g.Totals.Actual),
		TotalEstimatedSeconds: seconds(g.Totals.Estimated),
	}
	for _, e := range g.Entries {
		gv.Entries = append(gv.Entries, entryRow(e))
	}
	return gv
}

func entryRow(e timesheet.TimeEntry) dom.EntryRow {
	c := e.ClientOrWithout()
	row := dom.EntryRow{
		ID:               e.ID,
		Date:             e.Date.Format(time.DateOnly),
		MemberID:         e.MemberID,
		ProjectID:        e.ProjectID,
		ClientID:         c.ID,
		ClientName:       c.Name,
		Notes:            e.Description,
		TimeFrom:         e.TimeFrom,
		TimeTo:           e.TimeTo,
		ActualSeconds:    seconds(e.Actual),
		EstimatedSeconds: seconds(e.Estimated),
	}
	if e.Member != nil {
		row.MemberName = e.Member.FullName
	}
	if e.Project != nil {
		row.ProjectName = e.Project.Name
	}
	if e.TaskType != nil {
		row.TaskTypeName = e.TaskType.Name
	}
	return row
}

func seconds(d time.Duration) int64 { return int64(d / time.Second) }

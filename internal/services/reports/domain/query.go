// Package domain defines the types and ports of the reports service
package domain

import (
	"slices"
	"time"

	"hourglass/internal/core/daterange"
	"hourglass/internal/core/export"
	"hourglass/internal/core/reporting"
	perr "hourglass/internal/platform/errors"
)

// ReportQuery is a filter and grouping selection. Exactly one of
// DateStaticID or the DateFrom/DateTo pair must be set.
type ReportQuery struct {
	QueryID       *int    `json:"query_id,omitempty"`
	QueryName     *string `json:"query_name,omitempty" validate:"omitempty,min=1,max=200"`
	GroupByID     int     `json:"group_by_id" validate:"min=1,max=4"`
	ShowColumnIDs []int   `json:"show_column_ids,omitempty" validate:"dive,min=1,max=4"`
	DateStaticID  *int    `json:"date_static_id,omitempty" validate:"omitempty,min=1,max=8"`
	DateFrom      *string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo        *string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProjectIDs    []int   `json:"project_ids,omitempty"`
	MemberIDs     []int   `json:"member_ids,omitempty"`
	ClientIDs     []int   `json:"client_ids,omitempty"`
}

// DefaultQuery is what a member starts with: this week by project, every column
func DefaultQuery() ReportQuery {
	static := int(daterange.ThisWeek)
	cols := make([]int, 0, len(export.Columns()))
	for _, c := range export.Columns() {
		cols = append(cols, int(c))
	}
	return ReportQuery{
		GroupByID:     int(reporting.GroupByProject),
		ShowColumnIDs: cols,
		DateStaticID:  &static,
	}
}

// Equal compares every stored field. Id lists compare as multisets, and a nil
// list equals an empty one.
func (q ReportQuery) Equal(o ReportQuery) bool {
	return eqInt(q.QueryID, o.QueryID) &&
		eqStr(q.QueryName, o.QueryName) &&
		q.GroupByID == o.GroupByID &&
		sameIDs(q.ShowColumnIDs, o.ShowColumnIDs) &&
		eqInt(q.DateStaticID, o.DateStaticID) &&
		eqStr(q.DateFrom, o.DateFrom) &&
		eqStr(q.DateTo, o.DateTo) &&
		sameIDs(q.ProjectIDs, o.ProjectIDs) &&
		sameIDs(q.MemberIDs, o.MemberIDs) &&
		sameIDs(q.ClientIDs, o.ClientIDs)
}

// Range resolves the query's dates. today and weekStart only matter for a
// static id.
func (q ReportQuery) Range(today time.Time, weekStart time.Weekday) (daterange.Range, error) {
	staticOnly := q.DateStaticID != nil && q.DateFrom == nil && q.DateTo == nil
	explicitOnly := q.DateStaticID == nil && q.DateFrom != nil && q.DateTo != nil
	switch {
	case staticOnly:
		return daterange.Resolve(daterange.StaticID(*q.DateStaticID), today, weekStart)
	case explicitOnly:
		return daterange.Parse(*q.DateFrom, *q.DateTo)
	}
	return daterange.Range{}, perr.InvalidArgf("set either date_static_id or both date_from and date_to")
}

// Filter returns the id filters of q
func (q ReportQuery) Filter() reporting.Filter {
	return reporting.Filter{ProjectIDs: q.ProjectIDs, MemberIDs: q.MemberIDs, ClientIDs: q.ClientIDs}
}

// Columns returns the selected show-column toggles
func (q ReportQuery) Columns() []export.Column {
	out := make([]export.Column, 0, len(q.ShowColumnIDs))
	for _, id := range q.ShowColumnIDs {
		out = append(out, export.Column(id))
	}
	return out
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// ExportRequest is a query plus the wanted file type. A nil FileTypeID means
// Excel.
type ExportRequest struct {
	ReportQuery
	FileTypeID *int `json:"file_type_id,omitempty" validate:"omitempty,min=0,max=2"`
}

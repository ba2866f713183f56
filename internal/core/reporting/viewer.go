// Package reporting filters time entries down to what a requester may see,
// applies the query filters and groups the result for display or export
package reporting

import (
	"hourglass/internal/core/timesheet"
)

// Viewer is the requester as seen by the visibility rule
type Viewer struct {
	MemberID  int
	IsAdmin   bool
	IsManager bool

	managed map[int]struct{}
}

// NewViewer builds a viewer for m. Managed project ids only matter for
// non-admin managers and are looked up in s.
func NewViewer(m timesheet.Member, s *timesheet.Snapshot) Viewer {
	v := Viewer{MemberID: m.ID, IsAdmin: m.IsAdmin, IsManager: m.IsManager}
	if !m.IsAdmin && m.IsManager && s != nil {
		ids := s.ManagedProjectIDs(m.ID)
		v.managed = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			v.managed[id] = struct{}{}
		}
	}
	return v
}

// Manages reports whether the viewer holds the Manager role on projectID
func (v Viewer) Manages(projectID int) bool {
	_, ok := v.managed[projectID]
	return ok
}

// CanSee applies the visibility rule to a single entry
func (v Viewer) CanSee(e timesheet.TimeEntry) bool {
	switch {
	case v.IsAdmin:
		return true
	case e.MemberID == v.MemberID:
		return true
	case v.IsManager:
		return v.Manages(e.ProjectID)
	}
	return false
}

// Visible keeps the entries the viewer may see, preserving order
func (v Viewer) Visible(entries []timesheet.TimeEntry) []timesheet.TimeEntry {
	if v.IsAdmin {
		return entries
	}
	out := make([]timesheet.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if v.CanSee(e) {
			out = append(out, e)
		}
	}
	return out
}

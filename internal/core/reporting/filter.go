package reporting

import (
	"hourglass/internal/core/timesheet"
)

// Filter narrows entries by project, member and client. Empty sets are
// skipped; the rest are combined with AND.
type Filter struct {
	ProjectIDs []int
	MemberIDs  []int
	ClientIDs  []int // may hold timesheet.WithoutClient.ID
}

// SingleProjectID returns the project id when exactly one is selected
func (f Filter) SingleProjectID() (int, bool) {
	if len(f.ProjectIDs) == 1 {
		return f.ProjectIDs[0], true
	}
	return 0, false
}

// Apply returns the matching entries in input order
func (f Filter) Apply(entries []timesheet.TimeEntry) []timesheet.TimeEntry {
	projects, members, clients := set(f.ProjectIDs), set(f.MemberIDs), set(f.ClientIDs)
	if projects == nil && members == nil && clients == nil {
		return entries
	}
	_, wantWithout := clients[timesheet.WithoutClient.ID]

	out := make([]timesheet.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if projects != nil && !has(projects, e.ProjectID) {
			continue
		}
		if members != nil && !has(members, e.MemberID) {
			continue
		}
		if clients != nil {
			cid := clientID(e)
			if cid == nil {
				if !wantWithout {
					continue
				}
			} else if !has(clients, *cid) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// clientID reads the owning project's client id; entries that were never
// hydrated fall back to the linked client
func clientID(e timesheet.TimeEntry) *int {
	if e.Project != nil {
		return e.Project.ClientID
	}
	if e.Client != nil {
		return &e.Client.ID
	}
	return nil
}

func set(ids []int) map[int]struct{} {
	if len(ids) == 0 {
		return nil
	}
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func has(m map[int]struct{}, id int) bool {
	_, ok := m[id]
	return ok
}

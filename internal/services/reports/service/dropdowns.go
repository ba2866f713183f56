package service

import (
	"context"
	"slices"

	"hourglass/internal/core/daterange"
	"hourglass/internal/core/export"
	"hourglass/internal/core/reporting"
	"hourglass/internal/core/timesheet"
	dom "hourglass/internal/services/reports/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DropDowns builds the option sets the requester may choose from
func (s *Service) DropDowns(ctx context.Context, m timesheet.Member) (dom.DropDowns, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return dom.DropDowns{}, err
	}
	filters, err := clientViews(snap, m)
	if err != nil {
		return dom.DropDowns{}, err
	}
	saved, err := s.settings.SavedQueries(ctx, m.ID)
	if err != nil {
		return dom.DropDowns{}, err
	}
	current, err := s.settings.CurrentQuery(ctx, m.ID)
	if err != nil {
		return dom.DropDowns{}, err
	}

	return dom.DropDowns{
		Filters:       filters,
		GroupBy:       groupByOptions(),
		ShowColumns:   showColumnOptions(),
		DateStatic:    dateStaticOptions(),
		CustomQueries: sortByName(saved),
		UserDetails: dom.UserDetails{
			ID:        m.ID,
			FullName:  m.FullName,
			IsAdmin:   m.IsAdmin,
			IsManager: m.IsManager,
			WeekStart: int(m.WeekStart),
			TimeZone:  m.TimeZone,
		},
		CurrentQuery: current,
	}, nil
}

// clientViews buckets the requester's visible projects by client. A client
// only lists its visible projects; clientless projects go to Without Client,
// which comes last.
func clientViews(snap *timesheet.Snapshot, m timesheet.Member) ([]dom.ClientView, error) {
	managerRole, err := snap.ManagerRoleID()
	if err != nil {
		return nil, err
	}

	var (
		out     []dom.ClientView
		at      = map[int]int{}
		without []dom.ProjectView
	)
	for _, p := range snap.VisibleProjects(m) {
		pv, err := projectView(snap, m, p, managerRole)
		if err != nil {
			return nil, err
		}
		if p.ClientID == nil {
			without = append(without, pv)
			continue
		}
		i, ok := at[*p.ClientID]
		if !ok {
			c, found := snap.Client(*p.ClientID)
			if !found {
				without = append(without, pv)
				continue
			}
			i = len(out)
			at[c.ID] = i
			out = append(out, dom.ClientView{ClientID: c.ID, ClientName: c.Name, IsClientActive: c.IsActive})
		}
		out[i].ProjectsDetails = append(out[i].ProjectsDetails, pv)
	}
	if len(without) > 0 {
		w := timesheet.WithoutClient
		out = append(out, dom.ClientView{
			ClientID:        w.ID,
			ClientName:      w.Name,
			IsClientActive:  w.IsActive,
			ProjectsDetails: without,
		})
	}
	if out == nil {
		out = []dom.ClientView{}
	}
	return out, nil
}

func projectView(snap *timesheet.Snapshot, m timesheet.Member, p timesheet.Project, managerRole int) (dom.ProjectView, error) {
	role := snap.RoleOf(m.ID, p.ID)
	pv := dom.ProjectView{
		ProjectID:              p.ID,
		ProjectName:            p.Name,
		IsPrivate:              p.IsPrivate,
		IsProjectActive:        p.IsActive,
		RoleID:                 role,
		IsUserManagerOnProject: role != 0 && role == managerRole,
	}
	if !m.IsAdmin && !pv.IsUserManagerOnProject {
		return pv, nil
	}
	roster, err := rosterOf(snap, p)
	if err != nil {
		return dom.ProjectView{}, err
	}
	pv.UsersDetails = &roster
	return pv, nil
}

// rosterOf lists the project's assignments. Public projects also list every
// unassigned member with the Member role.
func rosterOf(snap *timesheet.Snapshot, p timesheet.Project) ([]dom.UserView, error) {
	roles := map[int]string{}
	for _, name := range []string{timesheet.RoleManager, timesheet.RoleMember} {
		if id, err := snap.RoleID(name); err == nil {
			roles[id] = name
		}
	}

	roster := make([]dom.UserView, 0, len(p.Assignments))
	assigned := make(map[int]struct{}, len(p.Assignments))
	for _, a := range p.Assignments {
		mem, ok := snap.Member(a.MemberID)
		if !ok {
			continue
		}
		assigned[mem.ID] = struct{}{}
		roster = append(roster, dom.UserView{
			ID:       mem.ID,
			FullName: mem.FullName,
			RoleID:   a.RoleID,
			RoleName: roles[a.RoleID],
			IsActive: mem.IsActive,
		})
	}
	if p.IsPrivate {
		return roster, nil
	}

	memberRole, err := snap.MemberRoleID()
	if err != nil {
		return nil, err
	}
	for _, mem := range snap.Members() {
		if _, ok := assigned[mem.ID]; ok {
			continue
		}
		roster = append(roster, dom.UserView{
			ID:       mem.ID,
			FullName: mem.FullName,
			RoleID:   memberRole,
			RoleName: timesheet.RoleMember,
			IsActive: mem.IsActive,
		})
	}
	return roster, nil
}

func groupByOptions() []dom.Option {
	ds := reporting.Dimensions()
	out := make([]dom.Option, 0, len(ds))
	for _, d := range ds {
		out = append(out, dom.Option{ID: int(d.ID()), Description: d.Name()})
	}
	return out
}

func showColumnOptions() []dom.Option {
	cs := export.Columns()
	out := make([]dom.Option, 0, len(cs))
	for _, c := range cs {
		out = append(out, dom.Option{ID: int(c), Description: c.Caption()})
	}
	return out
}

func dateStaticOptions() []dom.Option {
	ids := daterange.All()
	out := make([]dom.Option, 0, len(ids))
	for _, id := range ids {
		out = append(out, dom.Option{ID: int(id), Description: id.Description()})
	}
	return out
}

// sortByName keeps named queries only and orders them alphabetically
func sortByName(qs []dom.ReportQuery) []dom.ReportQuery {
	out := make([]dom.ReportQuery, 0, len(qs))
	for _, q := range qs {
		if q.QueryName != nil {
			out = append(out, q)
		}
	}
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b dom.ReportQuery) int {
		return c.CompareString(*a.QueryName, *b.QueryName)
	})
	return out
}

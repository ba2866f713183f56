package timesheet

import (
	"slices"
	"time"

	perr "hourglass/internal/platform/errors"
)

// Snapshot is a read-only view of the entity tables taken at one refresh.
// It is safe for concurrent use once built.
type Snapshot struct {
	members   []Member
	projects  []Project
	clients   []Client
	roles     []ProjectRole
	taskTypes []TaskType

	memberByID   map[int]*Member
	memberByName map[string]*Member
	projectByID  map[int]*Project
	clientByID   map[int]*Client
	taskByID     map[int]*TaskType
	roleByName   map[string]int
}

// Tables is the raw input to NewSnapshot
type Tables struct {
	Members     []Member
	Clients     []Client
	Projects    []Project
	Roles       []ProjectRole
	Assignments []Assignment
	TaskTypes   []TaskType
}

// NewSnapshot indexes t and links assignments onto projects and projects onto
// clients. Order within each table is kept.
func NewSnapshot(t Tables) *Snapshot {
	s := &Snapshot{
		members:   slices.Clone(t.Members),
		projects:  slices.Clone(t.Projects),
		clients:   slices.Clone(t.Clients),
		roles:     slices.Clone(t.Roles),
		taskTypes: slices.Clone(t.TaskTypes),

		memberByID:   make(map[int]*Member, len(t.Members)),
		memberByName: make(map[string]*Member, len(t.Members)),
		projectByID:  make(map[int]*Project, len(t.Projects)),
		clientByID:   make(map[int]*Client, len(t.Clients)),
		taskByID:     make(map[int]*TaskType, len(t.TaskTypes)),
		roleByName:   make(map[string]int, len(t.Roles)),
	}

	zones := map[string]*time.Location{}
	for i := range s.members {
		m := &s.members[i]
		if m.loc = zones[m.TimeZone]; m.loc == nil {
			m.loc = loadZone(m.TimeZone)
			zones[m.TimeZone] = m.loc
		}
		s.memberByID[m.ID] = m
		s.memberByName[m.UserName] = m
	}
	for i := range s.clients {
		s.clients[i].ProjectIDs = nil
		s.clientByID[s.clients[i].ID] = &s.clients[i]
	}
	for i := range s.projects {
		p := &s.projects[i]
		p.Assignments = nil
		s.projectByID[p.ID] = p
		if p.ClientID != nil {
			if c, ok := s.clientByID[*p.ClientID]; ok {
				c.ProjectIDs = append(c.ProjectIDs, p.ID)
			}
		}
	}
	for _, a := range t.Assignments {
		if p, ok := s.projectByID[a.ProjectID]; ok {
			p.Assignments = append(p.Assignments, a)
		}
	}
	for i := range s.taskTypes {
		s.taskByID[s.taskTypes[i].ID] = &s.taskTypes[i]
	}
	for _, r := range s.roles {
		s.roleByName[r.Name] = r.ID
	}
	return s
}

// Members returns every member in load order
func (s *Snapshot) Members() []Member { return s.members }

// Projects returns every project in load order
func (s *Snapshot) Projects() []Project { return s.projects }

// Member looks a member up by id
func (s *Snapshot) Member(id int) (Member, bool) {
	if m, ok := s.memberByID[id]; ok {
		return *m, true
	}
	return Member{}, false
}

// MemberByUserName finds an active member by user name
func (s *Snapshot) MemberByUserName(name string) (Member, error) {
	m, ok := s.memberByName[name]
	if !ok || !m.IsActive {
		return Member{}, perr.NotFoundf("member with user name %q not found", name)
	}
	return *m, nil
}

// Project looks a project up by id
func (s *Snapshot) Project(id int) (Project, error) {
	if p, ok := s.projectByID[id]; ok {
		return *p, nil
	}
	return Project{}, perr.NotFoundf("project %d not found", id)
}

// Client looks a client up by id
func (s *Snapshot) Client(id int) (Client, bool) {
	if c, ok := s.clientByID[id]; ok {
		return *c, true
	}
	return Client{}, false
}

// TaskType looks a task type up by id
func (s *Snapshot) TaskType(id int) (TaskType, bool) {
	if t, ok := s.taskByID[id]; ok {
		return *t, true
	}
	return TaskType{}, false
}

// RoleID returns the id of the role called name
func (s *Snapshot) RoleID(name string) (int, error) {
	if id, ok := s.roleByName[name]; ok {
		return id, nil
	}
	return 0, perr.NotFoundf("project role %q not found", name)
}

// ManagerRoleID returns the Manager role id
func (s *Snapshot) ManagerRoleID() (int, error) { return s.RoleID(RoleManager) }

// MemberRoleID returns the Member role id
func (s *Snapshot) MemberRoleID() (int, error) { return s.RoleID(RoleMember) }

// RoleOf returns memberID's role on projectID, or 0 when unassigned
func (s *Snapshot) RoleOf(memberID, projectID int) int {
	p, ok := s.projectByID[projectID]
	if !ok {
		return 0
	}
	for _, a := range p.Assignments {
		if a.MemberID == memberID {
			return a.RoleID
		}
	}
	return 0
}

// ManagedProjectIDs returns the projects where memberID holds the Manager role
func (s *Snapshot) ManagedProjectIDs(memberID int) []int {
	managerID, err := s.ManagerRoleID()
	if err != nil {
		return nil
	}
	var out []int
	for _, p := range s.projects {
		for _, a := range p.Assignments {
			if a.MemberID == memberID && a.RoleID == managerID {
				out = append(out, p.ID)
				break
			}
		}
	}
	return out
}

// VisibleProjects returns what m may pick in report filters: every project for
// admins, otherwise projects m is assigned to plus every public project
func (s *Snapshot) VisibleProjects(m Member) []Project {
	if m.IsAdmin {
		return s.projects
	}
	var out []Project
	for _, p := range s.projects {
		if !p.IsPrivate || s.RoleOf(m.ID, p.ID) != 0 {
			out = append(out, p)
		}
	}
	return out
}

// Hydrate links each entry to its member, project, client and task type.
// A reference the snapshot does not know is a not found error.
func (s *Snapshot) Hydrate(entries []TimeEntry) ([]TimeEntry, error) {
	out := make([]TimeEntry, len(entries))
	for i, e := range entries {
		m, ok := s.memberByID[e.MemberID]
		if !ok {
			return nil, perr.NotFoundf("time entry %d: member %d not found", e.ID, e.MemberID)
		}
		p, ok := s.projectByID[e.ProjectID]
		if !ok {
			return nil, perr.NotFoundf("time entry %d: project %d not found", e.ID, e.ProjectID)
		}
		e.Member, e.Project, e.Client, e.TaskType = m, p, nil, nil
		if p.ClientID != nil {
			e.Client = s.clientByID[*p.ClientID]
		}
		if e.TaskTypeID != nil {
			e.TaskType = s.taskByID[*e.TaskTypeID]
		}
		out[i] = e
	}
	return out, nil
}

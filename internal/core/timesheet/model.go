// Package timesheet models members, projects, clients and time entries as
// read by the reporting core, plus an immutable Snapshot with the lookups
// reports need
package timesheet

import "time"

// WeekStart is a member's first day of the week
type WeekStart int

const (
	WeekStartSunday WeekStart = 0
	WeekStartMonday WeekStart = 1
)

// Weekday maps the preference onto time.Weekday
func (w WeekStart) Weekday() time.Weekday {
	if w == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// Role names with special meaning
const (
	RoleManager = "Manager"
	RoleMember  = "Member"
)

// WithoutClient is the synthetic bucket for projects that have no client.
// It is never persisted.
var WithoutClient = Client{ID: -1, Name: "Without Client", IsActive: true}

// Member is a user who logs time
type Member struct {
	ID        int
	UserName  string
	FullName  string
	IsAdmin   bool
	IsManager bool
	IsActive  bool
	WeekStart WeekStart
	TimeZone  string // IANA name, "" means UTC

	loc *time.Location // resolved by NewSnapshot
}

// Location returns the member's time zone, falling back to UTC. Members
// from a Snapshot carry it pre-resolved.
func (m Member) Location() *time.Location {
	if m.loc != nil {
		return m.loc
	}
	return loadZone(m.TimeZone)
}

func loadZone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Client owns projects
type Client struct {
	ID         int
	Name       string
	IsActive   bool
	ProjectIDs []int
}

// Project is something members log time against
type Project struct {
	ID          int
	Name        string
	IsActive    bool
	IsPrivate   bool
	ClientID    *int
	Assignments []Assignment
}

// Assignment gives a member a role on a project
type Assignment struct {
	MemberID  int
	ProjectID int
	RoleID    int
}

// ProjectRole is a named role such as Manager or Member
type ProjectRole struct {
	ID   int
	Name string
}

// TaskType classifies an entry
type TaskType struct {
	ID   int
	Name string
}

// TimeEntry is one logged block of work. Date is a calendar day at UTC
// midnight; TimeFrom and TimeTo are seconds since midnight. The pointer
// fields are filled by Snapshot.Hydrate; a nil Client means Without Client.
type TimeEntry struct {
	ID          int
	Date        time.Time
	TimeFrom    int
	TimeTo      int
	Actual      time.Duration
	Estimated   time.Duration
	Description string
	MemberID    int
	ProjectID   int
	TaskTypeID  *int

	Member   *Member
	Project  *Project
	Client   *Client
	TaskType *TaskType
}

// ClientOrWithout returns the entry's client or the Without Client bucket
func (e TimeEntry) ClientOrWithout() Client {
	if e.Client == nil {
		return WithoutClient
	}
	return *e.Client
}

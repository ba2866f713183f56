package reporting

import (
	"cmp"
	"strings"
	"time"

	"hourglass/internal/core/timesheet"
	perr "hourglass/internal/platform/errors"
)

// DimensionID is the stored group-by id
type DimensionID int

const (
	GroupByProject DimensionID = iota + 1
	GroupByMember
	GroupByDate
	GroupByClient
)

// Key identifies one group. Date is set only for date groups; ID and Name
// carry the project, member or client.
type Key struct {
	ID   int
	Name string
	Date time.Time
}

// Dimension is a group-by axis. The set of implementations is closed.
type Dimension interface {
	ID() DimensionID
	Name() string
	key(e timesheet.TimeEntry) Key
	compare(a, b Key) int
}

type (
	ByProject struct{}
	ByMember  struct{}
	ByDate    struct{}
	ByClient  struct{}
)

func (ByProject) ID() DimensionID { return GroupByProject }
func (ByMember) ID() DimensionID  { return GroupByMember }
func (ByDate) ID() DimensionID    { return GroupByDate }
func (ByClient) ID() DimensionID  { return GroupByClient }

func (ByProject) Name() string { return "Project" }
func (ByMember) Name() string  { return "Member" }
func (ByDate) Name() string    { return "Date" }
func (ByClient) Name() string  { return "Client" }

func (ByProject) key(e timesheet.TimeEntry) Key {
	if e.Project == nil {
		return Key{ID: e.ProjectID}
	}
	return Key{ID: e.Project.ID, Name: e.Project.Name}
}

func (ByMember) key(e timesheet.TimeEntry) Key {
	if e.Member == nil {
		return Key{ID: e.MemberID}
	}
	return Key{ID: e.Member.ID, Name: e.Member.FullName}
}

func (ByDate) key(e timesheet.TimeEntry) Key {
	y, m, d := e.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Key{Name: day.Format(time.DateOnly), Date: day}
}

func (ByClient) key(e timesheet.TimeEntry) Key {
	c := e.ClientOrWithout()
	return Key{ID: c.ID, Name: c.Name}
}

func (ByProject) compare(a, b Key) int { return byName(a, b) }
func (ByMember) compare(a, b Key) int  { return byName(a, b) }
func (ByClient) compare(a, b Key) int  { return byName(a, b) }
func (ByDate) compare(a, b Key) int    { return a.Date.Compare(b.Date) }

// byName is ordinal and case sensitive
func byName(a, b Key) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Dimensions lists every axis in id order
func Dimensions() []Dimension {
	return []Dimension{ByProject{}, ByMember{}, ByDate{}, ByClient{}}
}

// DimensionByID maps a stored id onto its axis
func DimensionByID(id int) (Dimension, error) {
	for _, d := range Dimensions() {
		if int(d.ID()) == id {
			return d, nil
		}
	}
	return nil, perr.InvalidArgf("unknown group by id %d", id)
}

package reporting

import (
	"testing"
	"time"

	"hourglass/internal/core/timesheet"
	perr "hourglass/internal/platform/errors"
	kit "hourglass/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(i int) *int { return &i }

func fixture(t *testing.T) (*timesheet.Snapshot, []timesheet.TimeEntry) {
	t.Helper()
	s := timesheet.NewSnapshot(timesheet.Tables{
		Members: []timesheet.Member{
			{ID: 1, FullName: "Ada Admin", IsAdmin: true, IsActive: true},
			{ID: 7, FullName: "Mia Member", IsActive: true},
			{ID: 8, FullName: "Max Manager", IsManager: true, IsActive: true},
			{ID: 9, FullName: "Bob Builder", IsActive: true},
		},
		Clients: []timesheet.Client{{ID: 10, Name: "acme"}, {ID: 11, Name: "Zeta"}},
		Projects: []timesheet.Project{
			{ID: 3, Name: "Website", ClientID: ptr(10)},
			{ID: 4, Name: "API", ClientID: ptr(11)},
			{ID: 5, Name: "Internal"},
		},
		Roles: []timesheet.ProjectRole{{ID: 1, Name: timesheet.RoleManager}, {ID: 2, Name: timesheet.RoleMember}},
		Assignments: []timesheet.Assignment{
			{MemberID: 8, ProjectID: 4, RoleID: 1},
			{MemberID: 8, ProjectID: 3, RoleID: 2},
		},
	})
	raw := []timesheet.TimeEntry{
		{ID: 1, Date: kit.Day(2025, 3, 5), MemberID: 7, ProjectID: 3, Actual: time.Hour},
		{ID: 2, Date: kit.Day(2025, 3, 3), MemberID: 9, ProjectID: 4, Actual: 2 * time.Hour, Estimated: time.Hour},
		{ID: 3, Date: kit.Day(2025, 3, 4), MemberID: 9, ProjectID: 3, Actual: 30 * time.Minute},
		{ID: 4, Date: kit.Day(2025, 3, 3), MemberID: 7, ProjectID: 5, Actual: time.Hour},
		{ID: 5, Date: kit.Day(2025, 3, 4), MemberID: 8, ProjectID: 5, Actual: 15 * time.Minute},
		{ID: 6, Date: kit.Day(2025, 3, 2), MemberID: 7, ProjectID: 3, Actual: time.Hour},
	}
	entries, err := s.Hydrate(raw)
	require.NoError(t, err)
	return s, entries
}

func entryIDs(es []timesheet.TimeEntry) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func member(s *timesheet.Snapshot, id int) timesheet.Member {
	m, _ := s.Member(id)
	return m
}

func TestVisibility(t *testing.T) {
	s, entries := fixture(t)

	admin := NewViewer(member(s, 1), s).Visible(entries)
	assert.Len(t, admin, len(entries))

	plain := NewViewer(member(s, 7), s).Visible(entries)
	for _, e := range plain {
		assert.Equal(t, 7, e.MemberID)
	}
	assert.Equal(t, []int{1, 4, 6}, entryIDs(plain))

	// manager on 4 only; member role on 3 grants nothing extra
	mgr := NewViewer(member(s, 8), s)
	got := mgr.Visible(entries)
	for _, e := range got {
		assert.True(t, e.MemberID == 8 || e.ProjectID == 4, "entry %d leaked", e.ID)
	}
	assert.Equal(t, []int{2, 5}, entryIDs(got))
	assert.True(t, mgr.Manages(4))
	assert.False(t, mgr.Manages(3))
}

func TestFilterChain(t *testing.T) {
	_, entries := fixture(t)

	cases := []struct {
		name string
		f    Filter
		want []int
	}{
		{"empty keeps all", Filter{}, []int{1, 2, 3, 4, 5, 6}},
		{"projects", Filter{ProjectIDs: []int{3}}, []int{1, 3, 6}},
		{"members", Filter{MemberIDs: []int{9}}, []int{2, 3}},
		{"and", Filter{ProjectIDs: []int{3, 4}, MemberIDs: []int{9}}, []int{2, 3}},
		{"client", Filter{ClientIDs: []int{11}}, []int{2}},
		{"without client", Filter{ClientIDs: []int{timesheet.WithoutClient.ID}}, []int{4, 5}},
		{"client or without", Filter{ClientIDs: []int{10, -1}}, []int{1, 3, 4, 5, 6}},
		{"no match", Filter{MemberIDs: []int{42}}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entryIDs(tc.f.Apply(entries)))
		})
	}

	id, ok := Filter{ProjectIDs: []int{3}}.SingleProjectID()
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	_, ok = Filter{ProjectIDs: []int{3, 4}}.SingleProjectID()
	assert.False(t, ok)
}

func TestGroupByPartitionsAndOrders(t *testing.T) {
	_, entries := fixture(t)

	for _, d := range Dimensions() {
		t.Run(d.Name(), func(t *testing.T) {
			r := GroupBy(d, entries)
			require.Equal(t, len(entries), r.Len())

			seen := map[int]int{}
			var total time.Duration
			for i, g := range r.Groups {
				for j, e := range g.Entries {
					seen[e.ID]++
					if j > 0 {
						assert.False(t, e.Date.Before(g.Entries[j-1].Date), "group %q not ordered by date", g.Key.Name)
					}
				}
				if i > 0 {
					assert.LessOrEqual(t, d.compare(r.Groups[i-1].Key, g.Key), 0)
				}
				total += g.Totals.Actual
			}
			for _, e := range entries {
				assert.Equal(t, 1, seen[e.ID], "entry %d", e.ID)
			}
			assert.Equal(t, total, r.Totals.Actual)
		})
	}
}

func TestGroupKeys(t *testing.T) {
	_, entries := fixture(t)

	names := func(r Report) []string {
		out := make([]string, len(r.Groups))
		for i, g := range r.Groups {
			out[i] = g.Key.Name
		}
		return out
	}

	// ordinal: upper case sorts before lower case
	assert.Equal(t, []string{"Without Client", "Zeta", "acme"}, names(GroupBy(ByClient{}, entries)))
	assert.Equal(t, []string{"API", "Internal", "Website"}, names(GroupBy(ByProject{}, entries)))
	assert.Equal(t, []string{"Bob Builder", "Max Manager", "Mia Member"}, names(GroupBy(ByMember{}, entries)))
	assert.Equal(t, []string{"2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05"}, names(GroupBy(ByDate{}, entries)))

	byClient := GroupBy(ByClient{}, entries)
	assert.Equal(t, timesheet.WithoutClient.ID, byClient.Groups[0].Key.ID)
	assert.Equal(t, []int{4, 5}, entryIDs(byClient.Groups[0].Entries))
	assert.Equal(t, time.Hour+15*time.Minute, byClient.Groups[0].Totals.Actual)
}

func TestPlainMemberGroupedByMember(t *testing.T) {
	s, entries := fixture(t)
	visible := NewViewer(member(s, 7), s).Visible(entries)
	r := GroupBy(ByMember{}, visible)
	require.Len(t, r.Groups, 1)
	assert.Equal(t, 7, r.Groups[0].Key.ID)
}

func TestGroupByEmpty(t *testing.T) {
	r := GroupBy(ByProject{}, nil)
	assert.Empty(t, r.Groups)
	assert.Zero(t, r.Totals)
}

func TestDimensionByID(t *testing.T) {
	d, err := DimensionByID(3)
	require.NoError(t, err)
	assert.Equal(t, ByDate{}, d)

	_, err = DimensionByID(99)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

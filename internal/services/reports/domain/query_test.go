package domain

import (
	"encoding/json"
	"testing"
	"time"

	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/net/http/bind"
	kit "hourglass/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(i int) *int       { return &i }
func sp(s string) *string { return &s }

func TestEqual(t *testing.T) {
	base := ReportQuery{
		GroupByID:     1,
		ShowColumnIDs: []int{1, 2},
		DateStaticID:  ip(2),
		MemberIDs:     []int{7, 9},
		QueryName:     sp("weekly"),
	}

	same := base
	same.MemberIDs = []int{9, 7}
	same.ShowColumnIDs = []int{2, 1}
	same.DateStaticID = ip(2)
	same.QueryName = sp("weekly")
	assert.True(t, base.Equal(same), "order and pointer identity must not matter")

	nilVsEmpty := base
	nilVsEmpty.ProjectIDs = []int{}
	assert.True(t, base.Equal(nilVsEmpty))

	cases := map[string]func(q *ReportQuery){
		"group by":    func(q *ReportQuery) { q.GroupByID = 2 },
		"static":      func(q *ReportQuery) { q.DateStaticID = ip(3) },
		"static nil":  func(q *ReportQuery) { q.DateStaticID = nil },
		"from":        func(q *ReportQuery) { q.DateFrom = sp("2025-01-01") },
		"to":          func(q *ReportQuery) { q.DateTo = sp("2025-01-01") },
		"members":     func(q *ReportQuery) { q.MemberIDs = []int{7} },
		"dup members": func(q *ReportQuery) { q.MemberIDs = []int{7, 7} },
		"projects":    func(q *ReportQuery) { q.ProjectIDs = []int{3} },
		"clients":     func(q *ReportQuery) { q.ClientIDs = []int{-1} },
		"columns":     func(q *ReportQuery) { q.ShowColumnIDs = []int{1} },
		"query id":    func(q *ReportQuery) { q.QueryID = ip(1) },
		"query name":  func(q *ReportQuery) { q.QueryName = sp("monthly") },
	}
	for name, mut := range cases {
		other := base
		other.MemberIDs = []int{7, 9}
		mut(&other)
		assert.False(t, base.Equal(other), name)
	}
}

func TestRange(t *testing.T) {
	today := kit.Day(2025, time.March, 5)

	r, err := ReportQuery{DateStaticID: ip(2)}.Range(today, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, kit.Day(2025, 3, 3), r.From)
	assert.Equal(t, kit.Day(2025, 3, 9), r.To)
	assert.True(t, r.Contains(today))

	r, err = ReportQuery{DateFrom: sp("2025-01-02"), DateTo: sp("2025-02-03")}.Range(today, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, kit.Day(2025, 1, 2), r.From)

	bad := []ReportQuery{
		{},
		{DateStaticID: ip(1), DateFrom: sp("2025-01-01"), DateTo: sp("2025-01-02")},
		{DateFrom: sp("2025-01-01")},
		{DateStaticID: ip(1), DateTo: sp("2025-01-02")},
	}
	for i, q := range bad {
		_, err := q.Range(today, time.Monday)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument), "case %d: %v", i, err)
	}
}

func TestDefaultQuery(t *testing.T) {
	q := DefaultQuery()
	assert.Equal(t, 1, q.GroupByID)
	require.NotNil(t, q.DateStaticID)
	assert.Equal(t, 2, *q.DateStaticID)
	assert.Equal(t, []int{1, 2, 3, 4}, q.ShowColumnIDs)
	assert.Len(t, q.Columns(), 4)
}

func TestExportRequest_FlattensQuery(t *testing.T) {
	var in ExportRequest
	require.NoError(t, json.Unmarshal([]byte(`{"group_by_id":3,"date_static_id":1,"project_ids":[4],"file_type_id":2}`), &in))
	assert.Equal(t, 3, in.GroupByID)
	assert.Equal(t, []int{4}, in.ProjectIDs)
	require.NotNil(t, in.FileTypeID)
	assert.Equal(t, 2, *in.FileTypeID)
	assert.NoError(t, bind.Validate(in))
}

func TestValidateTags(t *testing.T) {
	cases := []struct {
		name string
		v    any
		ok   bool
	}{
		{"default", DefaultQuery(), true},
		{"group by out of range", ReportQuery{GroupByID: 5, DateStaticID: ip(1)}, false},
		{"bad column", ReportQuery{GroupByID: 1, ShowColumnIDs: []int{9}}, false},
		{"bad date", ReportQuery{GroupByID: 1, DateFrom: sp("2025-13-01"), DateTo: sp("2025-12-01")}, false},
		{"file type out of range", ExportRequest{ReportQuery: DefaultQuery(), FileTypeID: ip(3)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := bind.Validate(tc.v)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

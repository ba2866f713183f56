package reporting

import (
	"slices"
	"time"

	"hourglass/internal/core/timesheet"
)

// Totals sums actual and estimated time
type Totals struct {
	Actual    time.Duration
	Estimated time.Duration
}

func (t *Totals) add(e timesheet.TimeEntry) {
	t.Actual += e.Actual
	t.Estimated += e.Estimated
}

// Group is one partition of a report
type Group struct {
	Key     Key
	Entries []timesheet.TimeEntry
	Totals  Totals
}

// Report is the grouped result. Groups follow the dimension's ordering and
// entries inside each group are ordered by date.
type Report struct {
	Dimension Dimension
	Groups    []Group
	Totals    Totals
}

// Len counts entries across all groups
func (r Report) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Entries)
	}
	return n
}

// GroupBy partitions entries along d. Every entry lands in exactly one group.
func GroupBy(d Dimension, entries []timesheet.TimeEntry) Report {
	r := Report{Dimension: d}
	index := make(map[Key]int)
	for _, e := range entries {
		k := d.key(e)
		i, ok := index[k]
		if !ok {
			i = len(r.Groups)
			index[k] = i
			r.Groups = append(r.Groups, Group{Key: k})
		}
		g := &r.Groups[i]
		g.Entries = append(g.Entries, e)
		g.Totals.add(e)
		r.Totals.add(e)
	}

	slices.SortFunc(r.Groups, func(a, b Group) int { return d.compare(a.Key, b.Key) })
	for i := range r.Groups {
		slices.SortStableFunc(r.Groups[i].Entries, func(a, b timesheet.TimeEntry) int {
			return a.Date.Compare(b.Date)
		})
	}
	return r
}

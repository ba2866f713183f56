package daterange

import (
	"testing"
	"time"

	perr "hourglass/internal/platform/errors"
	kit "hourglass/internal/platform/testkit"
)

func TestResolve(t *testing.T) {
	// Wednesday
	today := kit.Day(2025, time.March, 5)

	cases := []struct {
		name     string
		id       StaticID
		start    time.Weekday
		from, to time.Time
	}{
		{"today", Today, time.Monday, today, today},
		{"yesterday", Yesterday, time.Monday, kit.Day(2025, 3, 4), kit.Day(2025, 3, 4)},
		{"this week monday", ThisWeek, time.Monday, kit.Day(2025, 3, 3), kit.Day(2025, 3, 9)},
		{"this week sunday", ThisWeek, time.Sunday, kit.Day(2025, 3, 2), kit.Day(2025, 3, 8)},
		{"last week monday", LastWeek, time.Monday, kit.Day(2025, 2, 24), kit.Day(2025, 3, 2)},
		{"last week sunday", LastWeek, time.Sunday, kit.Day(2025, 2, 23), kit.Day(2025, 3, 1)},
		{"this month", ThisMonth, time.Monday, kit.Day(2025, 3, 1), kit.Day(2025, 3, 31)},
		{"last month", LastMonth, time.Monday, kit.Day(2025, 2, 1), kit.Day(2025, 2, 28)},
		{"this year", ThisYear, time.Monday, kit.Day(2025, 1, 1), kit.Day(2025, 12, 31)},
		{"last year", LastYear, time.Monday, kit.Day(2024, 1, 1), kit.Day(2024, 12, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve(tc.id, today, tc.start)
			if err != nil {
				t.Fatal(err)
			}
			if !r.From.Equal(tc.from) || !r.To.Equal(tc.to) {
				t.Fatalf("got %s..%s want %s..%s", r.From.Format(time.DateOnly), r.To.Format(time.DateOnly),
					tc.from.Format(time.DateOnly), tc.to.Format(time.DateOnly))
			}
		})
	}
}

func TestResolveEdges(t *testing.T) {
	// week start day itself opens the week
	r, _ := Resolve(ThisWeek, kit.Day(2025, 3, 3), time.Monday)
	if !r.From.Equal(kit.Day(2025, 3, 3)) {
		t.Fatalf("from = %s", r.From)
	}
	// January rolls back into the previous year
	r, _ = Resolve(LastMonth, kit.Day(2025, 1, 15), time.Monday)
	if !r.From.Equal(kit.Day(2024, 12, 1)) || !r.To.Equal(kit.Day(2024, 12, 31)) {
		t.Fatalf("last month = %v", r)
	}
	// leap year
	r, _ = Resolve(ThisMonth, kit.Day(2024, 2, 10), time.Monday)
	if !r.To.Equal(kit.Day(2024, 2, 29)) {
		t.Fatalf("to = %s", r.To)
	}
	if _, err := Resolve(StaticID(99), kit.Day(2025, 1, 1), time.Monday); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestTodayIn(t *testing.T) {
	now := time.Date(2025, 3, 5, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*3600)
	if got := TodayIn(now, tokyo); !got.Equal(kit.Day(2025, 3, 6)) {
		t.Fatalf("tokyo today = %s", got)
	}
	if got := TodayIn(now, nil); !got.Equal(kit.Day(2025, 3, 5)) {
		t.Fatalf("utc today = %s", got)
	}
}

func TestParseAndContains(t *testing.T) {
	r, err := Parse("2025-01-02", "2025-02-03")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Contains(time.Date(2025, 2, 3, 18, 0, 0, 0, time.UTC)) || r.Contains(kit.Day(2025, 2, 4)) {
		t.Fatal("contains is inclusive of whole days only")
	}
	for _, bad := range [][2]string{{"2025-13-01", "2025-01-01"}, {"2025-01-01", "x"}, {"2025-02-01", "2025-01-01"}} {
		if _, err := Parse(bad[0], bad[1]); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("%v: err = %v", bad, err)
		}
	}
}

func TestDescriptions(t *testing.T) {
	for _, id := range All() {
		if !id.Valid() || id.Description() == "" {
			t.Fatalf("id %d has no description", id)
		}
	}
	if LastYear != 8 || Yesterday != 5 {
		t.Fatal("ids must keep their stored numbering")
	}
}

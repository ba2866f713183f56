package pg

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	got := compact("SELECT id,\n\t  name\nFROM members\n WHERE is_active")
	if got != "SELECT id, name FROM members WHERE is_active" {
		t.Fatalf("compact = %q", got)
	}
}

func TestTracer_SlowQueryWarns(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(zerolog.New(&buf).Level(zerolog.ErrorLevel), 50*time.Millisecond)

	clock := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return clock }

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT *\nFROM time_entries", Args: []any{1, 2}})
	clock = clock.Add(80 * time.Millisecond)
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 12")})

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"slow":true`, `"sql":"SELECT * FROM time_entries"`, `"rows":12`, `"component":"pg"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
}

func TestTracer_EndWithoutStartIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(zerolog.New(&buf), 0)
	tr.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %s", buf.String())
	}
}

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://nope"}, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

package pg

import (
	"context"
	"strings"
	"time"

	"hourglass/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Tracer logs every statement through pgx's tracer hooks. Statements at or
// above slow log at warn.
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

type traceKey struct{}

type traceStart struct {
	sql  string
	args []any
	at   time.Time
}

// NewTracer builds a tracer that always emits, whatever the root level
func NewTracer(root logger.Logger, slow time.Duration) *Tracer {
	return &Tracer{
		log:  root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

// TraceQueryStart implements pgx.QueryTracer
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, args: data.Args, at: t.now()})
}

// TraceQueryEnd implements pgx.QueryTracer
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Debug()
	if slow {
		evt = t.log.Warn()
	}
	if data.Err != nil {
		evt = t.log.Error().Err(data.Err)
	}
	evt.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", compact(st.sql)).
		Int("args", len(st.args)).
		Int64("rows", data.CommandTag.RowsAffected()).
		Msg("pg query")
}

// compact folds runs of whitespace so multi-line SQL logs on one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }

var _ pgx.QueryTracer = (*Tracer)(nil)

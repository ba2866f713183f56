// Package logger wraps zerolog with process-wide defaults and request-scoped
// child loggers
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"hourglass/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the root logger
type Options struct {
	Level     string
	Format    string // json or console
	Service   string
	Version   string
	Writer    io.Writer
	Caller    bool
	Component string
}

// FromEnv reads LOG_* through the raw view so config can log without a cycle
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:     strings.ToLower(rc.Get("LEVEL", "info")),
		Format:    strings.ToLower(rc.Get("FORMAT", "json")),
		Service:   rc.Get("SERVICE", ""),
		Version:   rc.Get("VERSION", ""),
		Caller:    rc.GetBool("CALLER", false),
		Component: rc.Get("COMPONENT", ""),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the logging type handed around the codebase
type Logger = zerolog.Logger

// Get returns the root logger, initializing it from env on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger once; later calls are ignored
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
		}

		zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			zc = zc.Str("go", bi.GoVersion)
		}
		if opt.Service != "" {
			zc = zc.Str("service", opt.Service)
		}
		if opt.Version != "" {
			zc = zc.Str("version", opt.Version)
		}
		if opt.Component != "" {
			zc = zc.Str("component", opt.Component)
		}
		if opt.Caller {
			zc = zc.Caller()
		}

		l := zc.Logger()
		root.Store(&l)
		inited.Store(true)
	})
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.TrimSpace(strings.ToLower(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyUser      = ctxKey{"user"}
)

// WithRequest annotates ctx with the request id and the requesting user name
func WithRequest(ctx context.Context, requestID, user string) context.Context {
	if requestID != "" {
		ctx = context.WithValue(ctx, keyRequestID, requestID)
	}
	if user != "" {
		ctx = context.WithValue(ctx, keyUser, user)
	}
	return ctx
}

// C returns a child logger carrying whatever request fields ctx holds
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		b = b.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyUser).(string); s != "" {
		b = b.Str("user", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger tagged with a component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

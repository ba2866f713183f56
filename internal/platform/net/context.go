// Package net holds transport-neutral request context helpers
package net

import (
	"context"
	"net/http"

	perr "hourglass/internal/platform/errors"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyUser ctxKey = "user"

// WithUser stores the authenticated user name on ctx
func WithUser(ctx context.Context, user string) context.Context {
	if user == "" {
		return ctx
	}
	return context.WithValue(ctx, keyUser, user)
}

// User returns the authenticated user name, or ""
func User(ctx context.Context) string {
	v, _ := ctx.Value(keyUser).(string)
	return v
}

// WithRequestID stores id where chi's RequestID middleware would
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, id)
}

// RequestID returns the request id, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// ErrorWire is the envelope used by middleware that fails before a handler runs
type ErrorWire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds the status and envelope for err
func Error(err error, reqID string) (int, ErrorWire) {
	status, w := perr.HTTP(err)
	return status, ErrorWire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}

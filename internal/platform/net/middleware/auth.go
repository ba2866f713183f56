package middleware

import (
	"net/http"

	"hourglass/internal/platform/logger"
	pnet "hourglass/internal/platform/net"
)

// AuthPort extracts the authenticated user name from a request
type AuthPort interface {
	Parse(r *http.Request) (user string, err error)
}

// AuthFunc adapts a func to AuthPort
type AuthFunc func(r *http.Request) (string, error)

// Parse implements AuthPort
func (f AuthFunc) Parse(r *http.Request) (string, error) { return f(r) }

// Auth stores the parsed user on the context or writes the error envelope.
// A nil port passes requests through untouched.
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			user, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), user)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

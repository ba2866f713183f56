package httpkit

import (
	"net/http"
	"strings"

	perrs "hourglass/internal/platform/errors"
	pnet "hourglass/internal/platform/net"
)

// User returns the authenticated user name from the request context
func User(r *http.Request) (string, error) {
	u := pnet.User(r.Context())
	if u == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return u, nil
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

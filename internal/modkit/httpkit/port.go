package httpkit

import (
	"net/http"
	"strings"

	perrs "hourglass/internal/platform/errors"
)

// TokenFunc turns a bearer token into a user name
type TokenFunc func(token string) (user string, err error)

// Port implements middleware.AuthPort by reading Authorization and
// delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a parser
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// UserNameToken accepts the token itself as the user name. The gateway in
// front of the API has already authenticated the caller.
func UserNameToken(token string) (string, error) {
	if strings.ContainsAny(token, " \t") {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return token, nil
}

// Parse extracts the user name from an Authorization Bearer header
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := JWT(r)
	if err != nil {
		return "", err
	}
	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	user, err := p.parse(raw)
	if err != nil || user == "" {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return user, nil
}

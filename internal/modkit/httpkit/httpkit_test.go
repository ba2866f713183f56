package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrs "hourglass/internal/platform/errors"
	phttp "hourglass/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       perrs.ErrorCode `json:"code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func serve(t *testing.T, r Router, method, path, auth, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

type echo struct {
	Name string `json:"name" validate:"required"`
}

func newAPI() Router {
	root := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(root, CommonStack(StackOptions{}), func(api Router) {
		Get(api, "/open", func(*http.Request) (any, error) { return "hi", nil })
		Protected(api, NewPortFunc(UserNameToken), func(pr Router) {
			MountUnder(pr, "/things", nil, func(r Router) {
				Get(r, "/me", func(r *http.Request) (any, error) { return User(r) })
				PostJSON(r, "/", func(_ *http.Request, in echo) (any, error) { return Created(in), nil })
				Delete(r, "/{id}", func(r *http.Request) (any, error) {
					if URLParam(r, "id") == "404" {
						return nil, perrs.NotFoundf("thing missing")
					}
					return NoContent(), nil
				})
				Post(r, "/boom", func(*http.Request) (any, error) { return nil, errors.New("boom") })
			})
		})
	})
	return root
}

func TestRoutes(t *testing.T) {
	api := newAPI()

	rec, env := serve(t, api, http.MethodGet, "/api/v1/open", "", "")
	if rec.Code != http.StatusOK || string(env.Data) != `"hi"` {
		t.Fatalf("open: %d %s", rec.Code, rec.Body.String())
	}

	rec, env = serve(t, api, http.MethodGet, "/api/v1/things/me", "", "")
	if rec.Code != http.StatusUnauthorized || env.Code != perrs.ErrorCodeUnauthorized {
		t.Fatalf("unauthenticated: %d %s", rec.Code, rec.Body.String())
	}

	rec, env = serve(t, api, http.MethodGet, "/api/v1/things/me", "Bearer alice", "")
	if rec.Code != http.StatusOK || string(env.Data) != `"alice"` {
		t.Fatalf("me: %d %s", rec.Code, rec.Body.String())
	}

	rec, _ = serve(t, api, http.MethodPost, "/api/v1/things", "bearer alice", `{"name":"x"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}

	rec, env = serve(t, api, http.MethodPost, "/api/v1/things", "Bearer alice", `{}`)
	if rec.Code != http.StatusBadRequest || env.Code != perrs.ErrorCodeValidation {
		t.Fatalf("validation: %d %s", rec.Code, rec.Body.String())
	}

	rec, _ = serve(t, api, http.MethodDelete, "/api/v1/things/1", "Bearer alice", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec, env = serve(t, api, http.MethodDelete, "/api/v1/things/404", "Bearer alice", "")
	if rec.Code != http.StatusNotFound || env.Code != perrs.ErrorCodeNotFound {
		t.Fatalf("delete missing: %d %s", rec.Code, rec.Body.String())
	}

	rec, _ = serve(t, api, http.MethodPost, "/api/v1/things/boom", "Bearer alice", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("boom: %d", rec.Code)
	}
}

func TestPortParse(t *testing.T) {
	cases := []struct {
		name, header string
		parse        TokenFunc
		want         string
		ok           bool
	}{
		{"missing", "", UserNameToken, "", false},
		{"not bearer", "Basic abc", UserNameToken, "", false},
		{"empty token", "Bearer   ", UserNameToken, "", false},
		{"nil parser", "Bearer alice", nil, "", false},
		{"parser error", "Bearer alice", func(string) (string, error) { return "", errors.New("x") }, "", false},
		{"ok", "Bearer alice", UserNameToken, "alice", true},
		{"case insensitive", "BEARER bob", UserNameToken, "bob", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			got, err := NewPortFunc(tc.parse).Parse(r)
			if tc.ok != (err == nil) || got != tc.want {
				t.Fatalf("got %q err=%v", got, err)
			}
			if err != nil && !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
				t.Fatalf("err code = %v", perrs.CodeOf(err))
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	h := Handle(func(*http.Request) Response {
		return Attachment(File{Name: "Hourglass Reports Jan 2 - Feb 3.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")})
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") || !strings.Contains(cd, "Jan 2 - Feb 3.pdf") {
		t.Fatalf("disposition = %q", cd)
	}
	if rec.Body.String() != "%PDF-1.3" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

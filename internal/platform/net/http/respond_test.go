package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "hourglass/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Name string `json:"name" validate:"required"`
}

func newRouter() Router {
	r := AdaptChi(chi.NewRouter())
	r.Route("/reports", func(sub Router) {
		sub.Post("/echo", JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
			return map[string]string{"name": in.Name}, nil
		}))
		sub.Get("/missing/{id}", NoBodyHandler(func(r *stdhttp.Request) (any, error) {
			return nil, perr.NotFoundf("query %s not found", URLParam(r, "id"))
		}))
		sub.Get("/file", NoBodyHandler(func(*stdhttp.Request) (any, error) {
			return Attachment(File{Name: "Hourglass Reports Mar 1 - Mar 7.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}), nil
		}))
		sub.Delete("/gone", NoBodyHandler(func(*stdhttp.Request) (any, error) { return NoContent(), nil }))
	})
	return r
}

func TestEnvelope_OK(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/reports/echo", strings.NewReader(`{"name":"grid"}`)))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	var env struct {
		StatusCode int               `json:"status_code"`
		Data       map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.StatusCode != 200 || env.Data["name"] != "grid" {
		t.Fatalf("env = %+v", env)
	}
}

func TestEnvelope_Errors(t *testing.T) {
	cases := []struct {
		method, path, body string
		status             int
		code               perr.ErrorCode
	}{
		{"POST", "/reports/echo", `{"name":""}`, stdhttp.StatusBadRequest, perr.ErrorCodeValidation},
		{"POST", "/reports/echo", `nope`, stdhttp.StatusBadRequest, perr.ErrorCodeJSON},
		{"GET", "/reports/missing/42", "", stdhttp.StatusNotFound, perr.ErrorCodeNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		newRouter().Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: code = %d", tc.method, tc.path, rec.Code)
		}
		var env Envelope
		_ = json.NewDecoder(rec.Body).Decode(&env)
		if env.Code != tc.code || env.Error == "" {
			t.Fatalf("%s %s: env = %+v", tc.method, tc.path, env)
		}
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/reports/file", nil))

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="Hourglass Reports Mar 1 - Mar 7.pdf"`) {
		t.Fatalf("disposition = %q", got)
	}
	if rec.Body.String() != "%PDF-1.3" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().Mux().ServeHTTP(rec, httptest.NewRequest("DELETE", "/reports/gone", nil))
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("code=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestMountSwagger(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	MountSwagger(r, true, []byte(`{"openapi":"3.0.3"}`))
	MountProfiler(r, "/debug", false)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/docs/doc.json", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "3.0.3") {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

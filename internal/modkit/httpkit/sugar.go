package httpkit

import (
	"net/http"

	phttp "hourglass/internal/platform/net/http"
)

// PostJSON mounts a handler that binds and validates a T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// PutJSON mounts a handler that binds and validates a T body
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.JSONHandler(h))
}

// Get mounts a body-less handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBodyHandler(h))
}

// Post mounts a body-less handler
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.NoBodyHandler(h))
}

// Delete mounts a body-less handler
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.NoBodyHandler(h))
}

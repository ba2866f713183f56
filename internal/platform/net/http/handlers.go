package http

import (
	"net/http"

	"hourglass/internal/platform/net/http/bind"
)

// JSONHandler binds a T from the body, calls fn and envelopes the result.
// fn may return a Response to take over the reply.
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

// NoBodyHandler calls fn without reading the body
func NoBodyHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return reply(fn(r))
	})
}

func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

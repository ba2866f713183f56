// Package httpkit re-exports the platform http helpers modules need, so
// modules never import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "hourglass/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Response is what return-style handlers produce
	Response = phttp.Response
	// File is a download written outside the envelope
	File = phttp.File
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error maps err onto its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Attachment returns a file download
func Attachment(f File) Response { return phttp.Attachment(f) }

// Handle adapts a Response-returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// URLParam reads a path parameter
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

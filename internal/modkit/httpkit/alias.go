// Package httpkit re-exports the platform http helpers so modules never
// import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "padala/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Page is the pagination metadata type
	Page = phttp.Page

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Response builders, surfaced here so module handlers import exactly one
// http-ish package.
var (
	// OK builds a 200 response
	OK = phttp.OK
	// Created builds a 201 response
	Created = phttp.Created
	// NoContent builds a 204 response
	NoContent = phttp.NoContent
	// Data is an alias for OK
	Data = phttp.Data
	// Error builds a response whose status and envelope come from the error
	Error = phttp.Error
	// List builds a 200 response with items and pagination
	List = phttp.List
)

// JSON adapts a handler that takes a decoded, validated JSON body. It rides
// the shared binder, so bad bodies come back as coded errors.
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle adapts a Response-returning function directly
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

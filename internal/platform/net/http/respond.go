// Package http carries the JSON response envelope and the helpers that write it
package http

import (
	"cmp"
	"encoding/json"
	stdhttp "net/http"

	lumnet "padala/internal/platform/net"
)

// Envelope is the body shape every endpoint responds with. It embeds the
// transport-agnostic wire envelope and adds pagination for list endpoints.
type Envelope struct {
	lumnet.Wire
	Page *Page `json:"page,omitempty"`
}

// Page carries pagination details for list responses
type Page struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Cursor   string `json:"cursor,omitempty"`
}

// JSON encodes body as application/json under the given status
func JSON(w stdhttp.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// JSONStatus writes the status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// envelope builds a success envelope carrying the request id from ctx
func envelope(r *stdhttp.Request, status int, data any) Envelope {
	_, wire := lumnet.Reply(status, data, lumnet.RequestID(r.Context()))
	return Envelope{Wire: wire}
}

// errEnvelope maps a coded error to its wire form and status
func errEnvelope(r *stdhttp.Request, err error) (int, Envelope) {
	status, wire := lumnet.Error(err, lumnet.RequestID(r.Context()))
	return status, Envelope{Wire: wire}
}

// respond is the single success path every Respond* helper funnels through
func respond(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, payload any) {
	JSON(w, status, envelope(r, status, payload))
}

//
// Effectful helpers (Respond*) for classic handlers
//

// RespondOK writes a 200 envelope with payload
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, payload any) {
	respond(w, r, stdhttp.StatusOK, payload)
}

// RespondCreated writes a 201 envelope with payload
func RespondCreated(w stdhttp.ResponseWriter, r *stdhttp.Request, payload any) {
	respond(w, r, stdhttp.StatusCreated, payload)
}

// RespondNoContent writes a bare 204
func RespondNoContent(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusNoContent)
}

// RespondData is an alias for RespondOK
func RespondData(w stdhttp.ResponseWriter, r *stdhttp.Request, payload any) {
	respond(w, r, stdhttp.StatusOK, payload)
}

// RespondList writes items plus a pagination block
func RespondList(w stdhttp.ResponseWriter, r *stdhttp.Request, items any, total, page, pageSize int, cursor string) {
	env := envelope(r, stdhttp.StatusOK, items)
	env.Page = &Page{Total: total, Page: page, PageSize: pageSize, Cursor: cursor}
	JSON(w, stdhttp.StatusOK, env)
}

// RespondError writes the envelope form of a coded error
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := errEnvelope(r, err)
	JSON(w, status, env)
}

//
// Return-style helpers for early returns in handlers
//

// Response lets handlers return their outcome instead of writing it inline
type Response struct {
	Status int
	Body   any
	// optional extra headers
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for key, vals := range resp.Header {
		for _, val := range vals {
			w.Header().Add(key, val)
		}
	}

	status := cmp.Or(resp.Status, stdhttp.StatusOK)
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// an error body decides its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	respond(w, r, status, resp.Body)
}

// at shapes a Response under an explicit status
func at(status int, body any) Response { return Response{Status: status, Body: body} }

// OK returns a 200 response
func OK(data any) Response { return at(stdhttp.StatusOK, data) }

// Created returns a 201 response
func Created(data any) Response { return at(stdhttp.StatusCreated, data) }

// NoContent returns a 204 response
func NoContent() Response { return at(stdhttp.StatusNoContent, nil) }

// Data is an alias for OK
func Data(v any) Response { return OK(v) }

// Error returns a response whose status and envelope come from the error
func Error(err error) Response { return Response{Body: err} }

// List returns a 200 response with items and pagination
func List(items any, total, page, size int, cursor string) Response {
	type listing struct {
		Items any  `json:"items"`
		Page  Page `json:"page"`
	}
	return OK(listing{Items: items, Page: Page{Total: total, Page: page, PageSize: size, Cursor: cursor}})
}

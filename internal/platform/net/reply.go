package net

import (
	"net/http"

	perr "padala/internal/platform/errors"
)

// Wire is the envelope shared by transports
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// Reply builds an envelope under the given status
func Reply(status int, data any, reqID string) (int, Wire) {
	w := envelope(status, reqID)
	w.Data = data
	return status, w
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) { return Reply(http.StatusOK, data, reqID) }

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Wire) { return Reply(http.StatusCreated, data, reqID) }

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) { return Reply(http.StatusNoContent, nil, reqID) }

// Error builds an envelope whose status and code come from the error
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status, coded := HTTPStatus(err), perr.WireFrom(err)
	w := envelope(status, reqID)
	w.Code, w.Error = coded.Code, coded.Message
	return status, w
}

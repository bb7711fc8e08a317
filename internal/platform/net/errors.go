package net

import (
	"net/http"

	perr "padala/internal/platform/errors"
)

// HTTPStatus maps a project error to its HTTP status, nil meaning 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "padala/internal/platform/net/http"
)

// Module is what the application composes at bootstrap. It lives in its own
// package so a module can also export a ports type without import knots.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

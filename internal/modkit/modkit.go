package modkit

import (
	phttp "padala/internal/platform/net/http"
)

// Module is the surface an API module presents to the application. Kept
// small so modules stay decoupled from each other.
type Module interface {
	// MountRoutes attaches the module's HTTP routes to the router seam
	MountRoutes(r phttp.Router)
	// Ports exposes a module specific port set for cross wiring
	Ports() any

	// Name identifies the module in logs and the registry
	Name() string
}

// Builder constructs a Module from shared deps and options.
// Modules usually expose New(deps Deps, opts ...Option) Module in this shape.
type Builder func(Deps, ...Option) Module

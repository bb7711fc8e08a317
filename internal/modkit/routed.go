package modkit

import (
	"net/http"

	"padala/internal/modkit/httpkit"
	str "padala/internal/platform/strings"
)

// Routed carries the route wiring every prefixed module shares. Embed it,
// seed it with NewRouted, and the module gets MountRoutes, Name, Prefix,
// and Middlewares for free.
type Routed struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// NewRouted seeds the wiring from a Built, chaining the module's own route
// registration before any externally supplied hook.
func NewRouted(b Built, register func(httpkit.Router)) Routed {
	ext := b.Register
	return Routed{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		register: func(r httpkit.Router) {
			if register != nil {
				register(r)
			}
			if ext != nil {
				ext(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix with its middleware applied
func (ro *Routed) MountRoutes(r httpkit.Router) {
	r.Route(ro.prefix, func(rr httpkit.Router) {
		for _, mw := range ro.mws {
			rr.Use(mw)
		}
		if ro.subrouter != nil {
			rr = ro.subrouter(rr)
		}
		if ro.register != nil {
			ro.register(rr)
		}
	})
}

// Name returns the module name, panicking when it was never set
func (ro *Routed) Name() string { return str.MustString(ro.name, "module name") }

// Prefix returns the normalized route prefix
func (ro *Routed) Prefix() string { return str.MustPrefix(ro.prefix) }

// Middlewares returns the module scoped middleware stack
func (ro *Routed) Middlewares() []func(http.Handler) http.Handler { return ro.mws }

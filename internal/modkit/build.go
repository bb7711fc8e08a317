package modkit

import (
	"net/http"

	"padala/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build folds the options into a Built, filling in no-op router hooks for
// any the caller left unset
func Build(opts ...Option) Built {
	var c modCfg
	for _, o := range opts {
		o(&c)
	}

	sub := c.subrouter
	if sub == nil {
		sub = func(r httpkit.Router) httpkit.Router { return r }
	}
	reg := c.register
	if reg == nil {
		reg = func(httpkit.Router) {}
	}

	// the middleware slice is copied so later caller mutations cannot leak in
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Subrouter: sub,
		Register:  reg,
	}
}

// Package module wires estimates into the API using modkit
package module

import (
	"padala/internal/core/holiday"
	modkit "padala/internal/modkit"
	"padala/internal/modkit/httpkit"
	estimatehttp "padala/internal/services/api/estimate/http"
	estimatesvc "padala/internal/services/api/estimate/service"
	ratesdomain "padala/internal/services/rates/domain"
)

// Module implements the estimate module
type Module struct {
	modkit.Routed

	deps      modkit.Deps
	ports     any
	swaggerOn bool

	svc estimatesvc.Service
}

// New constructs the estimate module
func New(deps modkit.Deps, rates ratesdomain.ServicePort, cal *holiday.Calendar, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("estimate"),
		modkit.WithPrefix("/estimate"),
	}, opts...)...)

	svc := estimatesvc.New(rates, cal, deps.Log)

	m := &Module{
		deps:      deps,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
	}
	m.ports = adaptEstimatePort{svc: svc}
	m.Routed = modkit.NewRouted(b, func(r httpkit.Router) {
		estimatehttp.Register(r, m.svc)
	})
	return m
}

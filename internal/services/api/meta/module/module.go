// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"padala/internal/core/version"
	modkit "padala/internal/modkit"
	"padala/internal/modkit/httpkit"
	estdomain "padala/internal/services/api/estimate/domain"

	metahttp "padala/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Routed

	deps      modkit.Deps
	swaggerOn bool
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, health estdomain.ServicePort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		swaggerOn: b.SwaggerOn,
		startedAt: time.Now(),
	}
	m.Routed = modkit.NewRouted(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.ServiceName,
			StartedAt:   m.startedAt,
			Health:      health,
		})
	})
	return m
}

// Ports implements the modkit.Module interface, meta exposes none
func (m *Module) Ports() any { return nil }

// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"padala/internal/core/version"
	"padala/internal/modkit/httpkit"
	estdomain "padala/internal/services/api/estimate/domain"
)

// Deps carries what the meta handlers need
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Health      estdomain.ServicePort
}

// Register mounts the health, version, and service info routes
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", healthHandler(d))
	httpkit.Get(r, "/version", versionHandler)
	httpkit.Get(r, "/service", serviceHandler(d))
}

// HealthResponse reports overall health plus per-dependency checks
// swagger:model
type HealthResponse struct {
	Status  string                  `json:"status"  example:"healthy"` // healthy unhealthy
	Checks  []estdomain.HealthCheck `json:"checks"`
	Service string                  `json:"service" example:"padala-api"`
	Now     string                  `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse reports identity and uptime
type ServiceResponse struct {
	Name    string `json:"name"    example:"padala-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func healthHandler(d Deps) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		res := d.Health.Health(r.Context())
		return HealthResponse{
			Status:  res.Status,
			Checks:  res.Checks,
			Service: d.ServiceName,
			Now:     time.Now().UTC().Format(time.RFC3339),
		}, nil
	}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func versionHandler(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func serviceHandler(d Deps) func(*http.Request) (any, error) {
	return func(_ *http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: d.StartedAt.UTC().Format(time.RFC3339),
			Uptime:  int64(time.Since(d.StartedAt) / time.Second),
		}, nil
	}
}

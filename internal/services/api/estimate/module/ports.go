package module

import (
	"context"

	"padala/internal/services/api/estimate/domain"
	estimatesvc "padala/internal/services/api/estimate/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptEstimatePort struct{ svc estimatesvc.Service }

// Estimate computes a delivery estimate
func (a adaptEstimatePort) Estimate(ctx context.Context, in domain.EstimateInput) (domain.Estimate, error) {
	return a.svc.Estimate(ctx, in)
}

// Services lists available couriers and settings
func (a adaptEstimatePort) Services(ctx context.Context) (domain.ServicesInfo, error) {
	return a.svc.Services(ctx)
}

// Refresh forces a configuration refresh
func (a adaptEstimatePort) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	return a.svc.Refresh(ctx)
}

// Health reports service health
func (a adaptEstimatePort) Health(ctx context.Context) domain.Health {
	return a.svc.Health(ctx)
}

// CacheInfo reports the configuration cache state
func (a adaptEstimatePort) CacheInfo() domain.CacheInfo {
	return a.svc.CacheInfo()
}

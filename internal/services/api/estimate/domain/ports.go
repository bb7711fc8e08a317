package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Estimate(ctx context.Context, in EstimateInput) (Estimate, error)
	Services(ctx context.Context) (ServicesInfo, error)
	Refresh(ctx context.Context) (RefreshResult, error)
	Health(ctx context.Context) Health
	CacheInfo() CacheInfo
}

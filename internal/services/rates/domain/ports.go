package domain

import (
	"context"
	"time"
)

// SourcePort abstracts the remote tabular configuration source. The cache
// never knows how rows are produced; Fetch returns raw key/value rows and
// Parse turns them into a validated-shape snapshot.
type SourcePort interface {
	Fetch(ctx context.Context) ([][]string, error)
	Parse(rows [][]string) (*Config, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Get(ctx context.Context, forceRefresh bool) (*Config, error)
	ClearCache()
	SetTTL(ttl time.Duration) error
	Info() Info
}

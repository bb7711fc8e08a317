// Package module wires the rates configuration cache and its background
// refresher into the application
package module

import (
	"context"

	"padala/internal/modkit"
	"padala/internal/modkit/httpkit"
	"padala/internal/services/rates/domain"
	"padala/internal/services/rates/service"

	"github.com/robfig/cron/v3"
)

// Ports exposed by the rates module
type Ports struct {
	Config domain.ServicePort
}

// Module implements the rates service module
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   service.Service
	cron  *cron.Cron
}

// New constructs a rates module over the given configuration source.
// When a refresh schedule is configured, a cron job forces a refresh so the
// TTL rarely lapses in the request path.
func New(deps modkit.Deps, src domain.SourcePort) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(src, deps.Log, service.Config{TTL: opts.TTL})
	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Config: svc}

	if opts.RefreshSchedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(opts.RefreshSchedule, m.refreshNow); err != nil {
			deps.Log.Warn().
				Str("schedule", opts.RefreshSchedule).
				Err(err).
				Msg("invalid refresh cron expression, scheduled refresh disabled")
		} else {
			m.cron = c
		}
	}
	return m
}

// Preload fetches the configuration once so the first request does not pay
// for a cold fetch. Failure is logged, not fatal; the first request retries.
func (m *Module) Preload(ctx context.Context) {
	cfg, err := m.svc.Get(ctx, false)
	if err != nil {
		m.deps.Log.Warn().Err(err).Msg("configuration preload failed")
		return
	}
	m.deps.Log.Info().Int("couriers", len(cfg.Couriers)).Msg("configuration preloaded")
}

// Start launches the scheduled refresher when one is configured.
func (m *Module) Start() {
	if m.cron != nil {
		m.cron.Start()
	}
}

// Stop halts the scheduled refresher and waits for a running job.
func (m *Module) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
}

func (m *Module) refreshNow() {
	if _, err := m.svc.Get(context.Background(), true); err != nil {
		m.deps.Log.Warn().Err(err).Msg("scheduled configuration refresh failed")
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "rates" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

// Package service implements the shared delivery-rate configuration cache.
//
// One snapshot serves every caller. Refreshes are single-flight: the first
// caller past the TTL performs the fetch with the mutex released, while
// concurrent callers keep reading the previous snapshot. When a refresh
// fails and a previous snapshot exists, the stale snapshot is served and the
// failure is only logged.
package service

import (
	"context"
	"sync"
	"time"

	perr "padala/internal/platform/errors"
	"padala/internal/platform/logger"
	"padala/internal/platform/net/http/bind"
	"padala/internal/services/rates/domain"

	"github.com/google/uuid"
)

// DefaultTTL bounds snapshot freshness when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// Service defines the rates service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the configuration cache over a SourcePort.
type Svc struct {
	src domain.SourcePort
	log logger.Logger

	mu        sync.Mutex
	snapshot  *domain.Config
	fetchedAt time.Time
	ttl       time.Duration
	inFlight  bool
	done      chan struct{} // closed when the in-flight refresh settles
	lastErr   error
}

// Config carries construction options for the cache.
type Config struct {
	TTL time.Duration
}

// New constructs a rates service over the given source.
func New(src domain.SourcePort, log logger.Logger, cfg Config) *Svc {
	if src == nil {
		panic("rates.Service requires a non nil SourcePort")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Svc{src: src, log: log, ttl: ttl}
}

// Get returns the current configuration snapshot, refreshing it when the TTL
// has lapsed or forceRefresh is set. Callers arriving during an in-flight
// refresh receive the previous snapshot without blocking; only when no
// snapshot exists at all do they wait for the refresh to settle.
func (s *Svc) Get(ctx context.Context, forceRefresh bool) (*domain.Config, error) {
	s.mu.Lock()
	if s.snapshot != nil && !forceRefresh && time.Since(s.fetchedAt) < s.ttl {
		snap := s.snapshot
		s.mu.Unlock()
		return snap, nil
	}

	if s.inFlight {
		if s.snapshot != nil {
			snap := s.snapshot
			s.mu.Unlock()
			s.log.Debug().Msg("refresh in flight, serving previous snapshot")
			return snap, nil
		}
		done := s.done
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "configuration fetch interrupted")
		}
		s.mu.Lock()
		snap, lastErr := s.snapshot, s.lastErr
		s.mu.Unlock()
		if snap == nil {
			return nil, lastErr
		}
		return snap, nil
	}

	s.inFlight = true
	s.done = make(chan struct{})
	stale := s.snapshot
	s.mu.Unlock()

	snap, err := s.refresh(ctx)

	s.mu.Lock()
	s.inFlight = false
	if err == nil {
		s.snapshot = snap
		s.fetchedAt = time.Now()
		s.lastErr = nil
	} else if stale == nil {
		s.lastErr = err
	}
	close(s.done)
	s.mu.Unlock()

	if err != nil {
		if stale != nil {
			s.log.Warn().Err(err).Msg("refresh failed, serving stale configuration")
			return stale, nil
		}
		return nil, err
	}
	return snap, nil
}

// refresh runs fetch, parse, and validation without holding the mutex.
func (s *Svc) refresh(ctx context.Context) (*domain.Config, error) {
	attempt := uuid.NewString()
	s.log.Debug().Str("attempt_id", attempt).Msg("fetching delivery configuration")

	rows, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "configuration fetch failed")
	}
	cfg, err := s.src.Parse(rows)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "configuration parse failed")
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("attempt_id", attempt).
		Int("couriers", len(cfg.Couriers)).
		Str("timezone", cfg.Timezone).
		Str("cutoff", cfg.CutoffTime).
		Msg("delivery configuration refreshed")
	return cfg, nil
}

// Validate checks the structural invariants of a snapshot. The struct tags
// carry the rules: required keys, non-empty courier table, HH:MM cutoff,
// recognized timezone, positive day counts.
func Validate(cfg *domain.Config) error {
	if cfg == nil {
		return perr.Configf("configuration is empty")
	}
	if err := bind.Get().Validator.Struct(cfg); err != nil {
		return perr.Wrap(err, perr.ErrorCodeConfig, "configuration failed validation")
	}
	return nil
}

// ClearCache drops the snapshot so the next Get performs a fresh fetch.
func (s *Svc) ClearCache() {
	s.mu.Lock()
	s.snapshot = nil
	s.fetchedAt = time.Time{}
	s.lastErr = nil
	s.mu.Unlock()
	s.log.Info().Msg("configuration cache cleared")
}

// SetTTL replaces the cache TTL. Negative values are rejected.
func (s *Svc) SetTTL(ttl time.Duration) error {
	if ttl < 0 {
		s.log.Warn().Dur("ttl", ttl).Msg("rejected negative cache ttl")
		return perr.InvalidInputf("ttl must not be negative")
	}
	s.mu.Lock()
	s.ttl = ttl
	s.mu.Unlock()
	s.log.Info().Dur("ttl", ttl).Msg("configuration cache ttl updated")
	return nil
}

// Info reports the cache state for introspection.
func (s *Svc) Info() domain.Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := domain.Info{TTLSeconds: s.ttl.Seconds()}
	if s.snapshot == nil {
		return info
	}
	age := time.Since(s.fetchedAt)
	info.Cached = true
	info.AgeSeconds = age.Seconds()
	info.IsStale = age >= s.ttl
	info.CourierCount = len(s.snapshot.Couriers)
	return info
}

// Package service contains the delivery estimation workflows
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"padala/internal/core/holiday"
	"padala/internal/core/schedule"
	perr "padala/internal/platform/errors"
	"padala/internal/platform/logger"
	"padala/internal/services/api/estimate/domain"
	ratesdomain "padala/internal/services/rates/domain"
)

const (
	noteBeforeCutoff = "Order placed before cutoff - same day processing"
	noteAfterCutoff  = "Order placed after cutoff - next day processing"
)

// Service defines the estimate service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the estimate service
type Svc struct {
	rates ratesdomain.ServicePort
	calc  *schedule.Calculator
	log   logger.Logger

	now func(tz string) time.Time // seam
}

// New constructs an estimate service
func New(rates ratesdomain.ServicePort, cal *holiday.Calendar, log logger.Logger) *Svc {
	if rates == nil {
		panic("estimate.Service requires a non nil rates port")
	}
	if cal == nil {
		panic("estimate.Service requires a non nil holiday calendar")
	}
	return &Svc{
		rates: rates,
		calc:  schedule.NewCalculator(cal),
		log:   log,
		now:   schedule.Now,
	}
}

// Estimate computes a delivery estimate for a courier and region
func (s *Svc) Estimate(ctx context.Context, in domain.EstimateInput) (domain.Estimate, error) {
	var zero domain.Estimate

	courier, err := domain.NormalizeCourier(in.Courier)
	if err != nil {
		return zero, err
	}
	region, err := domain.NormalizeRegion(in.Region)
	if err != nil {
		return zero, err
	}

	cfg, err := s.rates.Get(ctx, false)
	if err != nil {
		return zero, err
	}
	if _, ok := cfg.Couriers[courier]; !ok {
		return zero, perr.InvalidCourierf(
			"courier %q is not supported, available: %s", courier, strings.Join(courierNames(cfg), ", "))
	}
	baseDays, ok := schedule.BaseDays(cfg, courier, region)
	if !ok {
		return zero, perr.InvalidRegionf("courier %s does not deliver to %s", courier, region)
	}

	now := s.now(cfg.Timezone)
	before := schedule.BeforeCutoff(now, cfg.CutoffTime)

	start := holiday.Date(now.Year(), now.Month(), now.Day())
	note := noteBeforeCutoff
	if !before {
		start = start.AddDate(0, 0, 1)
		note = noteAfterCutoff
	}

	delivery, ok := s.calc.DeliveryDate(start, baseDays, courier)
	if !ok {
		return zero, perr.Internalf("unable to calculate a delivery date for %s to %s", courier, region)
	}
	calendarDays := int(delivery.Sub(start).Hours() / 24)

	return domain.Estimate{
		Courier:           courier,
		Region:            region,
		OrderTime:         now.Format(time.RFC3339),
		CutoffTime:        cfg.CutoffTime,
		BeforeCutoff:      before,
		ProcessingNote:    note,
		StartDate:         start.Format("2006-01-02"),
		BaseDays:          baseDays,
		EstimatedDelivery: delivery.Format("2006-01-02"),
		CalendarDays:      calendarDays,
		Confidence:        schedule.DeliveryConfidence(baseDays, calendarDays),
	}, nil
}

// Services lists the couriers with their regions and the store settings
func (s *Svc) Services(ctx context.Context) (domain.ServicesInfo, error) {
	cfg, err := s.rates.Get(ctx, false)
	if err != nil {
		return domain.ServicesInfo{}, err
	}
	return domain.ServicesInfo{
		Couriers:       cfg.Couriers,
		CutoffTime:     cfg.CutoffTime,
		Timezone:       cfg.Timezone,
		AllowedRegions: domain.AllowedRegions,
	}, nil
}

// Refresh forces a configuration refresh
func (s *Svc) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	cfg, err := s.rates.Get(ctx, true)
	if err != nil {
		return domain.RefreshResult{}, err
	}
	return domain.RefreshResult{Status: "refreshed", Couriers: len(cfg.Couriers)}, nil
}

// Health reports configuration and time resolution checks
func (s *Svc) Health(ctx context.Context) domain.Health {
	cfgCheck := domain.HealthCheck{Name: "configuration", Status: "ok"}
	tz := "UTC"
	cfg, err := s.rates.Get(ctx, false)
	if err != nil {
		cfgCheck.Status = "fail"
		cfgCheck.Error = err.Error()
	} else {
		tz = cfg.Timezone
	}

	timeCheck := domain.HealthCheck{Name: "time_service", Status: "ok"}
	if s.now(tz).IsZero() {
		timeCheck.Status = "fail"
		timeCheck.Error = "current time resolution failed"
	}

	status := "healthy"
	if cfgCheck.Status != "ok" || timeCheck.Status != "ok" {
		status = "unhealthy"
	}
	return domain.Health{Status: status, Checks: []domain.HealthCheck{cfgCheck, timeCheck}}
}

// CacheInfo reports the configuration cache state
func (s *Svc) CacheInfo() domain.CacheInfo { return s.rates.Info() }

func courierNames(cfg *ratesdomain.Config) []string {
	names := make([]string, 0, len(cfg.Couriers))
	for name := range cfg.Couriers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

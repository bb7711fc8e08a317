// Package schedule computes delivery dates by walking calendar days forward
// from an order-processing start date, skipping non-operating days according
// to a per-courier policy. Day classification is delegated to core/holiday.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"padala/internal/core/holiday"
	"padala/internal/platform/logger"
)

// maxIterations bounds the calendar-day walk so a policy that skips every
// day cannot loop forever.
const maxIterations = 100

// Config is the shared delivery-rate snapshot: which couriers serve which
// regions in how many business days, plus the store cutoff and timezone.
// Snapshots are immutable once built and replaced wholesale on refresh.
type Config struct {
	StoreName   string                    `json:"store_name,omitempty"`
	Timezone    string                    `json:"timezone" validate:"required,timezone"`
	CutoffTime  string                    `json:"cutoff_time" validate:"required,datetime=15:04"`
	WorkingDays []string                  `json:"working_days,omitempty"`
	Couriers    map[string]map[string]int `json:"couriers" validate:"required,min=1,dive,min=1,dive,gt=0"`
}

// SkipPolicy decides whether a calendar day counts toward delivery.
type SkipPolicy int

const (
	// StrictSkip skips Sundays and every holiday. Default for unknown couriers.
	StrictSkip SkipPolicy = iota
	// MajorOnlySkip skips only the major holidays; Sundays still count.
	MajorOnlySkip
)

// courierPolicies keys on the normalized (uppercase) courier identifier.
// Unlisted couriers fall back to StrictSkip.
var courierPolicies = map[string]SkipPolicy{
	"LBC": StrictSkip,
	"J&T": MajorOnlySkip,
}

// PolicyFor returns the skip policy for a courier identifier.
func PolicyFor(courier string) SkipPolicy {
	if p, ok := courierPolicies[strings.ToUpper(strings.TrimSpace(courier))]; ok {
		return p
	}
	return StrictSkip
}

// Confidence labels how tight an estimate is relative to its base-day count.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Calculator performs the delivery-date math against a holiday calendar.
type Calculator struct {
	cal *holiday.Calendar
}

// NewCalculator builds a Calculator over the given calendar.
func NewCalculator(cal *holiday.Calendar) *Calculator {
	return &Calculator{cal: cal}
}

// Now resolves the current instant in the named IANA zone. An unrecognized
// zone falls back to UTC rather than failing; the substitution is logged.
func Now(tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Named("schedule").Warn().
			Str("timezone", tz).
			Err(err).
			Msg("unresolvable timezone, falling back to UTC")
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// BeforeCutoff reports whether now is strictly before today's cutoff instant,
// built in now's zone from the "HH:MM" cutoff string. A malformed cutoff
// resolves to false so a bad config never promises same-day processing.
func BeforeCutoff(now time.Time, cutoff string) bool {
	hour, min, ok := parseClock(cutoff)
	if !ok {
		logger.Named("schedule").Warn().
			Str("cutoff", cutoff).
			Msg("malformed cutoff time, treating as past cutoff")
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	return now.Before(at)
}

// parseClock parses "HH:MM" with hour in [0,24) and minute in [0,60).
func parseClock(s string) (hour, min int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	min, err = strconv.Atoi(m)
	if err != nil || min < 0 || min > 59 {
		return 0, 0, false
	}
	return hour, min, true
}

// BaseDays looks up the base business-day count for a courier/region pair.
// Missing courier, missing region, or a non-positive count all resolve to
// (0, false) rather than an error.
func BaseDays(cfg *Config, courier, region string) (int, bool) {
	if cfg == nil {
		return 0, false
	}
	regions, ok := cfg.Couriers[courier]
	if !ok {
		return 0, false
	}
	days, ok := regions[region]
	if !ok || days <= 0 {
		return 0, false
	}
	return days, true
}

// ShouldSkip reports whether a date does not count toward delivery for the
// given courier's policy.
func (c *Calculator) ShouldSkip(courier string, d time.Time) bool {
	switch PolicyFor(courier) {
	case MajorOnlySkip:
		return c.cal.IsHoliday(d, true)
	default:
		return holiday.IsSunday(d) || c.cal.IsHoliday(d, false)
	}
}

// DeliveryDate walks forward from start one calendar day at a time,
// accumulating non-skipped days until baseDays is reached. Every advance,
// skipped or not, consumes one iteration. Returns false when baseDays is
// non-positive or the iteration bound is exhausted first.
func (c *Calculator) DeliveryDate(start time.Time, baseDays int, courier string) (time.Time, bool) {
	if baseDays <= 0 {
		return time.Time{}, false
	}
	current := start
	counted := 0
	for iter := 0; iter < maxIterations; iter++ {
		current = current.AddDate(0, 0, 1)
		if !c.ShouldSkip(courier, current) {
			counted++
			if counted == baseDays {
				return current, true
			}
		}
	}
	logger.Named("schedule").Warn().
		Str("courier", courier).
		Int("base_days", baseDays).
		Int("iterations", maxIterations).
		Msg("delivery date walk exhausted iteration bound")
	return time.Time{}, false
}

// DeliveryConfidence classifies an estimate by the ratio of elapsed calendar
// days to required business days: <=1.5 high, <=2.0 medium, else low.
func DeliveryConfidence(baseDays, calendarDays int) Confidence {
	ratio := 1.0
	if baseDays > 0 {
		ratio = float64(calendarDays) / float64(baseDays)
	}
	switch {
	case ratio <= 1.5:
		return ConfidenceHigh
	case ratio <= 2.0:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

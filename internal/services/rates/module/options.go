package module

import (
	"time"

	"padala/internal/platform/config"
	"padala/internal/services/rates/service"
)

// Options holds configuration settings for the rates module
type Options struct {
	TTL             time.Duration
	RefreshSchedule string // cron expression, empty disables the refresher
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_RATES_")
	return Options{
		TTL:             rf.MayDuration("TTL", service.DefaultTTL),
		RefreshSchedule: rf.MayString("REFRESH_CRON", ""),
	}
}

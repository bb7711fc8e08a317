// Package domain holds the delivery-rate configuration types and ports
package domain

import "padala/internal/core/schedule"

// Config is the validated delivery-rate snapshot served to callers.
type Config = schedule.Config

// Info describes the cache state for introspection endpoints.
type Info struct {
	Cached       bool    `json:"cached"`
	AgeSeconds   float64 `json:"age_seconds"`
	TTLSeconds   float64 `json:"ttl_seconds"`
	IsStale      bool    `json:"is_stale"`
	CourierCount int     `json:"courier_count"`
}

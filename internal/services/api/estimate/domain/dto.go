// Package domain holds estimate DTOs, validation, and ports
package domain

import (
	"padala/internal/core/schedule"
	ratesdomain "padala/internal/services/rates/domain"
)

// EstimateInput is the estimate request payload
type EstimateInput struct {
	Courier string `json:"courier" validate:"required,max=50"`
	Region  string `json:"region"  validate:"required,max=50"`
}

// Estimate is the computed delivery estimate
// swagger:model
type Estimate struct {
	Courier           string              `json:"courier"            example:"LBC"`
	Region            string              `json:"region"             example:"ncr"`
	OrderTime         string              `json:"order_time"         example:"2025-12-24T09:30:00+08:00"`
	CutoffTime        string              `json:"cutoff_time"        example:"14:00"`
	BeforeCutoff      bool                `json:"before_cutoff"      example:"true"`
	ProcessingNote    string              `json:"processing_note"    example:"Order placed before cutoff - same day processing"`
	StartDate         string              `json:"start_date"         example:"2025-12-24"`
	BaseDays          int                 `json:"base_days"          example:"3"`
	EstimatedDelivery string              `json:"estimated_delivery" example:"2025-12-29"`
	CalendarDays      int                 `json:"calendar_days"      example:"5"`
	Confidence        schedule.Confidence `json:"confidence"         example:"high"`
}

// ServicesInfo lists the couriers and the store-wide settings
// swagger:model
type ServicesInfo struct {
	Couriers       map[string]map[string]int `json:"couriers"`
	CutoffTime     string                    `json:"cutoff_time"     example:"14:00"`
	Timezone       string                    `json:"timezone"        example:"Asia/Manila"`
	AllowedRegions []string                  `json:"allowed_regions"`
}

// RefreshResult reports a forced configuration refresh
type RefreshResult struct {
	Status   string `json:"status"   example:"refreshed"`
	Couriers int    `json:"couriers" example:"4"`
}

// HealthCheck is one named dependency check
type HealthCheck struct {
	Name   string `json:"name"   example:"configuration"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty"`
}

// Health summarizes service health
type Health struct {
	Status string        `json:"status" example:"healthy"` // healthy unhealthy
	Checks []HealthCheck `json:"checks"`
}

// CacheInfo re-exports the rates cache introspection payload
type CacheInfo = ratesdomain.Info

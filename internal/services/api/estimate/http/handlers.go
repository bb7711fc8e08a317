// Package http provides http transport for delivery estimates
package http

import (
	stdhttp "net/http"

	"padala/internal/modkit/httpkit"
	"padala/internal/services/api/estimate/domain"
	svc "padala/internal/services/api/estimate/service"
)

// Register mounts estimate endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// compute a delivery estimate
	httpkit.PostJSON[domain.EstimateInput](r, "/", h.estimate)

	// available couriers and store settings
	httpkit.Get(r, "/services", h.services)

	// force a configuration refresh
	httpkit.Post(r, "/refresh", h.refresh)

	// configuration cache introspection
	httpkit.Get(r, "/cache", h.cache)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /estimate Estimate estimateCreate
// @Summary Estimate a delivery date
// @Tags Estimate
// @Accept json
// @Produce json
// @Param payload body domain.EstimateInput true "Courier and region"
// @Success 200 {object} domain.Estimate "ok"
// @Failure 422 {object} httpkit.Envelope "unsupported courier or region"
// @Failure 503 {object} httpkit.Envelope "configuration unavailable"
// @Router /estimate [post]
func (h *handlers) estimate(r *stdhttp.Request, in domain.EstimateInput) (any, error) {
	return h.svc.Estimate(r.Context(), in)
}

// swagger:route GET /estimate/services Estimate estimateServices
// @Summary List couriers with regions, cutoff, and timezone
// @Tags Estimate
// @Produce json
// @Success 200 {object} domain.ServicesInfo "ok"
// @Router /estimate/services [get]
func (h *handlers) services(r *stdhttp.Request) (any, error) {
	return h.svc.Services(r.Context())
}

// swagger:route POST /estimate/refresh Estimate estimateRefresh
// @Summary Force a configuration refresh
// @Tags Estimate
// @Produce json
// @Success 200 {object} domain.RefreshResult "ok"
// @Router /estimate/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	return h.svc.Refresh(r.Context())
}

// swagger:route GET /estimate/cache Estimate estimateCache
// @Summary Configuration cache state
// @Tags Estimate
// @Produce json
// @Success 200 {object} domain.CacheInfo "ok"
// @Router /estimate/cache [get]
func (h *handlers) cache(_ *stdhttp.Request) (any, error) {
	return h.svc.CacheInfo(), nil
}

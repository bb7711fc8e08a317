// Package api provides the HTTP API for the application
package api

import (
	"padala/internal/core/holiday"
	"padala/internal/platform/config"
	"padala/internal/platform/logger"
	phttp "padala/internal/platform/net/http"

	"padala/internal/modkit"
	"padala/internal/modkit/httpkit"
	"padala/internal/modkit/module"
	"padala/internal/modkit/swaggerkit"

	estdomain "padala/internal/services/api/estimate/domain"
	estimatemod "padala/internal/services/api/estimate/module"
	metamod "padala/internal/services/api/meta/module"

	// Rates module owns the configuration cache port
	ratesmod "padala/internal/services/rates/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Rates          *ratesmod.Module
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: *opt.Logger,
	}

	// Extract the configuration cache port from the rates module
	ratesPort := module.MustPortsOf[ratesmod.Ports](opt.Rates).Config

	// One holiday calendar shared by every estimate
	cal := holiday.NewCalendar()

	estimate := estimatemod.New(deps, ratesPort, cal)
	health := module.MustPortsOf[estdomain.ServicePort](estimate)

	mods := []module.Module{
		metamod.New(deps, health),
		estimate,
		opt.Rates, // include rates so its port is registered
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

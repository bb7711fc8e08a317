// @title         Padala API
// @version       0.1.0
// @description   Delivery date estimation for Philippine couriers

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"padala/internal/adapters/sheets"
	"padala/internal/modkit"
	"padala/internal/platform/config"
	"padala/internal/platform/logger"
	phttp "padala/internal/platform/net/http"

	"padala/internal/services/api"
	ratesmod "padala/internal/services/rates/module"
)

func main() {
	// local development overrides, ignored when absent
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	shCfg := root.Prefix("SERVICE_SHEETS_") // sheet id, api key, range, timeout
	// bring up logging early
	l := logger.Get()

	// the configuration source and its cache
	src := sheets.NewClient(sheets.Options{
		SpreadsheetID: shCfg.MustString("SPREADSHEET_ID"),
		APIKey:        shCfg.MustString("API_KEY"),
		Range:         shCfg.MayString("RANGE", ""),
		Timeout:       shCfg.MayDuration("TIMEOUT", 10*time.Second),
	}, *l)

	deps := modkit.Deps{Cfg: root, Log: *l}
	rates := ratesmod.New(deps, src)

	// warm the cache and start the scheduled refresher
	rates.Preload(context.Background())
	rates.Start()
	defer rates.Stop()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Rates:          rates,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

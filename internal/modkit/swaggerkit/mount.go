// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "padala/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount attaches the Swagger UI and its JSON spec when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}

	// bare /api/docs redirects into the UI
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}

// Package http hosts server adapters. Profiler mounts pprof endpoints when enabled
package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes pprof endpoints under prefix (typically "/debug")
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}

	// the profiler mux expects to be rooted, so strip our prefix first
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) }

	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}

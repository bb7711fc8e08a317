// Package middleware holds chi adapters and the in-house request middlewares
package middleware

import (
	"net/http"
	"time"

	"padala/internal/platform/logger"
)

// RequestLogOptions configures the zerolog access log
type RequestLogOptions struct {
	// Requests running at least Slow log at warn level; 0 disables the check
	Slow time.Duration
}

// tapWriter records the status and byte count a handler wrote
type tapWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (tw *tapWriter) WriteHeader(code int) {
	tw.status = code
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *tapWriter) Write(b []byte) (int, error) {
	n, err := tw.ResponseWriter.Write(b)
	tw.bytes += n
	return n, err
}

// RequestLog emits one line per request with method, path, status,
// elapsed time, and bytes written, using the request-scoped logger
func RequestLog(opt RequestLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &tapWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(tw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", tw.status).
				Int("bytes", tw.bytes).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}

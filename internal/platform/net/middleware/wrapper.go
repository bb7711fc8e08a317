// Package middleware adapts chi middleware behind a chi-free surface
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "padala/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http wrapping shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() Middleware { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Forwarded-For style headers
func RealIP() Middleware { return chimw.RealIP }

// Recover turns panics into a 500; pair with your own error mapping if needed
func Recover() Middleware { return chimw.Recoverer }

// Logger is chi's text request logger
func Logger() Middleware { return chimw.Logger }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache disables client and proxy caching via response headers
func NoCache() Middleware { return chimw.NoCache }

// Compress wraps chi's compressor; level is usually flate.DefaultCompression
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return func(next http.Handler) http.Handler { return c.Handler(next) }
}

// RedirectSlashes redirects /foo/ to /foo
func RedirectSlashes() Middleware { return chimw.RedirectSlashes }

// StripSlashes drops a trailing slash from the request path
func StripSlashes() Middleware { return chimw.StripSlashes }

// AllowContentType whitelists request content types
func AllowContentType(ct ...string) Middleware { return chimw.AllowContentType(ct...) }

// SetHeader sets a header on every response
func SetHeader(name, value string) Middleware { return chimw.SetHeader(name, value) }

// ContentCharset restricts the request Content-Type charset
func ContentCharset(charsets ...string) Middleware { return chimw.ContentCharset(charsets...) }

// Throttle caps concurrent in-flight requests
func Throttle(limit int) Middleware { return chimw.Throttle(limit) }

// ThrottleBacklog caps concurrency with a backlog and wait timeout
func ThrottleBacklog(limit, backlog int, ttl time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, ttl)
}

// Heartbeat answers GET path with 200 OK for load balancer checks
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors, filling unset fields with workable defaults
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods,
			[]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders,
			[]string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults bundles the middleware most handlers want
func Defaults() []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		Recover(),
		Timeout(60 * time.Second),
		Compress(flate.DefaultCompression),
		NoCache(),
	}
}

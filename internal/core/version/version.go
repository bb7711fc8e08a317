// Package version identifies the running build.
package version

// ServiceName is the published service identifier.
const ServiceName = "padala-api"

// Overridden at build time, for example:
//
//	go build -ldflags "-X 'padala/internal/core/version.version=v0.3.0' \
//	  -X 'padala/internal/core/version.commit=abcd123' \
//	  -X 'padala/internal/core/version.date=2026-08-31'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo describes the binary serving requests.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the stamped build details.
func Info() BuildInfo {
	return BuildInfo{Service: ServiceName, Version: version, Commit: commit, Date: date}
}

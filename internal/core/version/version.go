// Package version reports build metadata stamped in with -ldflags
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service.
// Set via -ldflags "-X 'wordbound/internal/core/version.version=v0.1.0'
// -X 'wordbound/internal/core/version.commit=abcd' -X 'wordbound/internal/core/version.date=2026-10-01'"
func Info(service string) BuildInfo {
	if service == "" {
		service = "wordbound"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

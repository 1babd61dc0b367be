package modkit

import (
	"wordbound/internal/core/delimiter"
	"wordbound/internal/platform/config"
	"wordbound/internal/platform/logger"
	"wordbound/internal/platform/metrics"
)

// Deps holds the shared dependencies handed to every module
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Presets *delimiter.Registry
	// Active is the server-wide classifier; it may be hot reloaded from a pack file
	Active  *delimiter.Live
	Metrics *metrics.Collector
}

// WithDefaults fills nil fields with the builtin registry, its default preset and the root logger.
// Metrics stays nil when unset, which disables counting
func (d Deps) WithDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Get()
	}
	if d.Presets == nil {
		d.Presets = delimiter.Builtin()
	}
	if d.Active == nil {
		d.Active = delimiter.NewLive(delimiter.Default())
	}
	return d
}

// Package api provides the HTTP API for the application
package api

import (
	"time"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/platform/config"
	"wordbound/internal/platform/logger"
	"wordbound/internal/platform/metrics"
	phttp "wordbound/internal/platform/net/http"

	"wordbound/internal/modkit"
	"wordbound/internal/modkit/httpkit"
	"wordbound/internal/modkit/module"
	"wordbound/internal/modkit/swaggerkit"

	metamod "wordbound/internal/services/api/meta/module"
	wordsdomain "wordbound/internal/services/api/words/domain"
	wordsmod "wordbound/internal/services/api/words/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Logger  *logger.Logger
	Presets *delimiter.Registry
	Active  *delimiter.Live
	// Metrics enables request metrics and /metrics when non nil
	Metrics *metrics.Collector

	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string
	Timeout        time.Duration
	SlowRequest    time.Duration
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Presets: opt.Presets,
		Active:  opt.Active,
		Metrics: opt.Metrics,
	}.WithDefaults()

	// words owns the preset port, meta reports it
	words := wordsmod.New(deps)
	presets := module.MustPortsOf[wordsdomain.PresetPort](words)

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(presets)),
		words,
	}

	stack := httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Timeout:     opt.Timeout,
		SlowRequest: opt.SlowRequest,
	}
	if deps.Metrics != nil {
		stack.Extra = append(stack.Extra, deps.Metrics.Middleware())
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().
		Str("preset", deps.Active.Name()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Bool("metrics", deps.Metrics != nil).
		Msg("api mounted")
}

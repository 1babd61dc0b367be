// @title         Wordbound API
// @version       0.1.0
// @description   Word boundary lookups around a text position

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/platform/config"
	"wordbound/internal/platform/logger"
	"wordbound/internal/platform/metrics"
	phttp "wordbound/internal/platform/net/http"

	"wordbound/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "wordbound-api"
	}
	logger.Init(opts)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := delimiter.Builtin()
	names := reg.Names()
	start, err := reg.Get(apiCfg.MayEnum("PRESET", delimiter.DefaultPreset, names...))
	if err != nil {
		l.Panic().Err(err).Msg("active preset")
	}
	active := delimiter.NewLive(start)

	var col *metrics.Collector
	if apiCfg.MayBool("METRICS", true) {
		col = metrics.New("wordbound")
	}

	// an optional pack file replaces the preset and may be hot reloaded
	if pack := apiCfg.MayFile("PACK_FILE"); pack != "" {
		if err := active.Reload(pack, reg); err != nil {
			l.Panic().Err(err).Str("pack", pack).Msg("pack file")
		}
		l.Info().Str("pack", pack).Str("preset", active.Name()).Msg("pack loaded")

		if apiCfg.MayBool("WATCH_PACK", false) {
			err := delimiter.Watch(ctx, pack, active, reg, delimiter.WatchOptions{
				Debounce: apiCfg.MayDuration("WATCH_DEBOUNCE", delimiter.DefaultDebounce),
				OnReload: col.Reload,
			})
			if err != nil {
				l.Panic().Err(err).Str("pack", pack).Msg("pack watcher")
			}
		}
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Presets:        reg,
			Active:         active,
			Metrics:        col,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			Timeout:        apiCfg.MayDuration("TIMEOUT", 30*time.Second),
			SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		},
	)

	// run until SIGINT or SIGTERM, then drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}

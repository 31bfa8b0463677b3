package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/application/config"
)

type Router struct {
	httpRouter *chi.Mux
	log        *log.Logger
}

// Init wires the routers and runs the three servers (app, metrics, pprof)
// until SIGINT/SIGTERM, then shuts them down gracefully.
func Init(ctx context.Context, log *log.Logger, appCfg *config.AppConfig) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := NewHTTPServerConfig()
	if err != nil {
		log.Fatalf(`failed to load http config: %v`, err)
	}

	router := &Router{
		httpRouter: chi.NewRouter(),
		log:        log,
	}
	initRoutes(ctx, router, appCfg)

	metricsServer := NewMetricsServer(appCfg.MetricsHost, cfg.Timeouts.ShutdownWait, log)
	go metricsServer.Start()

	httpServer := NewHttpServer(ctx, cfg, router.httpRouter, log)
	go httpServer.Start()

	// pprof rides on http.DefaultServeMux
	pprofServer := NewPprofServer(":6060", cfg.Timeouts.ShutdownWait, log)
	go pprofServer.Start()

	<-sigs
	if err := httpServer.Stop(); err != nil {
		log.Fatal(err)
	}
	if err := pprofServer.Stop(); err != nil {
		log.Fatal(err)
	}
	if err := metricsServer.Stop(); err != nil {
		log.Fatal(err)
	}
}

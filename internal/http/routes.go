package http

import (
	"context"

	"seo_url_checker/internal/adaptors"
	"seo_url_checker/internal/application/config"
	"seo_url_checker/internal/http/handlers"
	"seo_url_checker/internal/http/middleware"
	"seo_url_checker/internal/service"
)

func initRoutes(_ context.Context, r *Router, cfg *config.AppConfig) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))

	thresholds := service.Thresholds{
		TitleMin:       cfg.TitleMin,
		TitleMax:       cfg.TitleMax,
		DescriptionMin: cfg.DescriptionMin,
		DescriptionMax: cfg.DescriptionMax,
		CanonicalExact: cfg.CanonicalExact,
	}
	analyzer := service.NewAnalyzer(r.log, adaptors.NewWebClient(cfg.FetchTimeout, r.log), thresholds)
	runner := service.NewBulkRunner(r.log, analyzer, cfg.MaxConcurrency)

	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/analyze", handlers.NewSeoAnalysisHandler(analyzer, r.log).Handle)
	r.httpRouter.Post("/analyze/bulk", handlers.NewBulkAnalysisHandler(runner, r.log).Handle)
}

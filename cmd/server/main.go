package main

import (
	"context"
	_ "net/http/pprof"
	"time"

	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/application/config"
	"seo_url_checker/internal/http"
)

func main() {
	logInstance := log.New()
	cfg, err := config.NewAppConfig()
	if err != nil {
		logInstance.WithError(err).Fatal(`failed to load config`)
		return
	}

	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logInstance.WithError(err).Fatal(`failed to parse log level`)
		return
	}

	logInstance.SetFormatter(&log.JSONFormatter{
		TimestampFormat:   time.RFC3339,
		DisableHTMLEscape: true,
		DisableTimestamp:  false,
	})

	logInstance.SetLevel(logLevel)

	ctx := context.WithoutCancel(context.Background())

	http.Init(ctx, logInstance, cfg)
}

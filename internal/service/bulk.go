package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/domain/models"
	"seo_url_checker/internal/pkg/worker_pool"
)

// BulkRunner applies the analyzer across an ordered URL list. Analyses run
// concurrently but results are collected by index, so report order always
// matches input order. URLs are not deduplicated.
type BulkRunner struct {
	log         *log.Logger
	analyzer    *Analyzer
	concurrency int
}

func NewBulkRunner(log *log.Logger, analyzer *Analyzer, concurrency int) *BulkRunner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BulkRunner{
		log:         log,
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// Run analyzes every URL and aggregates the reports. Each URL is fully
// isolated: one unreachable or malformed entry degrades its own report to
// fail without affecting the rest of the batch. An empty input is valid and
// yields an empty result.
func (r *BulkRunner) Run(ctx context.Context, urls []string) *models.BulkResult {
	start := time.Now()
	reports := make([]models.Report, len(urls))

	worker_pool.ForEach(ctx, len(urls), r.concurrency, func(ctx context.Context, i int) {
		reports[i] = *r.analyzer.Analyze(ctx, urls[i])
	})

	summary := models.Summary{Total: len(reports)}
	for i := range reports {
		switch reports[i].Overall {
		case models.SeverityOK:
			summary.OK++
		case models.SeverityWarn:
			summary.Warn++
		default:
			summary.Fail++
		}
	}

	r.log.WithFields(log.Fields{
		`total`:    summary.Total,
		`ok`:       summary.OK,
		`warn`:     summary.Warn,
		`fail`:     summary.Fail,
		`duration`: time.Since(start).String(),
	}).Info(`bulk analysis finished`)

	return &models.BulkResult{Reports: reports, Summary: summary}
}

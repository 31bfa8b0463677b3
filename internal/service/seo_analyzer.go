package service

import (
	"context"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/domain/adaptors"
	"seo_url_checker/internal/domain/models"
	"seo_url_checker/internal/pkg/metrics"
)

// Analyzer composes fetch, extract, and classify into a single analysis. It
// holds no per-call state, so one Analyzer can serve concurrent analyses.
type Analyzer struct {
	log        *log.Logger
	webClient  adaptors.WebClient
	extractor  Extractor
	classifier *Classifier
}

func NewAnalyzer(log *log.Logger, webClient adaptors.WebClient, thresholds Thresholds) *Analyzer {
	return &Analyzer{
		log:        log,
		webClient:  webClient,
		extractor:  NewSignalExtractor(),
		classifier: NewClassifier(thresholds),
	}
}

// Analyze produces a report for the URL. It is total: every failure mode,
// malformed input included, is captured as findings inside the report and
// never escapes as an error.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) *models.Report {
	start := time.Now()
	report := a.analyze(ctx, rawURL)

	metrics.AnalysesTotal.WithLabelValues(string(report.Overall)).Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	for _, f := range report.Findings {
		metrics.FindingsTotal.WithLabelValues(f.Check, string(f.Severity)).Inc()
	}

	a.log.WithFields(log.Fields{
		`url`:      rawURL,
		`overall`:  report.Overall,
		`duration`: time.Since(start).String(),
	}).Debug(`url analyzed`)

	return report
}

func (a *Analyzer) analyze(ctx context.Context, rawURL string) *models.Report {
	fetched, err := a.webClient.Fetch(ctx, rawURL)
	if err != nil {
		a.log.WithError(err).WithField(`url`, rawURL).Debug(`fetch failed`)
		return &models.Report{
			RequestedURL: rawURL,
			Findings: []models.Finding{{
				Check:    models.CheckFetch,
				Severity: models.SeverityFail,
				Message:  err.Error(),
			}},
			Overall: models.SeverityFail,
		}
	}

	var base *url.URL
	if parsed, perr := url.Parse(fetched.FinalURL); perr == nil {
		base = parsed
	}

	signals := a.extractor.Extract(fetched.Body, base)
	findings := a.classifier.Classify(rawURL, fetched.FinalURL, fetched.StatusCode, signals)

	status := fetched.StatusCode
	return &models.Report{
		RequestedURL: rawURL,
		FetchStatus:  &status,
		Findings:     findings,
		Overall:      models.Worst(findings),
	}
}

package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// --- Inbound (server) metrics ---
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "code"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	HTTPRequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_errors_total",
			Help: "Total number of HTTP requests resulting in client or server errors.",
		},
		[]string{"method", "route", "code"},
	)

	// --- Outbound (fetcher) metrics ---
	HTTPClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_requests_total",
			Help: "Total number of outbound page fetches.",
		},
		[]string{"method", "code"},
	)
	HTTPClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Latency of outbound page fetches.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)

	// --- Analysis metrics ---
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_analyses_total",
			Help: "Total number of URL analyses by overall verdict.",
		},
		[]string{"overall"},
	)
	FindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_findings_total",
			Help: "Total number of findings by check and severity.",
		},
		[]string{"check", "severity"},
	)
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seo_analysis_duration_seconds",
			Help:    "End-to-end duration of a single URL analysis.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// --- Runtime metrics ---
	CPUCount = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_cpu_count",
			Help: "Number of CPU cores available.",
		},
		func() float64 { return float64(runtime.NumCPU()) },
	)
)

// MetricsRegister builds the registry served by the metrics server.
func MetricsRegister() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestErrorsTotal,
		HTTPClientRequestsTotal,
		HTTPClientRequestDuration,
		AnalysesTotal,
		FindingsTotal,
		AnalysisDuration,
		CPUCount,
	)

	return reg
}

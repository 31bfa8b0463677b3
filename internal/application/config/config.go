package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the service and pipeline need. Thresholds and
// timeouts are threaded into the pipeline as values; nothing here is mutated
// after Load.
type AppConfig struct {
	LogLevel    string
	DebugMode   bool
	MetricsHost string

	FetchTimeout   time.Duration
	MaxConcurrency int

	TitleMin       int
	TitleMax       int
	DescriptionMin int
	DescriptionMax int
	CanonicalExact bool
}

// NewAppConfig loads configuration from config.env (when present) and the
// environment.
func NewAppConfig() (*AppConfig, error) {
	if err := godotenv.Load(`config.env`); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := AppConfig{
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		DebugMode:      os.Getenv("APP_ENABLE_DEBUG") == "true",
		MetricsHost:    getEnv("HTTP_APP_METRICS_HOST", ":9095"),
		MaxConcurrency: getEnvAsInt("BULK_MAX_CONCURRENCY", 8),
		TitleMin:       getEnvAsInt("SEO_TITLE_MIN", 30),
		TitleMax:       getEnvAsInt("SEO_TITLE_MAX", 60),
		DescriptionMin: getEnvAsInt("SEO_DESCRIPTION_MIN", 70),
		DescriptionMax: getEnvAsInt("SEO_DESCRIPTION_MAX", 160),
		CanonicalExact: os.Getenv("SEO_CANONICAL_EXACT") == "true",
	}

	timeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT_DURATION", "10s"))
	if err != nil {
		return nil, fmt.Errorf(`FETCH_TIMEOUT_DURATION: invalid duration format: %w`, err)
	}
	cfg.FetchTimeout = timeout

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *AppConfig) error {
	var errMsg []string
	if cfg.LogLevel == "" {
		errMsg = append(errMsg, `log level is empty`)
	}

	if cfg.FetchTimeout <= 0 {
		errMsg = append(errMsg, `fetch timeout must be positive`)
	}

	if cfg.MaxConcurrency < 1 || cfg.MaxConcurrency > 100 {
		errMsg = append(errMsg, `bulk max concurrency must be 1-100`)
	}

	if cfg.TitleMin > cfg.TitleMax {
		errMsg = append(errMsg, `title min exceeds title max`)
	}

	if cfg.DescriptionMin > cfg.DescriptionMax {
		errMsg = append(errMsg, `description min exceeds description max`)
	}

	if len(errMsg) != 0 {
		return fmt.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

package http

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServerConfig struct {
	Host     string
	Timeouts struct {
		Read         time.Duration
		ReadHeader   time.Duration
		Write        time.Duration
		Idle         time.Duration
		ShutdownWait time.Duration
	}
}

func NewHTTPServerConfig() (*HTTPServerConfig, error) {
	if err := godotenv.Load(`config.env`); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var errors []string
	cfg := &HTTPServerConfig{}

	cfg.Host = os.Getenv("HTTP_SERVER_HOST")
	if cfg.Host == "" {
		cfg.Host = ":8080"
	}

	parseDuration := func(envVar string, fallback time.Duration) (time.Duration, error) {
		value := os.Getenv(envVar)
		if value == "" {
			return fallback, nil
		}
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration format: %w", envVar, err)
		}
		return duration, nil
	}

	if dur, err := parseDuration("HTTP_APP_READ_TIMEOUT_DURATION", 15*time.Second); err != nil {
		errors = append(errors, err.Error())
	} else {
		cfg.Timeouts.Read = dur
	}

	if dur, err := parseDuration("HTTP_APP_READ_HEADER_TIMEOUT_DURATION", 5*time.Second); err != nil {
		errors = append(errors, err.Error())
	} else {
		cfg.Timeouts.ReadHeader = dur
	}

	// Write timeout bounds a whole bulk run; it must exceed the per-fetch
	// timeout by a comfortable margin.
	if dur, err := parseDuration("HTTP_APP_WRITE_TIMEOUT_DURATION", 120*time.Second); err != nil {
		errors = append(errors, err.Error())
	} else {
		cfg.Timeouts.Write = dur
	}

	if dur, err := parseDuration("HTTP_APP_IDLE_TIMEOUT_DURATION", 60*time.Second); err != nil {
		errors = append(errors, err.Error())
	} else {
		cfg.Timeouts.Idle = dur
	}

	if dur, err := parseDuration("HTTP_APP_SHUTDOWN_TIMEOUT_DURATION", 10*time.Second); err != nil {
		errors = append(errors, err.Error())
	} else {
		cfg.Timeouts.ShutdownWait = dur
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return cfg, nil
}

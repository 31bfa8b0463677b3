package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DebugMode)
	assert.Equal(t, ":9095", cfg.MetricsHost)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, 30, cfg.TitleMin)
	assert.Equal(t, 60, cfg.TitleMax)
	assert.Equal(t, 70, cfg.DescriptionMin)
	assert.Equal(t, 160, cfg.DescriptionMax)
	assert.False(t, cfg.CanonicalExact)
}

func TestNewAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("FETCH_TIMEOUT_DURATION", "3s")
	t.Setenv("BULK_MAX_CONCURRENCY", "16")
	t.Setenv("SEO_TITLE_MIN", "10")
	t.Setenv("SEO_TITLE_MAX", "40")
	t.Setenv("SEO_CANONICAL_EXACT", "true")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 16, cfg.MaxConcurrency)
	assert.Equal(t, 10, cfg.TitleMin)
	assert.Equal(t, 40, cfg.TitleMax)
	assert.True(t, cfg.CanonicalExact)
}

func TestNewAppConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_DURATION", "not-a-duration")

	_, err := NewAppConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT_DURATION")
}

func TestNewAppConfig_NonNumericIntFallsBack(t *testing.T) {
	t.Setenv("BULK_MAX_CONCURRENCY", "lots")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxConcurrency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{
			name:    "concurrency out of range",
			mutate:  func(c *AppConfig) { c.MaxConcurrency = 101 },
			wantErr: "concurrency",
		},
		{
			name:    "title bounds inverted",
			mutate:  func(c *AppConfig) { c.TitleMin, c.TitleMax = 60, 30 },
			wantErr: "title min exceeds title max",
		},
		{
			name:    "description bounds inverted",
			mutate:  func(c *AppConfig) { c.DescriptionMin, c.DescriptionMax = 200, 100 },
			wantErr: "description min exceeds description max",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *AppConfig) { c.FetchTimeout = 0 },
			wantErr: "fetch timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AppConfig{
				LogLevel:       "info",
				FetchTimeout:   10 * time.Second,
				MaxConcurrency: 8,
				TitleMin:       30,
				TitleMax:       60,
				DescriptionMin: 70,
				DescriptionMax: 160,
			}
			tt.mutate(&cfg)
			err := validate(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

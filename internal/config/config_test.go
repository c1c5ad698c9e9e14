package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.Server.VerboseErrors)
	assert.Equal(t, "https://pency.app/disglutenfree", cfg.Scraper.TargetURL)
	assert.True(t, cfg.Scraper.Headless)
	assert.Equal(t, 90*time.Second, cfg.Scraper.NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Scraper.OnboardingTimeout)
	assert.Equal(t, 15*time.Second, cfg.Scraper.ClickTimeout)
	assert.Equal(t, 20, cfg.Scraper.MaxScrollIterations)
	assert.Equal(t, 2*time.Second, cfg.Scraper.ScrollWait)
	assert.Equal(t, time.Second, cfg.Scraper.ScrollWaitJitter)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("VERBOSE_ERRORS", "true")
	t.Setenv("SCRAPER_TARGET_URL", "https://pency.app/another-shop")
	t.Setenv("SCRAPER_HEADLESS", "false")
	t.Setenv("SCRAPER_SCROLL_ITERATIONS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.VerboseErrors)
	assert.Equal(t, "https://pency.app/another-shop", cfg.Scraper.TargetURL)
	assert.False(t, cfg.Scraper.Headless)
	assert.Equal(t, 5, cfg.Scraper.MaxScrollIterations)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "Invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "Missing target URL",
			mutate:  func(c *Config) { c.Scraper.TargetURL = "" },
			wantErr: "target URL is required",
		},
		{
			name:    "Target URL without host",
			mutate:  func(c *Config) { c.Scraper.TargetURL = "/just/a/path" },
			wantErr: "must include a host",
		},
		{
			name:    "Zero scroll iterations",
			mutate:  func(c *Config) { c.Scraper.MaxScrollIterations = 0 },
			wantErr: "at least 1 scroll iteration",
		},
		{
			name:    "Negative jitter",
			mutate:  func(c *Config) { c.Scraper.ScrollWaitJitter = -time.Second },
			wantErr: "jitter cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

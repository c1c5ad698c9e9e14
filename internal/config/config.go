package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
}

type ServerConfig struct {
	Port int
	// VerboseErrors gates whether pipeline error detail is included in HTTP
	// error payloads.
	VerboseErrors bool
}

type ScraperConfig struct {
	TargetURL           string
	Headless            bool
	NavigationTimeout   time.Duration
	OnboardingTimeout   time.Duration
	ClickTimeout        time.Duration
	MaxScrollIterations int
	ScrollWait          time.Duration
	ScrollWaitJitter    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnvInt("PORT", 3000),
			VerboseErrors: getEnvBool("VERBOSE_ERRORS", false),
		},
		Scraper: ScraperConfig{
			TargetURL:           getEnv("SCRAPER_TARGET_URL", "https://pency.app/disglutenfree"),
			Headless:            getEnvBool("SCRAPER_HEADLESS", true),
			NavigationTimeout:   time.Duration(getEnvInt("SCRAPER_NAV_TIMEOUT_SECONDS", 90)) * time.Second,
			OnboardingTimeout:   time.Duration(getEnvInt("SCRAPER_ONBOARDING_TIMEOUT_SECONDS", 10)) * time.Second,
			ClickTimeout:        time.Duration(getEnvInt("SCRAPER_CLICK_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxScrollIterations: getEnvInt("SCRAPER_SCROLL_ITERATIONS", 20),
			ScrollWait:          time.Duration(getEnvInt("SCRAPER_SCROLL_WAIT_MS", 2000)) * time.Millisecond,
			ScrollWaitJitter:    time.Duration(getEnvInt("SCRAPER_SCROLL_JITTER_MS", 1000)) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Scraper.TargetURL == "" {
		return fmt.Errorf("target URL is required")
	}
	parsed, err := url.Parse(c.Scraper.TargetURL)
	if err != nil {
		return fmt.Errorf("invalid target URL: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("target URL must include a host")
	}

	if c.Scraper.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be positive")
	}
	if c.Scraper.ClickTimeout <= 0 {
		return fmt.Errorf("click timeout must be positive")
	}
	if c.Scraper.MaxScrollIterations < 1 {
		return fmt.Errorf("at least 1 scroll iteration is required")
	}
	if c.Scraper.ScrollWait <= 0 {
		return fmt.Errorf("scroll wait must be positive")
	}
	if c.Scraper.ScrollWaitJitter < 0 {
		return fmt.Errorf("scroll wait jitter cannot be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

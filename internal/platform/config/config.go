package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	errInvalidPort            = errors.New("config: invalid PORT number")
	errConcurrencyOutOfRange  = errors.New("config: LINK_CHECK_CONCURRENCY must be 1-100")
	errProbeTimeoutOutOfRange = errors.New("config: LINK_PROBE_TIMEOUT_SECONDS must be 1-60")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port                 string
	LogLevel             string
	LinkCheckConcurrency int
	ProbeTimeout         time.Duration
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to sensible defaults.
func Load() (Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LinkCheckConcurrency: getEnvAsInt("LINK_CHECK_CONCURRENCY", 10),
		ProbeTimeout:         time.Duration(getEnvAsInt("LINK_PROBE_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.LinkCheckConcurrency < 1 || c.LinkCheckConcurrency > 100 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.LinkCheckConcurrency)
	}

	if c.ProbeTimeout < time.Second || c.ProbeTimeout > 60*time.Second {
		return fmt.Errorf("%w: got %s", errProbeTimeoutOutOfRange, c.ProbeTimeout)
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

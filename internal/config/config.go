// Package config provides service configuration from environment variables
// and transform presets from YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Upload limits
	MaxBodyBytes int64

	// Extraction defaults
	DefaultParents []string

	// Transform presets
	PresetPath string

	// Document store
	DocumentTTL     time.Duration
	CleanupInterval time.Duration

	// Batch processing
	BatchWorkers int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		APIKey: os.Getenv("XMLGEST_API_KEY"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 10485760), // 10MB

		DefaultParents: splitList(envOr("PARENT_ELEMENTS", "header,values")),

		PresetPath: os.Getenv("PRESET_PATH"),

		DocumentTTL:     envDuration("DOCUMENT_TTL", 1*time.Hour),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", 5*time.Minute),

		BatchWorkers: envInt("BATCH_WORKERS", 4),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10485760
	}
	if len(cfg.DefaultParents) == 0 {
		cfg.DefaultParents = []string{"header", "values"}
	}
	if cfg.DocumentTTL <= 0 {
		cfg.DocumentTTL = 1 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("XMLGEST_API_KEY is required")
	}
	return nil
}

func splitList(s string) []string {
	parts := lo.FilterMap(strings.Split(s, ","), func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
	return lo.Uniq(parts)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

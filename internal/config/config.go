// Package config loads application configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPollInterval = 30 * time.Second
	minPollInterval     = 5 * time.Second
)

type Config struct {
	DefaultPage      string `koanf:"default_page"`       // route shown on startup ("/dashboard" etc.)
	PollIntervalSecs int    `koanf:"poll_interval_secs"` // page data refresh interval

	// Backend API (required)
	API APIConfig `koanf:"api"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	URL    string `koanf:"url"`    // e.g., "https://app.example.com"
	APIKey string `koanf:"apikey"` // key from the account settings page
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultPage: "/dashboard",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize API URL (remove trailing slash)
	cfg.API.URL = strings.TrimSuffix(cfg.API.URL, "/")

	if !strings.HasPrefix(cfg.DefaultPage, "/") {
		cfg.DefaultPage = "/" + cfg.DefaultPage
	}

	return cfg, nil
}

// HasAPIConfig returns true if the backend connection is configured.
func (c *Config) HasAPIConfig() bool {
	return c.API.URL != "" && c.API.APIKey != ""
}

// PollInterval returns the refresh interval with defaults and floor applied.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSecs <= 0 {
		return defaultPollInterval
	}
	d := time.Duration(c.PollIntervalSecs) * time.Second
	if d < minPollInterval {
		return minPollInterval
	}
	return d
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/leadline/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "leadline", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

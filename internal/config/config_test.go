//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"strings"
	"testing"
	"time"
)

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("expected at least one config path")
	}

	// The working-directory config is always last (highest priority).
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, want config.toml", paths[len(paths)-1])
	}

	for _, p := range paths[:len(paths)-1] {
		if !strings.HasSuffix(p, "leadline/config.toml") {
			t.Errorf("unexpected config path %q", p)
		}
	}
}

func TestPollInterval(t *testing.T) {
	tests := []struct {
		name string
		secs int
		want time.Duration
	}{
		{"zero uses default", 0, 30 * time.Second},
		{"negative uses default", -10, 30 * time.Second},
		{"below floor is clamped", 2, 5 * time.Second},
		{"normal value", 60, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{PollIntervalSecs: tt.secs}
			if got := c.PollInterval(); got != tt.want {
				t.Errorf("PollInterval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAPIConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"both set", Config{API: APIConfig{URL: "https://x", APIKey: "k"}}, true},
		{"missing key", Config{API: APIConfig{URL: "https://x"}}, false},
		{"missing url", Config{API: APIConfig{APIKey: "k"}}, false},
		{"empty", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasAPIConfig(); got != tt.want {
				t.Errorf("HasAPIConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

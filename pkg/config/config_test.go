package config

import (
	"testing"
	"time"
)

func TestToEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"remote_url", "REMOTE_URL"},
		{"http_server_port", "HTTP_SERVER_PORT"},
		{"log-level", "LOG_LEVEL"},
		{"searchDebounce", "SEARCH_DEBOUNCE"},
	}

	for _, tt := range tests {
		if got := toEnvKey(tt.in); got != tt.want {
			t.Errorf("toEnvKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func validConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			Backend:     "http",
			URL:         "https://api.threadchain.app",
			Timeout:     10 * time.Second,
			SearchLimit: 20,
		},
		Database: DatabaseConfig{URL: "postgresql://localhost:5432/threadchain"},
		Server:   ServerConfig{Port: 8080, Host: "0.0.0.0"},
		Feed: FeedConfig{
			SearchDebounce:   300 * time.Millisecond,
			TrendingTagLimit: 10,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid http backend", func(c *Config) {}, false},
		{"valid postgres backend", func(c *Config) { c.Remote.Backend = "postgres" }, false},
		{"unknown backend", func(c *Config) { c.Remote.Backend = "ftp" }, true},
		{"missing remote url", func(c *Config) { c.Remote.URL = "" }, true},
		{"postgres without database url", func(c *Config) {
			c.Remote.Backend = "postgres"
			c.Database.URL = ""
		}, true},
		{"http without database url is fine", func(c *Config) { c.Database.URL = "" }, false},
		{"zero search limit", func(c *Config) { c.Remote.SearchLimit = 0 }, true},
		{"oversized search limit", func(c *Config) { c.Remote.SearchLimit = 500 }, true},
		{"negative debounce", func(c *Config) { c.Feed.SearchDebounce = -time.Second }, true},
		{"zero trending limit", func(c *Config) { c.Feed.TrendingTagLimit = 0 }, true},
		{"oversized trending limit", func(c *Config) { c.Feed.TrendingTagLimit = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Remote.Backend != "http" {
		t.Errorf("Remote.Backend = %q, want http", cfg.Remote.Backend)
	}
	if cfg.Feed.SearchDebounce != 300*time.Millisecond {
		t.Errorf("Feed.SearchDebounce = %v, want 300ms", cfg.Feed.SearchDebounce)
	}
	if cfg.Feed.TrendingTagLimit != 10 {
		t.Errorf("Feed.TrendingTagLimit = %d, want 10", cfg.Feed.TrendingTagLimit)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("THREAD_HTTP_SERVER_PORT", "9999")
	t.Setenv("THREAD_SEARCH_DEBOUNCE", "150ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Feed.SearchDebounce != 150*time.Millisecond {
		t.Errorf("Feed.SearchDebounce = %v, want 150ms", cfg.Feed.SearchDebounce)
	}
}

func TestToEnvKeyCamelCaseInput(t *testing.T) {
	if got := toEnvKey("remoteApiKey"); got != "REMOTE_API_KEY" {
		t.Errorf("toEnvKey = %q, want REMOTE_API_KEY", got)
	}
}

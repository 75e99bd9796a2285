package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Auth.SessionCookie != "atendo_session" {
		t.Errorf("Auth.SessionCookie = %q, want atendo_session", cfg.Auth.SessionCookie)
	}
	if cfg.Auth.TokenCookie != "atendo_token" {
		t.Errorf("Auth.TokenCookie = %q, want atendo_token", cfg.Auth.TokenCookie)
	}
	if cfg.Auth.SessionTTL != 720*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 720h", cfg.Auth.SessionTTL)
	}
	if cfg.Upstream.BaseURL != "http://localhost:3004" {
		t.Errorf("Upstream.BaseURL = %q, want http://localhost:3004", cfg.Upstream.BaseURL)
	}
	if !cfg.Redis.Enabled {
		t.Error("Redis.Enabled = false, want true by default")
	}
	if cfg.IsDev {
		t.Error("IsDev = true, want false by default")
	}
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ATENDO_API_URL", "https://api.atendo.example/")
	t.Setenv("ATENDO_API_TIMEOUT", "5s")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("SESSION_COOKIE", "console_sid")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want :9090", cfg.HTTP.Addr)
	}
	// Trailing slash is trimmed by Sanitize.
	if cfg.Upstream.BaseURL != "https://api.atendo.example" {
		t.Errorf("Upstream.BaseURL = %q, want https://api.atendo.example", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis.Enabled = true, want false")
	}
	if cfg.Auth.SessionCookie != "console_sid" {
		t.Errorf("Auth.SessionCookie = %q, want console_sid", cfg.Auth.SessionCookie)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("IsDev = false, want true when NODE_ENV=development")
	}
}

func TestAuthConfig_SanitizeGuardrails(t *testing.T) {
	a := AuthConfig{SessionTTL: -time.Hour}
	a.Sanitize()

	if a.SessionCookie == "" || a.TokenCookie == "" {
		t.Error("Sanitize left cookie names empty")
	}
	if a.SessionTTL != 720*time.Hour {
		t.Errorf("SessionTTL = %v, want 720h fallback", a.SessionTTL)
	}
}

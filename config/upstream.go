package config

import (
	"strings"
	"time"
)

// UpstreamConfig contains configuration for the upstream Atendo directory
// API (auth, users, roles, permissions, tenants).
type UpstreamConfig struct {
	// BaseURL is the root of the directory API.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:3004"`

	// Timeout bounds every upstream request.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")
	if u.BaseURL == "" {
		u.BaseURL = "http://localhost:3004"
	}
	if u.Timeout <= 0 {
		u.Timeout = 15 * time.Second
	}
}

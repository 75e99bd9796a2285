package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Session and cookie configuration
//   - http.go: HTTP server configuration
//   - redis.go: Redis configuration
//   - upstream.go: Upstream directory API configuration
type AppConfig struct {
	// IsDev controls development mode behavior (relaxed cookies, memory
	// token store fallback). Set DEV=true or NODE_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Session and cookie configuration
	Auth AuthConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Redis configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Upstream directory API configuration
	Upstream UpstreamConfig `envPrefix:"ATENDO_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
	c.Upstream.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

package config

import "time"

// AuthConfig groups session and cookie configuration.
//
// The browser holds two cookies: an opaque session id pointing at the
// server-side token record, and a mirror of the raw access token consumed
// only by the coarse route edge check.
type AuthConfig struct {
	// SessionCookie is the name of the opaque session id cookie.
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"atendo_session"`

	// TokenCookie is the name of the access-token mirror cookie read by
	// the edge check middleware.
	TokenCookie string `env:"TOKEN_COOKIE" envDefault:"atendo_token"`

	// CookieDomain is the domain for both cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// SessionTTL bounds how long a token record is retained server-side.
	// It must outlive the access token so the refresh token stays usable
	// after the access token expires.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionCookie == "" {
		a.SessionCookie = "atendo_session"
	}
	if a.TokenCookie == "" {
		a.TokenCookie = "atendo_token"
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 720 * time.Hour
	}
}

// Package auth contains domain-level types for authentication and browser
// sessions. It is pure and free of framework/adapter concerns.
package auth

import "time"

// ExpiryMargin is the safety window before the recorded access-token
// expiry during which the token is already treated as expired, so that a
// token never expires mid-request.
const ExpiryMargin = 5 * time.Minute

// Session is the credential record kept for one browser session.
// ExpiresAt is milliseconds since the Unix epoch; access token and expiry
// are always written together.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	OrgID        string `json:"org_id"`
	UserID       string `json:"user_id"`
}

// Expired reports whether the access token is expired or inside the
// safety margin at the given instant. A session with no recorded expiry
// is always expired.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt == 0 {
		return true
	}
	return now.UnixMilli() >= s.ExpiresAt-ExpiryMargin.Milliseconds()
}

// Authenticated reports whether the session holds a usable access token:
// present and not expired (per Expired, margin included).
func (s Session) Authenticated(now time.Time) bool {
	return s.AccessToken != "" && !s.Expired(now)
}

// TokenTTL returns the remaining lifetime of the access token, margin not
// applied. Used for the mirror cookie max-age; never negative.
func (s Session) TokenTTL(now time.Time) time.Duration {
	d := time.UnixMilli(s.ExpiresAt).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// TokenGrant is the shape returned by the upstream login and refresh
// endpoints: a fresh token pair plus its lifetime in seconds.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds
	OrgID        string
	UserID       string
}

// Session materializes the grant into a session record anchored at now.
func (g TokenGrant) Session(now time.Time) Session {
	return Session{
		AccessToken:  g.AccessToken,
		RefreshToken: g.RefreshToken,
		ExpiresAt:    now.UnixMilli() + g.ExpiresIn*1000,
		OrgID:        g.OrgID,
		UserID:       g.UserID,
	}
}

package httpx

import (
	"net/http"
	"time"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
)

// CookieWriter writes and clears the session cookie pair. The opaque
// session-id cookie and the access-token mirror cookie always move
// together: issuing or clearing one without the other would let the edge
// check and the session state diverge.
type CookieWriter struct {
	SessionName string
	TokenName   string
	Domain      string
	Secure      bool
	SessionTTL  time.Duration
}

// Issue writes both cookies: the HttpOnly session id for the API, and
// the access-token mirror whose max-age tracks the token's remaining
// lifetime, consumed only by the coarse edge check.
func (c CookieWriter) Issue(w http.ResponseWriter, sid string, sess domainauth.Session, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.SessionName,
		Value:    sid,
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   int(c.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.WriteMirror(w, sess, now)
}

// WriteMirror rewrites only the token mirror cookie, for when a refresh
// rotates the access token mid-session.
func (c CookieWriter) WriteMirror(w http.ResponseWriter, sess domainauth.Session, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.TokenName,
		Value:    sess.AccessToken,
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   int(sess.TokenTTL(now).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires both cookies.
func (c CookieWriter) Clear(w http.ResponseWriter) {
	for _, name := range []string{c.SessionName, c.TokenName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   c.Domain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

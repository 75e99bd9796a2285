package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/ports"
)

// SessionGate is the slice of the auth service the middleware and
// handlers need.
type SessionGate interface {
	Login(ctx context.Context, sid, email, password string) (domainauth.Session, error)
	Register(ctx context.Context, sid string, in ports.RegisterInput) (domainauth.Session, error)
	Refresh(ctx context.Context, sid string) (domainauth.Session, error)
	EnsureFresh(ctx context.Context, sid string) (domainauth.Session, error)
	Logout(ctx context.Context, sid string) error
	RebuildPermissions(ctx context.Context, sid string) error
}

// GuardState is the tri-state outcome of an access guard evaluation.
type GuardState string

const (
	// GuardChecking means the guard could not resolve a permission matrix
	// for the session yet.
	GuardChecking GuardState = "checking"
	GuardDenied   GuardState = "denied"
	GuardAllowed  GuardState = "allowed"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// EdgeCheck returns the coarse pre-routing check over browser paths,
// driven only by the presence of the token mirror cookie. It never
// validates the token: an expired or garbage value still counts as
// "authenticated" here, and the session guard catches it one layer down.
// API, auth, and health paths are exempt.
func EdgeCheck(tokenCookie string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if edgeExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			_, err := r.Cookie(tokenCookie)
			hasToken := err == nil

			if publicPaths[r.URL.Path] {
				if hasToken {
					http.Redirect(w, r, HomePath, http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !hasToken {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func edgeExempt(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/auth/") ||
		path == "/healthz"
}

// RequireSession returns the session guard: it resolves the browser
// session from the session cookie and refreshes the access token when
// it is inside the expiry margin. Unresolvable sessions get 401; the
// client's router is responsible for sending the browser to login.
// When a refresh rotates the token, the mirror cookie is rewritten so
// the edge check keeps seeing the live token.
func RequireSession(gate SessionGate, cookies CookieWriter, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sidCookie, err := r.Cookie(cookies.SessionName)
			if err != nil || sidCookie.Value == "" {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}
			sid := sidCookie.Value

			sess, err := gate.EnsureFresh(r.Context(), sid)
			if err != nil {
				cookies.Clear(w)
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("session expired"),
				})
				return
			}

			if mirror, err := r.Cookie(cookies.TokenName); err != nil || mirror.Value != sess.AccessToken {
				cookies.WriteMirror(w, sess, now())
			}

			ctx := SetSessionInContext(r.Context(), SessionContext{SID: sid, Session: sess})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TabGuard gates a route subtree on read access to one tab. It runs
// after RequireSession.
type TabGuard struct {
	Perms ports.PermissionStore
	Gate  SessionGate
	Tab   rbac.Tab

	// Fallback, when set, turns a denial into a redirect instead of a
	// 403 body.
	Fallback string
}

// RequireTab returns the tab guard middleware. A session with no matrix
// loaded (process restart while tokens survive in the store) gets one
// rebuild attempt before the guard decides; if the matrix still cannot
// be resolved the guard stays in the checking state and answers 503
// rather than guessing.
func RequireTab(g TabGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, ok := SessionFromContext(r.Context())
			if !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			state := g.evaluate(r.Context(), sc.SID)
			switch state {
			case GuardAllowed:
				next.ServeHTTP(w, r)
			case GuardChecking:
				w.Header().Set("Retry-After", "1")
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "permissions_not_loaded",
					Err:     errors.New("permissions not loaded for session"),
				})
			default:
				if g.Fallback != "" {
					http.Redirect(w, r, g.Fallback, http.StatusFound)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "access_denied",
					Err:     errors.New("access denied: " + string(g.Tab)),
				})
			}
		})
	}
}

func (g TabGuard) evaluate(ctx context.Context, sid string) GuardState {
	if !g.Perms.Loaded(sid) {
		if g.Gate == nil {
			return GuardChecking
		}
		if err := g.Gate.RebuildPermissions(ctx, sid); err != nil {
			return GuardChecking
		}
	}
	if g.Perms.CanNavigate(sid, g.Tab) {
		return GuardAllowed
	}
	return GuardDenied
}

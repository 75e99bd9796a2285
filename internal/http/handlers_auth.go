package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/ports"
)

// AuthHandlers provides HTTP handlers for session authentication.
type AuthHandlers struct {
	Gate    SessionGate
	Perms   ports.PermissionStore
	Cookies CookieWriter
	Logger  *slog.Logger

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *AuthHandlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// sessionResponse is the wire shape for login, register, refresh, and
// session introspection responses. The tokens themselves never leave the
// server.
type sessionResponse struct {
	Authenticated bool                        `json:"authenticated"`
	OrgID         string                      `json:"org_id"`
	UserID        string                      `json:"user_id"`
	ExpiresAt     int64                       `json:"expires_at"`
	Permissions   *rbac.NavigationPermissions `json:"permissions,omitempty"`
}

// sessionID reuses the browser's existing session id or mints a fresh
// opaque one.
func (h *AuthHandlers) sessionID(r *http.Request) string {
	if c, err := r.Cookie(h.Cookies.SessionName); err == nil && c.Value != "" {
		return c.Value
	}
	return uuid.NewString()
}

// Login handles the credential login endpoint.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &in) {
		return
	}

	sid := h.sessionID(r)
	sess, err := h.Gate.Login(r.Context(), sid, in.Email, in.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.Cookies.Issue(w, sid, sess, h.now())
	WriteJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		OrgID:         sess.OrgID,
		UserID:        sess.UserID,
		ExpiresAt:     sess.ExpiresAt,
		Permissions:   h.snapshot(sid),
	})
}

// Register handles registration followed by auto-login.
// POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in ports.RegisterInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	sid := h.sessionID(r)
	sess, err := h.Gate.Register(r.Context(), sid, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.Cookies.Issue(w, sid, sess, h.now())
	WriteJSON(w, http.StatusCreated, sessionResponse{
		Authenticated: true,
		OrgID:         sess.OrgID,
		UserID:        sess.UserID,
		ExpiresAt:     sess.ExpiresAt,
		Permissions:   h.snapshot(sid),
	})
}

// Refresh handles an explicit token refresh.
// POST /auth/refresh.
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	sess, err := h.Gate.Refresh(r.Context(), sc.SID)
	if err != nil {
		h.Cookies.Clear(w)
		WriteAppError(w, err)
		return
	}

	h.Cookies.Issue(w, sc.SID, sess, h.now())
	WriteJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		OrgID:         sess.OrgID,
		UserID:        sess.UserID,
		ExpiresAt:     sess.ExpiresAt,
	})
}

// Session handles session introspection: the sidebar reads its
// authenticated state and merged navigation matrix from here.
// GET /auth/session.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	WriteJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		OrgID:         sc.Session.OrgID,
		UserID:        sc.Session.UserID,
		ExpiresAt:     sc.Session.ExpiresAt,
		Permissions:   h.snapshot(sc.SID),
	})
}

// Logout destroys the session server-side and expires both cookies.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.Cookies.SessionName); err == nil && c.Value != "" {
		if logoutErr := h.Gate.Logout(r.Context(), c.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.Cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandlers) snapshot(sid string) *rbac.NavigationPermissions {
	if h.Perms == nil {
		return nil
	}
	nav, ok := h.Perms.Snapshot(sid)
	if !ok {
		return nil
	}
	return &nav
}

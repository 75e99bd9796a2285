package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/domain/rbac"
	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/permstore"
	"github.com/atendo-hq/console-api/internal/ports"
)

func newAuthHandlers(gate SessionGate, store *permstore.Store) *AuthHandlers {
	return &AuthHandlers{
		Gate:    gate,
		Perms:   store,
		Cookies: testCookies(),
		Now:     func() time.Time { return testClock },
	}
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login_SetsCookiePairTogether(t *testing.T) {
	store := permstore.New()
	gate := &fakeGate{
		loginFunc: func(_ context.Context, sid, email, password string) (domainauth.Session, error) {
			assert.NotEmpty(t, sid)
			assert.Equal(t, "ana@example.com", email)
			store.Replace(sid, rbac.NavigationPermissions{Users: rbac.TabPermissions{Read: true}})
			return freshSession(), nil
		},
	}
	h := newAuthHandlers(gate, store)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ana@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	sidCookie := cookieByName(t, rec, "atendo_session")
	tokenCookie := cookieByName(t, rec, "atendo_token")
	require.NotNil(t, sidCookie)
	require.NotNil(t, tokenCookie)
	assert.True(t, sidCookie.HttpOnly)
	assert.Equal(t, "access-1", tokenCookie.Value)
	assert.Equal(t, 3600, tokenCookie.MaxAge)

	var body sessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, "org-1", body.OrgID)
	require.NotNil(t, body.Permissions)
	assert.True(t, body.Permissions.Users.Read)
}

func TestAuthHandlers_Login_ReusesExistingSessionID(t *testing.T) {
	gate := &fakeGate{
		loginFunc: func(_ context.Context, sid, _, _ string) (domainauth.Session, error) {
			assert.Equal(t, "sid-existing", sid)
			return freshSession(), nil
		},
	}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.AddCookie(&http.Cookie{Name: "atendo_session", Value: "sid-existing"})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandlers_Login_CredentialFailure(t *testing.T) {
	gate := &fakeGate{
		loginFunc: func(context.Context, string, string, string) (domainauth.Session, error) {
			return domainauth.Session{}, apperrors.Unauthorized("invalid email or password")
		},
	}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandlers_Login_RejectsMalformedBody(t *testing.T) {
	h := newAuthHandlers(&fakeGate{}, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestAuthHandlers_Register_AutoLogin(t *testing.T) {
	gate := &fakeGate{
		registerFunc: func(_ context.Context, _ string, in ports.RegisterInput) (domainauth.Session, error) {
			assert.Equal(t, "org-1", in.OrgID)
			return freshSession(), nil
		},
	}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"org_id":"org-1","name":"New User","email":"new@example.com","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, cookieByName(t, rec, "atendo_session"))
	assert.NotNil(t, cookieByName(t, rec, "atendo_token"))
}

func TestAuthHandlers_Refresh_ReissuesCookies(t *testing.T) {
	rotated := domainauth.Session{
		AccessToken:  "access-new",
		RefreshToken: "refresh-new",
		ExpiresAt:    testClock.Add(30 * time.Minute).UnixMilli(),
		OrgID:        "org-1",
		UserID:       "user-1",
	}
	gate := &fakeGate{
		refreshFunc: func(_ context.Context, sid string) (domainauth.Session, error) {
			assert.Equal(t, "sid-1", sid)
			return rotated, nil
		},
	}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), SessionContext{SID: "sid-1", Session: freshSession()}))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	tokenCookie := cookieByName(t, rec, "atendo_token")
	require.NotNil(t, tokenCookie)
	assert.Equal(t, "access-new", tokenCookie.Value)
	assert.Equal(t, 1800, tokenCookie.MaxAge)
}

func TestAuthHandlers_Refresh_FailureClearsCookies(t *testing.T) {
	gate := &fakeGate{
		refreshFunc: func(context.Context, string) (domainauth.Session, error) {
			return domainauth.Session{}, apperrors.Unauthorized("refresh token revoked")
		},
	}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), SessionContext{SID: "sid-1", Session: freshSession()}))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	for _, c := range rec.Result().Cookies() {
		assert.Negative(t, c.MaxAge, c.Name)
	}
}

func TestAuthHandlers_Session_Introspection(t *testing.T) {
	store := permstore.New()
	store.Replace("sid-1", rbac.NavigationPermissions{Home: rbac.TabPermissions{Read: true}})
	h := newAuthHandlers(&fakeGate{}, store)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), SessionContext{SID: "sid-1", Session: freshSession()}))
	rec := httptest.NewRecorder()
	h.Session(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body sessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, "user-1", body.UserID)
	require.NotNil(t, body.Permissions)
	assert.True(t, body.Permissions.Home.Read)
	assert.False(t, body.Permissions.Users.Read)
}

func TestAuthHandlers_Logout_ClearsBothCookies(t *testing.T) {
	gate := &fakeGate{}
	h := newAuthHandlers(gate, permstore.New())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "atendo_session", Value: "sid-1"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"sid-1"}, gate.logouts)

	cleared := 0
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared++
		}
	}
	assert.Equal(t, 2, cleared)
}

func TestAuthHandlers_Logout_WithoutSessionStillSucceeds(t *testing.T) {
	gate := &fakeGate{}
	h := newAuthHandlers(gate, permstore.New())

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, gate.logouts)
}

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI    = (*StubAuthAPI)(nil)
	_ ports.TokenStore = (*TokenStoreFuncs)(nil)
)

// StubAuthAPI simulates the upstream auth endpoints with deterministic
// grants. Each func field overrides the default behavior when set.
type StubAuthAPI struct {
	RegisterFunc func(ctx context.Context, in ports.RegisterInput) (ports.RegisteredUser, error)
	LoginFunc    func(ctx context.Context, email, password string) (domainauth.TokenGrant, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (domainauth.TokenGrant, error)

	// Deterministic values for predictable testing
	OrgID     string
	UserID    string
	ExpiresIn int64

	mu           sync.Mutex
	loginCalls   int
	refreshCalls int
}

// NewStubAuthAPI creates a StubAuthAPI with sensible defaults.
func NewStubAuthAPI() *StubAuthAPI {
	return &StubAuthAPI{
		OrgID:     "org-1",
		UserID:    "user-1",
		ExpiresIn: 3600,
	}
}

func (s *StubAuthAPI) Register(ctx context.Context, in ports.RegisterInput) (ports.RegisteredUser, error) {
	if s.RegisterFunc != nil {
		return s.RegisterFunc(ctx, in)
	}
	return ports.RegisteredUser{UID: s.UserID, Email: in.Email, Name: in.Name}, nil
}

func (s *StubAuthAPI) Login(ctx context.Context, email, password string) (domainauth.TokenGrant, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, email, password)
	}

	s.mu.Lock()
	s.loginCalls++
	n := s.loginCalls
	s.mu.Unlock()

	return domainauth.TokenGrant{
		AccessToken:  fmt.Sprintf("access-%d", n),
		RefreshToken: fmt.Sprintf("refresh-%d", n),
		ExpiresIn:    s.ExpiresIn,
		OrgID:        s.OrgID,
		UserID:       s.UserID,
	}, nil
}

func (s *StubAuthAPI) RefreshToken(ctx context.Context, refreshToken string) (domainauth.TokenGrant, error) {
	if s.RefreshFunc != nil {
		return s.RefreshFunc(ctx, refreshToken)
	}

	s.mu.Lock()
	s.refreshCalls++
	n := s.refreshCalls
	s.mu.Unlock()

	return domainauth.TokenGrant{
		AccessToken:  fmt.Sprintf("access-refreshed-%d", n),
		RefreshToken: fmt.Sprintf("refresh-rotated-%d", n),
		ExpiresIn:    s.ExpiresIn,
		OrgID:        s.OrgID,
		UserID:       s.UserID,
	}, nil
}

// LoginCalls reports how many times the default Login path ran.
func (s *StubAuthAPI) LoginCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls
}

// RefreshCalls reports how many times the default RefreshToken path ran.
func (s *StubAuthAPI) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// TokenStoreFuncs is a test helper for exercising token store errors.
// Unset funcs behave as a store with no records.
type TokenStoreFuncs struct {
	SaveFunc  func(ctx context.Context, sid string, sess domainauth.Session) error
	GetFunc   func(ctx context.Context, sid string) (domainauth.Session, error)
	ClearFunc func(ctx context.Context, sid string) error
}

func (m *TokenStoreFuncs) Save(ctx context.Context, sid string, sess domainauth.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sid, sess)
	}
	return nil
}

func (m *TokenStoreFuncs) Get(ctx context.Context, sid string) (domainauth.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sid)
	}
	return domainauth.Session{}, ports.ErrNoSession
}

func (m *TokenStoreFuncs) Clear(ctx context.Context, sid string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sid)
	}
	return nil
}

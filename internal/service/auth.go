package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/ports"
)

// PermissionBootstrapper initializes and tears down the session's merged
// permission matrix. Satisfied by *PermissionService.
type PermissionBootstrapper interface {
	Initialize(ctx context.Context, sid string, sess PermissionSubject) error
	Reset(sid string)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API    ports.AuthAPI
	Tokens ports.TokenStore
	Perms  PermissionBootstrapper
	Logger *slog.Logger

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// AuthService is the session gate: it owns login, registration, token
// refresh, and logout for browser sessions, and decides whether a
// session is currently authenticated. Token and permission state always
// move together: a login that cannot bootstrap permissions is rolled
// back, and a failed refresh clears the credential record entirely so a
// stale token can never be replayed.
type AuthService struct {
	api    ports.AuthAPI
	tokens ports.TokenStore
	perms  PermissionBootstrapper
	logger *slog.Logger
	now    func() time.Time

	// refreshes collapses concurrent refresh attempts for the same
	// session into a single upstream exchange.
	refreshes singleflight.Group
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		api:    opts.API,
		tokens: opts.Tokens,
		perms:  opts.Perms,
		logger: opts.Logger,
		now:    now,
	}
}

func (s *AuthService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Login exchanges credentials for a token grant, persists the session
// record, and bootstraps the permission matrix. Permission bootstrap is
// part of the login transaction: if it fails, the saved tokens are
// cleared and the login reports failure.
func (s *AuthService) Login(ctx context.Context, sid, email, password string) (domainauth.Session, error) {
	if sid == "" {
		return domainauth.Session{}, apperrors.Validation("session id is required")
	}
	if email == "" || password == "" {
		return domainauth.Session{}, apperrors.Validation("email and password are required")
	}

	grant, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domainauth.Session{}, err
	}

	sess := grant.Session(s.now())
	if err := s.tokens.Save(ctx, sid, sess); err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist session tokens")
	}

	if err := s.bootstrapPermissions(ctx, sid, sess); err != nil {
		s.rollback(ctx, sid)
		return domainauth.Session{}, err
	}

	s.log().Info("login succeeded",
		slog.String("org_id", sess.OrgID),
		slog.String("user_id", sess.UserID))
	return sess, nil
}

// Register creates the directory user, then logs it straight in so the
// browser lands authenticated.
func (s *AuthService) Register(ctx context.Context, sid string, in ports.RegisterInput) (domainauth.Session, error) {
	if in.Email == "" || in.Password == "" {
		return domainauth.Session{}, apperrors.Validation("email and password are required")
	}
	if in.OrgID == "" {
		return domainauth.Session{}, apperrors.ValidationField("org_id", "org id is required")
	}

	created, err := s.api.Register(ctx, in)
	if err != nil {
		return domainauth.Session{}, err
	}
	s.log().Info("user registered",
		slog.String("org_id", in.OrgID),
		slog.String("user_id", created.UID))

	return s.Login(ctx, sid, in.Email, in.Password)
}

// Refresh exchanges the stored refresh token for a fresh grant. With no
// record or no refresh token it fails without any network call. Any
// exchange failure clears the entire credential record: the session
// drops to unauthenticated rather than limping along on stale tokens.
// Concurrent calls for the same session share a single exchange.
func (s *AuthService) Refresh(ctx context.Context, sid string) (domainauth.Session, error) {
	if sid == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session")
	}

	v, err, _ := s.refreshes.Do(sid, func() (any, error) {
		return s.refreshOnce(ctx, sid)
	})
	if err != nil {
		return domainauth.Session{}, err
	}
	return v.(domainauth.Session), nil
}

func (s *AuthService) refreshOnce(ctx context.Context, sid string) (domainauth.Session, error) {
	current, err := s.tokens.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return domainauth.Session{}, apperrors.Unauthorized("no session")
		}
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "load session tokens")
	}
	if current.RefreshToken == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no refresh token")
	}

	grant, err := s.api.RefreshToken(ctx, current.RefreshToken)
	if err != nil {
		s.rollback(ctx, sid)
		s.log().Warn("token refresh failed; session cleared",
			slog.String("org_id", current.OrgID),
			slog.String("user_id", current.UserID),
			slog.String("error", err.Error()))
		return domainauth.Session{}, err
	}

	next := grant.Session(s.now())
	// The refresh response may omit the identity fields; keep the ones
	// we already know.
	if next.OrgID == "" {
		next.OrgID = current.OrgID
	}
	if next.UserID == "" {
		next.UserID = current.UserID
	}

	if err := s.tokens.Save(ctx, sid, next); err != nil {
		s.rollback(ctx, sid)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist refreshed tokens")
	}

	s.log().Info("token refreshed",
		slog.String("org_id", next.OrgID),
		slog.String("user_id", next.UserID))
	return next, nil
}

// Session returns the stored record for the browser session, or an
// unauthorized error if none exists.
func (s *AuthService) Session(ctx context.Context, sid string) (domainauth.Session, error) {
	if sid == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session")
	}
	sess, err := s.tokens.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return domainauth.Session{}, apperrors.Unauthorized("no session")
		}
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "load session tokens")
	}
	return sess, nil
}

// IsAuthenticated reports whether the session holds a token that is not
// within the expiry safety margin. Store errors read as "not
// authenticated"; denying on uncertainty is the safe direction.
func (s *AuthService) IsAuthenticated(ctx context.Context, sid string) bool {
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return false
	}
	return sess.Authenticated(s.now())
}

// EnsureFresh returns a usable session, refreshing first when the stored
// token is inside the expiry margin.
func (s *AuthService) EnsureFresh(ctx context.Context, sid string) (domainauth.Session, error) {
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return domainauth.Session{}, err
	}
	if !sess.Expired(s.now()) {
		return sess, nil
	}
	return s.Refresh(ctx, sid)
}

// Logout clears the credential record and the permission matrix.
// Logging out an absent session succeeds.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if s.perms != nil {
		s.perms.Reset(sid)
	}
	if err := s.tokens.Clear(ctx, sid); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "clear session tokens")
	}
	return nil
}

// RebuildPermissions re-runs the permission bootstrap for an existing
// session, using its stored access token. Used when a guard finds the
// in-memory matrix missing (process restart) while tokens survive in
// the store.
func (s *AuthService) RebuildPermissions(ctx context.Context, sid string) error {
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return err
	}
	return s.bootstrapPermissions(ctx, sid, sess)
}

func (s *AuthService) bootstrapPermissions(ctx context.Context, sid string, sess domainauth.Session) error {
	if s.perms == nil {
		return nil
	}
	return s.perms.Initialize(ctx, sid, PermissionSubject{
		OrgID:  sess.OrgID,
		UserID: sess.UserID,
		Token:  sess.AccessToken,
	})
}

// rollback drops both halves of the session state. Best effort: the
// permission matrix is in memory and cannot fail, and a failed token
// clear only leaves a record the next Get will still validate.
func (s *AuthService) rollback(ctx context.Context, sid string) {
	if s.perms != nil {
		s.perms.Reset(sid)
	}
	if err := s.tokens.Clear(ctx, sid); err != nil {
		s.log().Error("failed to clear session tokens", slog.String("error", err.Error()))
	}
}

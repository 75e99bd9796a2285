package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/ports"
)

// PermissionServiceOptions groups dependencies for PermissionService.
type PermissionServiceOptions struct {
	Users  ports.UserAPI
	Roles  ports.RoleAPI
	Grants ports.PermissionAPI
	Store  ports.PermissionStore
	Logger *slog.Logger
}

// PermissionService resolves a user's merged navigation permissions:
// user record -> role -> permission grants -> OR-merged matrix, published
// to the permission store. This is the security-critical bootstrap path:
// any failure leaves the store in its prior state, so a half-fetched
// grant set is never published as authoritative.
type PermissionService struct {
	users  ports.UserAPI
	roles  ports.RoleAPI
	grants ports.PermissionAPI
	store  ports.PermissionStore
	logger *slog.Logger
}

// NewPermissionService constructs a new PermissionService.
func NewPermissionService(opts PermissionServiceOptions) *PermissionService {
	return &PermissionService{
		users:  opts.Users,
		roles:  opts.Roles,
		grants: opts.Grants,
		store:  opts.Store,
		logger: opts.Logger,
	}
}

func (s *PermissionService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Initialize builds and publishes the merged permission matrix for the
// browser session. All grant fetches run concurrently and the merge waits
// for every one to settle; a single failed fetch fails the whole
// operation (a partial permission set is a security hazard).
func (s *PermissionService) Initialize(ctx context.Context, sid string, sess PermissionSubject) error {
	if sess.OrgID == "" || sess.UserID == "" || sess.Token == "" {
		return apperrors.Validation("org id, user id, and token are required")
	}

	user, err := s.users.User(ctx, sess.Token, sess.OrgID, sess.UserID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "fetch user record")
	}
	if user.RoleID == "" {
		return apperrors.Forbiddenf("user %s has no role assigned", sess.UserID)
	}

	role, err := s.roles.Role(ctx, sess.Token, sess.OrgID, user.RoleID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "fetch role record")
	}
	if len(role.PermissionIDs) == 0 {
		return apperrors.Forbiddenf("role %s grants no permissions", role.ID)
	}

	grants := make([]rbac.Grant, len(role.PermissionIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range role.PermissionIDs {
		g.Go(func() error {
			grant, fetchErr := s.grants.Permission(gctx, sess.Token, id)
			if fetchErr != nil {
				return apperrors.Wrapf(fetchErr, apperrors.ErrCodeUpstream, "fetch permission %s", id)
			}
			grants[i] = grant
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := rbac.Merge(grants...)

	if s.store == nil {
		// A missing sink is a wiring defect, not a bypass: with no store
		// every guard keeps denying, which is the safe direction.
		s.log().Warn("permission store not configured; merged matrix discarded",
			slog.String("org_id", sess.OrgID),
			slog.String("user_id", sess.UserID))
		return nil
	}

	s.store.Replace(sid, merged)
	s.log().Info("permissions initialized",
		slog.String("org_id", sess.OrgID),
		slog.String("user_id", sess.UserID),
		slog.Int("grants", len(grants)))
	return nil
}

// Reset forgets the session's matrix (logout, failed refresh).
func (s *PermissionService) Reset(sid string) {
	if s.store != nil {
		s.store.Clear(sid)
	}
}

// PermissionSubject identifies whose permissions to resolve and with
// which credential.
type PermissionSubject struct {
	OrgID  string
	UserID string
	Token  string
}

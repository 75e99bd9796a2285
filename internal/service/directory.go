package service

import (
	"context"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/domain/rbac"
	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/ports"
)

// DirectoryService fronts the upstream user, role, and permission
// surfaces for an authenticated session. It is a thin pass-through: the
// session's access token and org id scope every call, and tab-level
// authorization happens in the HTTP guards before these methods run.
type DirectoryService struct {
	users  ports.UserAPI
	roles  ports.RoleAPI
	grants ports.PermissionAPI
	reg    ports.AuthAPI
}

// NewDirectoryService constructs a new DirectoryService. The AuthAPI is
// used for user creation, which the upstream exposes as registration.
func NewDirectoryService(users ports.UserAPI, roles ports.RoleAPI, grants ports.PermissionAPI, reg ports.AuthAPI) *DirectoryService {
	return &DirectoryService{users: users, roles: roles, grants: grants, reg: reg}
}

// User fetches a single user in the session's org.
func (s *DirectoryService) User(ctx context.Context, sess domainauth.Session, userID string) (rbac.User, error) {
	if userID == "" {
		return rbac.User{}, apperrors.ValidationField("user_id", "user id is required")
	}
	return s.users.User(ctx, sess.AccessToken, sess.OrgID, userID)
}

// Users lists the session org's users. Page and limit fall back to the
// first page of twenty, matching the upstream defaults.
func (s *DirectoryService) Users(ctx context.Context, sess domainauth.Session, page, limit int) (rbac.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.users.Users(ctx, sess.AccessToken, sess.OrgID, page, limit)
}

// CreateUser creates a user in the session's org via the upstream
// registration endpoint. The org id always comes from the session.
func (s *DirectoryService) CreateUser(ctx context.Context, sess domainauth.Session, in ports.RegisterInput) (ports.RegisteredUser, error) {
	if in.Email == "" || in.Password == "" {
		return ports.RegisteredUser{}, apperrors.Validation("email and password are required")
	}
	in.OrgID = sess.OrgID
	return s.reg.Register(ctx, in)
}

// Role fetches a single role in the session's org.
func (s *DirectoryService) Role(ctx context.Context, sess domainauth.Session, roleID string) (rbac.Role, error) {
	if roleID == "" {
		return rbac.Role{}, apperrors.ValidationField("role_id", "role id is required")
	}
	return s.roles.Role(ctx, sess.AccessToken, sess.OrgID, roleID)
}

// Roles lists the session org's roles.
func (s *DirectoryService) Roles(ctx context.Context, sess domainauth.Session) ([]rbac.Role, error) {
	return s.roles.Roles(ctx, sess.AccessToken, sess.OrgID)
}

// CreateRole creates a role in the session's org. The org id always
// comes from the session, never from the request body.
func (s *DirectoryService) CreateRole(ctx context.Context, sess domainauth.Session, role rbac.Role) (rbac.Role, error) {
	if role.Name == "" {
		return rbac.Role{}, apperrors.ValidationField("name", "role name is required")
	}
	if len(role.PermissionIDs) == 0 {
		return rbac.Role{}, apperrors.ValidationField("permission_ids", "at least one permission is required")
	}
	role.OrgID = sess.OrgID
	return s.roles.CreateRole(ctx, sess.AccessToken, role)
}

// Permission fetches a single permission grant.
func (s *DirectoryService) Permission(ctx context.Context, sess domainauth.Session, id string) (rbac.Grant, error) {
	if id == "" {
		return rbac.Grant{}, apperrors.ValidationField("id", "permission id is required")
	}
	return s.grants.Permission(ctx, sess.AccessToken, id)
}

// Permissions lists all permission grants.
func (s *DirectoryService) Permissions(ctx context.Context, sess domainauth.Session) ([]rbac.Grant, error) {
	return s.grants.Permissions(ctx, sess.AccessToken)
}

// Package ports defines interfaces (hexagonal ports) for the console's
// auth and permission behavior. Implementations live in internal/adapters
// and internal/permstore; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/domain/tenant"
)

// TokenStore persists the credential record for a browser session.
// Writes are whole-record replacements: readers never observe a session
// with a token but no expiry, or vice versa.
type TokenStore interface {
	// Save stores the session record under the browser session id.
	Save(ctx context.Context, sid string, sess domainauth.Session) error

	// Get returns the stored record, or ErrNoSession if none exists.
	Get(ctx context.Context, sid string) (domainauth.Session, error)

	// Clear removes the record. Clearing an absent record is a no-op.
	Clear(ctx context.Context, sid string) error
}

// ErrNoSession is returned by TokenStore.Get when no record exists for
// the session id. Callers treat it as "not authenticated".
var ErrNoSession error = noSessionError{}

type noSessionError struct{}

func (noSessionError) Error() string { return "no session record" }

// PermissionStore holds the merged navigation-permission matrix for each
// browser session, in memory only. Stored matrices are immutable: Replace
// installs an independent snapshot and queries never expose a mutable
// reference. Queries on unknown sessions, tabs, or actions return false,
// never an error.
type PermissionStore interface {
	// Replace installs the matrix for the session, discarding any
	// previous one.
	Replace(sid string, nav rbac.NavigationPermissions)

	// Clear forgets the session's matrix. Every subsequent query denies.
	Clear(sid string)

	// Loaded reports whether a matrix has been published for the session.
	// A loaded all-false matrix is distinct from "none loaded" here, even
	// though both deny every query.
	Loaded(sid string) bool

	// Query reports whether the action is granted on the tab.
	Query(sid string, tab rbac.Tab, action rbac.Action) bool

	// CanNavigate is Query with the read action.
	CanNavigate(sid string, tab rbac.Tab) bool
	CanCreate(sid string, tab rbac.Tab) bool
	CanUpdate(sid string, tab rbac.Tab) bool
	CanDelete(sid string, tab rbac.Tab) bool

	// Snapshot returns a copy of the session's matrix and whether one is
	// loaded.
	Snapshot(sid string) (rbac.NavigationPermissions, bool)
}

// RegisterInput carries the fields for creating a directory user.
type RegisterInput struct {
	OrgID    string `json:"org_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser is the created-user record returned by registration.
type RegisteredUser struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Verified bool   `json:"emailVerified"`
	Name     string `json:"displayName"`
	Disabled bool   `json:"disabled"`
}

// AuthAPI is the upstream authentication surface: credential login,
// registration, and refresh-token exchange. None of these require a
// bearer token.
type AuthAPI interface {
	Register(ctx context.Context, in RegisterInput) (RegisteredUser, error)
	Login(ctx context.Context, email, password string) (domainauth.TokenGrant, error)
	RefreshToken(ctx context.Context, refreshToken string) (domainauth.TokenGrant, error)
}

// UserAPI is the upstream user directory surface (bearer-token auth).
type UserAPI interface {
	User(ctx context.Context, token, orgID, userID string) (rbac.User, error)
	Users(ctx context.Context, token, orgID string, page, limit int) (rbac.UserPage, error)
}

// RoleAPI is the upstream role surface (bearer-token auth).
type RoleAPI interface {
	Role(ctx context.Context, token, orgID, roleID string) (rbac.Role, error)
	Roles(ctx context.Context, token, orgID string) ([]rbac.Role, error)
	CreateRole(ctx context.Context, token string, role rbac.Role) (rbac.Role, error)
}

// PermissionAPI is the upstream permission-grant surface (bearer-token auth).
type PermissionAPI interface {
	Permission(ctx context.Context, token, id string) (rbac.Grant, error)
	Permissions(ctx context.Context, token string) ([]rbac.Grant, error)
}

// TenantAPI is the upstream tenant surface (bearer-token auth).
type TenantAPI interface {
	Tenant(ctx context.Context, token, id string) (tenant.Tenant, error)
	UpdateSettings(ctx context.Context, token, id string, patch tenant.SettingsPatch) (tenant.Tenant, error)
	UpdateFeatures(ctx context.Context, token, id string, patch tenant.FeaturesPatch) (tenant.Tenant, error)
	UpdateAssets(ctx context.Context, token, id string, patch tenant.AssetsPatch) (tenant.Tenant, error)
}

// Directory aggregates the full upstream API consumed by the console.
type Directory interface {
	AuthAPI
	UserAPI
	RoleAPI
	PermissionAPI
	TenantAPI
}

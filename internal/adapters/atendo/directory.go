package atendo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/domain/tenant"
)

// User fetches one user record.
// GET /user/{org_id}/{user_id}.
func (c *Client) User(ctx context.Context, token, orgID, userID string) (rbac.User, error) {
	var user rbac.User
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/user/%s/%s", orgID, userID),
		token:  token,
	}, &user)
	if err != nil {
		return rbac.User{}, err
	}
	return user, nil
}

// Users fetches one page of an organization's users.
// GET /user/{org_id}?page=N&limit=N.
func (c *Client) Users(ctx context.Context, token, orgID string, page, limit int) (rbac.UserPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	var result rbac.UserPage
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/user/%s", orgID),
		query:  query,
		token:  token,
	}, &result)
	if err != nil {
		return rbac.UserPage{}, err
	}
	return result, nil
}

// Role fetches one role record.
// GET /roles/{org_id}/{role_id}.
func (c *Client) Role(ctx context.Context, token, orgID, roleID string) (rbac.Role, error) {
	var role rbac.Role
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/roles/%s/%s", orgID, roleID),
		token:  token,
	}, &role)
	if err != nil {
		return rbac.Role{}, err
	}
	return role, nil
}

// Roles fetches all roles for an organization.
// GET /roles/{org_id}.
func (c *Client) Roles(ctx context.Context, token, orgID string) ([]rbac.Role, error) {
	var roles []rbac.Role
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/roles/%s", orgID),
		token:  token,
	}, &roles)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole creates a role.
// POST /roles.
func (c *Client) CreateRole(ctx context.Context, token string, role rbac.Role) (rbac.Role, error) {
	var created rbac.Role
	err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/roles",
		token:  token,
		body:   role,
	}, &created)
	if err != nil {
		return rbac.Role{}, err
	}
	return created, nil
}

// Permission fetches one permission grant.
// GET /permissions/{id}.
func (c *Client) Permission(ctx context.Context, token, id string) (rbac.Grant, error) {
	var grant rbac.Grant
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/permissions/%s", id),
		token:  token,
	}, &grant)
	if err != nil {
		return rbac.Grant{}, err
	}
	return grant, nil
}

// Permissions fetches all permission grants visible to the caller.
// GET /permissions.
func (c *Client) Permissions(ctx context.Context, token string) ([]rbac.Grant, error) {
	var grants []rbac.Grant
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   "/permissions",
		token:  token,
	}, &grants)
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// Tenant fetches one tenant record.
// GET /tenants/fetch/{id}/tenantId.
func (c *Client) Tenant(ctx context.Context, token, id string) (tenant.Tenant, error) {
	var t tenant.Tenant
	err := c.do(ctx, requestParams{
		method: http.MethodGet,
		path:   pathEscapef("/tenants/fetch/%s/tenantId", id),
		token:  token,
	}, &t)
	if err != nil {
		return tenant.Tenant{}, err
	}
	return t, nil
}

// UpdateSettings applies a partial settings update.
// PATCH /tenants/{id}/settings.
func (c *Client) UpdateSettings(ctx context.Context, token, id string, patch tenant.SettingsPatch) (tenant.Tenant, error) {
	return c.patchTenant(ctx, token, pathEscapef("/tenants/%s/settings", id), patch)
}

// UpdateFeatures applies a partial feature-toggle update.
// PATCH /tenants/{id}/features.
func (c *Client) UpdateFeatures(ctx context.Context, token, id string, patch tenant.FeaturesPatch) (tenant.Tenant, error) {
	return c.patchTenant(ctx, token, pathEscapef("/tenants/%s/features", id), patch)
}

// UpdateAssets applies a partial brand-assets update.
// PATCH /tenants/{id}/assets.
func (c *Client) UpdateAssets(ctx context.Context, token, id string, patch tenant.AssetsPatch) (tenant.Tenant, error) {
	return c.patchTenant(ctx, token, pathEscapef("/tenants/%s/assets", id), patch)
}

func (c *Client) patchTenant(ctx context.Context, token, path string, patch any) (tenant.Tenant, error) {
	var updated tenant.Tenant
	err := c.do(ctx, requestParams{
		method: http.MethodPatch,
		path:   path,
		token:  token,
		body:   patch,
	}, &updated)
	if err != nil {
		return tenant.Tenant{}, err
	}
	return updated, nil
}

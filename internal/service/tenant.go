package service

import (
	"context"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/domain/tenant"
	"github.com/atendo-hq/console-api/internal/ports"
)

// TenantService fronts the upstream tenant surface. The tenant id is
// always the session's org id: a session can only ever read or patch
// its own organization.
type TenantService struct {
	api ports.TenantAPI
}

// NewTenantService constructs a new TenantService.
func NewTenantService(api ports.TenantAPI) *TenantService {
	return &TenantService{api: api}
}

// Tenant fetches the session org's tenant record.
func (s *TenantService) Tenant(ctx context.Context, sess domainauth.Session) (tenant.Tenant, error) {
	return s.api.Tenant(ctx, sess.AccessToken, sess.OrgID)
}

// UpdateSettings patches the org's general settings. Only fields set in
// the patch reach the upstream.
func (s *TenantService) UpdateSettings(ctx context.Context, sess domainauth.Session, patch tenant.SettingsPatch) (tenant.Tenant, error) {
	return s.api.UpdateSettings(ctx, sess.AccessToken, sess.OrgID, patch)
}

// UpdateFeatures patches the org's feature toggles.
func (s *TenantService) UpdateFeatures(ctx context.Context, sess domainauth.Session, patch tenant.FeaturesPatch) (tenant.Tenant, error) {
	return s.api.UpdateFeatures(ctx, sess.AccessToken, sess.OrgID, patch)
}

// UpdateAssets patches the org's branding assets.
func (s *TenantService) UpdateAssets(ctx context.Context, sess domainauth.Session, patch tenant.AssetsPatch) (tenant.Tenant, error) {
	return s.api.UpdateAssets(ctx, sess.AccessToken, sess.OrgID, patch)
}

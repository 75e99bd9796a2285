package httpx

import (
	"errors"
	"net/http"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/domain/tenant"
	"github.com/atendo-hq/console-api/internal/ports"
	"github.com/atendo-hq/console-api/internal/service"
)

// TenantHandlers provides HTTP handlers for the organization settings
// screens. All operations target the session's own org.
type TenantHandlers struct {
	Svc   *service.TenantService
	Perms ports.PermissionStore
}

// Get handles GET /api/tenant.
func (h *TenantHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	ten, err := h.Svc.Tenant(r.Context(), sc.Session)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ten)
}

// UpdateSettings handles PATCH /api/tenant/settings.
func (h *TenantHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.updatable(w, r)
	if !ok {
		return
	}

	var patch tenant.SettingsPatch
	if !DecodeJSON(w, r, &patch) {
		return
	}

	ten, err := h.Svc.UpdateSettings(r.Context(), sc.Session, patch)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ten)
}

// UpdateFeatures handles PATCH /api/tenant/features.
func (h *TenantHandlers) UpdateFeatures(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.updatable(w, r)
	if !ok {
		return
	}

	var patch tenant.FeaturesPatch
	if !DecodeJSON(w, r, &patch) {
		return
	}

	ten, err := h.Svc.UpdateFeatures(r.Context(), sc.Session, patch)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ten)
}

// UpdateAssets handles PATCH /api/tenant/assets.
func (h *TenantHandlers) UpdateAssets(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.updatable(w, r)
	if !ok {
		return
	}

	var patch tenant.AssetsPatch
	if !DecodeJSON(w, r, &patch) {
		return
	}

	ten, err := h.Svc.UpdateAssets(r.Context(), sc.Session, patch)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ten)
}

// updatable resolves the session and enforces the organization tab's
// update flag for the PATCH handlers.
func (h *TenantHandlers) updatable(w http.ResponseWriter, r *http.Request) (SessionContext, bool) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return SessionContext{}, false
	}
	if !requireAction(w, h.Perms, sc.SID, rbac.TabOrganization, rbac.ActionUpdate) {
		return SessionContext{}, false
	}
	return sc, true
}

package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/ports"
	"github.com/atendo-hq/console-api/internal/service"
)

// DirectoryHandlers provides HTTP handlers for the user, role, and
// permission passthroughs. Route-level tab guards gate navigation; the
// mutating handlers additionally check the matching action flag.
type DirectoryHandlers struct {
	Svc   *service.DirectoryService
	Perms ports.PermissionStore
}

// requireAction enforces an action flag beyond the route's tab guard.
// Returns true when the request may proceed.
func requireAction(w http.ResponseWriter, perms ports.PermissionStore, sid string, tab rbac.Tab, action rbac.Action) bool {
	if perms.Query(sid, tab, action) {
		return true
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusForbidden,
		ErrCode: "access_denied",
		Err:     errors.New("action not permitted: " + string(action) + " on " + string(tab)),
	})
	return false
}

// ListUsers handles GET /api/users?page=&limit=.
func (h *DirectoryHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	page := queryInt(r, "page", DefaultPage)
	limit := queryInt(r, "limit", DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}

	users, err := h.Svc.Users(r.Context(), sc.Session, page, limit)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{id}.
func (h *DirectoryHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	user, err := h.Svc.User(r.Context(), sc.Session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /api/users.
func (h *DirectoryHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}
	if !requireAction(w, h.Perms, sc.SID, rbac.TabUsers, rbac.ActionCreate) {
		return
	}

	var in ports.RegisterInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	created, err := h.Svc.CreateUser(r.Context(), sc.Session, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// ListRoles handles GET /api/roles.
func (h *DirectoryHandlers) ListRoles(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	roles, err := h.Svc.Roles(r.Context(), sc.Session)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, roles)
}

// GetRole handles GET /api/roles/{id}.
func (h *DirectoryHandlers) GetRole(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	role, err := h.Svc.Role(r.Context(), sc.Session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, role)
}

// CreateRole handles POST /api/roles.
func (h *DirectoryHandlers) CreateRole(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}
	if !requireAction(w, h.Perms, sc.SID, rbac.TabOrganization, rbac.ActionCreate) {
		return
	}

	var in rbac.Role
	if !DecodeJSON(w, r, &in) {
		return
	}

	created, err := h.Svc.CreateRole(r.Context(), sc.Session, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// ListPermissions handles GET /api/permissions.
func (h *DirectoryHandlers) ListPermissions(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	grants, err := h.Svc.Permissions(r.Context(), sc.Session)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, grants)
}

// GetPermission handles GET /api/permissions/{id}.
func (h *DirectoryHandlers) GetPermission(w http.ResponseWriter, r *http.Request) {
	sc, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	grant, err := h.Svc.Permission(r.Context(), sc.Session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, grant)
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

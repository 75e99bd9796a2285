package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atendo-hq/console-api/internal/domain/rbac"
	"github.com/atendo-hq/console-api/internal/ports"
	"github.com/atendo-hq/console-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Gate      SessionGate
	Perms     ports.PermissionStore
	Directory *service.DirectoryService
	Tenant    *service.TenantService
	Cookies   CookieWriter
	Logger    *slog.Logger

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewRouter creates and configures the HTTP router. Auth endpoints sit
// under /auth, directory passthroughs under /api behind the session
// guard plus the owning tab guard, and the edge check covers the
// remaining browser paths.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Gate:    services.Gate,
		Perms:   services.Perms,
		Cookies: services.Cookies,
		Logger:  logger,
		Now:     services.Now,
	}
	dirHandlers := &DirectoryHandlers{Svc: services.Directory, Perms: services.Perms}
	tenantHandlers := &TenantHandlers{Svc: services.Tenant, Perms: services.Perms}

	session := RequireSession(services.Gate, services.Cookies, services.Now)
	usersTab := RequireTab(TabGuard{Perms: services.Perms, Gate: services.Gate, Tab: rbac.TabUsers})
	orgTab := RequireTab(TabGuard{Perms: services.Perms, Gate: services.Gate, Tab: rbac.TabOrganization})

	// Public auth endpoints.
	mux.Handle("POST /auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /auth/register", http.HandlerFunc(authHandlers.Register))
	mux.Handle("POST /auth/logout", http.HandlerFunc(authHandlers.Logout))

	// Session-gated auth endpoints.
	mux.Handle("POST /auth/refresh", session(http.HandlerFunc(authHandlers.Refresh)))
	mux.Handle("GET /auth/session", session(http.HandlerFunc(authHandlers.Session)))

	// Users tab.
	mux.Handle("GET /api/users", session(usersTab(http.HandlerFunc(dirHandlers.ListUsers))))
	mux.Handle("POST /api/users", session(usersTab(http.HandlerFunc(dirHandlers.CreateUser))))
	mux.Handle("GET /api/users/{id}", session(usersTab(http.HandlerFunc(dirHandlers.GetUser))))

	// Organization tab: roles, permissions, tenant.
	mux.Handle("GET /api/roles", session(orgTab(http.HandlerFunc(dirHandlers.ListRoles))))
	mux.Handle("POST /api/roles", session(orgTab(http.HandlerFunc(dirHandlers.CreateRole))))
	mux.Handle("GET /api/roles/{id}", session(orgTab(http.HandlerFunc(dirHandlers.GetRole))))
	mux.Handle("GET /api/permissions", session(orgTab(http.HandlerFunc(dirHandlers.ListPermissions))))
	mux.Handle("GET /api/permissions/{id}", session(orgTab(http.HandlerFunc(dirHandlers.GetPermission))))
	mux.Handle("GET /api/tenant", session(orgTab(http.HandlerFunc(tenantHandlers.Get))))
	mux.Handle("PATCH /api/tenant/settings", session(orgTab(http.HandlerFunc(tenantHandlers.UpdateSettings))))
	mux.Handle("PATCH /api/tenant/features", session(orgTab(http.HandlerFunc(tenantHandlers.UpdateFeatures))))
	mux.Handle("PATCH /api/tenant/assets", session(orgTab(http.HandlerFunc(tenantHandlers.UpdateAssets))))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Browser entry points: placeholders that make the edge check
	// contract observable while the dashboard itself is served elsewhere.
	mux.Handle("GET /{$}", pageHandler("home"))
	mux.Handle("GET /login", pageHandler("login"))
	mux.Handle("GET /register", pageHandler("register"))

	// Logging and Recover wrap the router in bootstrap.
	return EdgeCheck(services.Cookies.TokenName)(mux)
}

func pageHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"page": name})
	})
}

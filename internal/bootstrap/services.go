package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/atendo-hq/console-api/config"
	"github.com/atendo-hq/console-api/internal/adapters/atendo"
	"github.com/atendo-hq/console-api/internal/adapters/memstore"
	redisstore "github.com/atendo-hq/console-api/internal/adapters/redis"
	"github.com/atendo-hq/console-api/internal/permstore"
	"github.com/atendo-hq/console-api/internal/ports"
	"github.com/atendo-hq/console-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	Permissions *service.PermissionService
	Directory   *service.DirectoryService
	Tenant      *service.TenantService

	Tokens ports.TokenStore
	Perms  ports.PermissionStore
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the upstream client, stores, and services together.
// With Redis disabled (development) the token store falls back to the
// in-memory implementation.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	upstream, err := atendo.NewClient(atendo.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create upstream client: %w", err)
	}

	var tokens ports.TokenStore
	if deps.RedisClient != nil {
		tokens = redisstore.NewTokenStore(deps.RedisClient, cfg.Auth.SessionTTL)
	} else {
		if !cfg.IsDev && deps.Logger != nil {
			deps.Logger.Warn("redis disabled outside development; sessions will not survive a restart")
		}
		tokens = memstore.NewTokenStore()
	}

	perms := permstore.New()

	permSvc := service.NewPermissionService(service.PermissionServiceOptions{
		Users:  upstream,
		Roles:  upstream,
		Grants: upstream,
		Store:  perms,
		Logger: deps.Logger,
	})

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		API:    upstream,
		Tokens: tokens,
		Perms:  permSvc,
		Logger: deps.Logger,
	})

	return ServiceContainer{
		Auth:        authSvc,
		Permissions: permSvc,
		Directory:   service.NewDirectoryService(upstream, upstream, upstream, upstream),
		Tenant:      service.NewTenantService(upstream),
		Tokens:      tokens,
		Perms:       perms,
	}, nil
}

package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/careerhub/portal/config"
	"github.com/careerhub/portal/internal/adapters/apiclient"
	"github.com/careerhub/portal/internal/adapters/authroles"
	"github.com/careerhub/portal/internal/adapters/devauth"
	"github.com/careerhub/portal/internal/adapters/memstore"
	redisadapter "github.com/careerhub/portal/internal/adapters/redis"
	"github.com/careerhub/portal/internal/ports"
	"github.com/careerhub/portal/internal/service"
)

// Stores holds the session store and form guard, backed by Redis when a
// client is configured and by process memory otherwise.
type Stores struct {
	Sessions ports.SessionStore
	Forms    ports.FormGuard
	// Shared reports whether the stores survive restarts and are shared between instances.
	Shared bool
}

// BuildStores picks the store implementations for client.
func BuildStores(client redis.UniversalClient, logger *slog.Logger) Stores {
	if client == nil {
		if logger != nil {
			logger.Warn("redis not configured; sessions and form guards are kept in memory")
		}
		return Stores{Sessions: memstore.NewSessionStore(), Forms: memstore.NewFormGuard()}
	}
	return Stores{
		Sessions: redisadapter.NewSessionStoreWithPrefix(client, "session:"),
		Forms:    redisadapter.NewFormGuard(client),
		Shared:   true,
	}
}

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth     config.AuthConfig
	Session  config.SessionConfig
	Sessions ports.SessionStore
	API      *apiclient.Client
	Logger   *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("auth: session store is required")
	}

	provider, err := buildAuthProvider(cfg)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: cfg.Sessions,
		Roles:    authroles.StaticRoleMapper{AdminUserType: cfg.Auth.AdminUserType},
		TTL:      cfg.Session.TTL,
	}), nil
}

//nolint:ireturn // the provider is chosen by auth mode.
func buildAuthProvider(cfg AuthConfig) (ports.AuthProvider, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:   cfg.Auth.DevAuth.UserID,
			Name:     cfg.Auth.DevAuth.Name,
			UserType: cfg.Auth.DevAuth.UserType,
			Token:    cfg.Auth.DevAuth.Token,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		if cfg.Logger != nil {
			cfg.Logger.Warn("mock auth enabled; every login succeeds", "user_type", cfg.Auth.DevAuth.UserType)
		}
		return prov, nil

	case config.AuthModeRemote, "":
		if cfg.API == nil {
			return nil, errors.New("auth: remote mode requires an API client")
		}
		return cfg.API.Auth(), nil

	default:
		return nil, fmt.Errorf("auth: unsupported mode %q", cfg.Auth.Mode)
	}
}

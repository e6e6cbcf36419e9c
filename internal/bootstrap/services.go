package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerhub/portal/config"
	"github.com/careerhub/portal/internal/adapters/apiclient"
	"github.com/careerhub/portal/internal/service"
)

const shutdownWaitTimeout = 30 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	Jobs        *service.JobService
	AdminJobs   *service.AdminJobService
	Materials   *service.MaterialService
	Generations *service.Generations
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	API    *apiclient.Client
	Stores Stores
	Logger *slog.Logger
}

// NewServices wires every service over the API client and stores.
func NewServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("services: config is required")
	}
	if deps.API == nil {
		return ServiceContainer{}, errors.New("services: api client is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	auth, err := BuildAuthService(AuthConfig{
		Auth:     deps.Config.Auth,
		Session:  deps.Config.Session,
		Sessions: deps.Stores.Sessions,
		API:      deps.API,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Auth:      auth,
		Jobs:      service.NewJobService(service.JobServiceOptions{
			API:          deps.API.Jobs(),
			FetchTimeout: deps.Config.API.Timeout,
			Logger:       logger,
		}),
		AdminJobs: service.NewAdminJobService(service.AdminJobServiceOptions{API: deps.API.AdminJobs(), Logger: logger}),
		Materials: service.NewMaterialService(service.MaterialServiceOptions{
			API:    deps.API.Materials(),
			Guard:  deps.Stores.Forms,
			Logger: logger,
		}),
		Generations: service.NewGenerations(),
	}, nil
}

// Run connects infrastructure, serves HTTP and blocks until ctx is canceled,
// SIGINT/SIGTERM arrives or the server fails.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	redisClient, err := ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	api, err := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	services, err := NewServices(ServiceDeps{
		Config: cfg,
		API:    api,
		Stores: BuildStores(redisClient, logger),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	server, errCh, err := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Health:   redisHealth(redisClient),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, shutdownConfig{
		errCh:      errCh,
		httpServer: server,
		timeout:    cfg.HTTP.ShutdownTimeout,
		logger:     logger,
	})
}

// redisHealth pings the shared store; without Redis the portal is always ready.
func redisHealth(client redis.UniversalClient) func(context.Context) error {
	if client == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	errCh      <-chan error
	httpServer *http.Server
	timeout    time.Duration
	logger     *slog.Logger
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(ctx context.Context, cfg shutdownConfig) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		cfg.logger.Info("shutting down...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("http server error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains in-flight requests within the configured timeout.
func gracefulStop(cfg shutdownConfig) error {
	timeout := cfg.timeout
	if timeout <= 0 {
		timeout = shutdownWaitTimeout
	}
	// The parent context is already canceled on signal; shutdown gets a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return ShutdownHTTPServer(ShutdownConfig{
		Context: shutdownCtx,
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	})
}

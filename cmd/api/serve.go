// AngelaMos | 2026
// serve.go

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rental-api/internal/admin"
	"github.com/carterperez-dev/rental-api/internal/amenity"
	"github.com/carterperez-dev/rental-api/internal/auth"
	"github.com/carterperez-dev/rental-api/internal/core"
	"github.com/carterperez-dev/rental-api/internal/health"
	"github.com/carterperez-dev/rental-api/internal/middleware"
	"github.com/carterperez-dev/rental-api/internal/place"
	"github.com/carterperez-dev/rental-api/internal/review"
	"github.com/carterperez-dev/rental-api/internal/server"
	"github.com/carterperez-dev/rental-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func runServe(ctx context.Context, configPath string) error {
	cfg, logger, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	if cfg.Database.AutoMigrate {
		if migrateErr := core.Migrate(cfg.Database.URL, core.MigrateUp); migrateErr != nil {
			return migrateErr
		}
		logger.Info("database migrations applied")
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	hasher, err := core.NewPasswordHasher(cfg.Password)
	if err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
		"access_token_ttl", jwtManager.AccessTokenTTL(),
	)

	userCache := core.NewRedisCache(redis.Client, "rental:")

	userSvc := user.NewService(
		user.NewRepository(db.DB),
		hasher,
		userCache,
		cfg.Redis.UserCacheTTL,
	)
	authSvc := auth.NewService(jwtManager, hasher, userSvc)
	amenitySvc := amenity.NewService(amenity.NewRepository(db.DB))
	placeSvc := place.NewService(place.NewRepository(db.DB), userSvc)
	reviewSvc := review.NewService(review.NewRepository(db.DB), placeSvc, userSvc)

	userHandler := user.NewHandler(userSvc)
	authHandler := auth.NewHandler(authSvc)
	amenityHandler := amenity.NewHandler(amenitySvc)
	placeHandler := place.NewHandler(placeSvc)
	reviewHandler := review.NewHandler(reviewSvc)

	healthHandler := health.NewHandler(
		health.Dependency{Name: "database", Checker: db},
		health.Dependency{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Counters: map[string]admin.Counter{
			"users":     userSvc,
			"places":    placeSvc,
			"reviews":   reviewSvc,
			"amenities": amenitySvc,
		},
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if regErr := middleware.RegisterMetrics(registry); regErr != nil {
			return fmt.Errorf("register metrics: %w", regErr)
		}
	}

	router.Use(middleware.Observability(logger, cfg.Metrics.Enabled)...)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	if registry != nil {
		router.Handle(
			cfg.Metrics.Path,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		)
	}

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin(userSvc)

	authHandler.RegisterRoutes(router, authenticator)
	userHandler.RegisterRoutes(router, authenticator, adminOnly)
	amenityHandler.RegisterRoutes(router, authenticator, adminOnly)
	placeHandler.RegisterRoutes(
		router,
		authenticator,
		reviewHandler.PlaceRoutes(authenticator),
	)
	reviewHandler.RegisterRoutes(router, authenticator)
	adminHandler.RegisterRoutes(router, authenticator, adminOnly)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

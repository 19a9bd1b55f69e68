package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"spenzly/internal/config"
	"spenzly/internal/database"
	"spenzly/internal/repositories"
	"spenzly/internal/server"
	"spenzly/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

const invalidationStreamBreaker = "invalidation_stream"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	ledgerLogger := services.NewLedgerLogger(logger)

	bus := services.NewInProcessInvalidator()
	events, unsubscribe := bus.Subscribe(256)
	defer unsubscribe()
	go logInvalidations(ctx, logger, events)

	var notifier services.InvalidationNotifierInterface = bus
	var redisHealth redis.Cmdable
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		breakerConfig := services.DefaultCircuitBreakerConfig()
		breakerConfig.OnStateChange = func(from, to services.CircuitBreakerState) {
			ledgerLogger.LogCircuitBreakerStateChange(context.Background(), invalidationStreamBreaker, from.String(), to.String())
			metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": invalidationStreamBreaker})
		}

		stream := services.NewRedisInvalidator(
			redisClient,
			cfg.Redis.InvalidationStream,
			cfg.Redis.StreamMaxLen,
			services.NewCircuitBreaker(breakerConfig),
		)
		notifier = services.NewFanoutInvalidator(bus, stream)
		redisHealth = redisClient
		logger.Info("Publishing invalidations to Redis stream", "stream", cfg.Redis.InvalidationStream)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	ledger := services.NewLedgerService(
		userRepo,
		repositories.NewAccountRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		repositories.NewAuditLogRepository(db.DB),
		notifier,
		ledgerLogger,
		metrics,
	)

	identity := services.NewJWTIdentityResolver(&cfg.Identity)
	deps := server.Dependencies{
		Config:   cfg,
		Ledger:   ledger,
		Identity: identity,
		Metrics:  metrics,
		Database: db,
		Redis:    redisHealth,
		Registry: registry,
	}
	if cfg.Identity.PrivateKey != nil {
		deps.Sessions = identity
		deps.Users = userRepo
	}

	srv := server.New(deps)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(ctx)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	logger.Info("Server gracefully stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// logInvalidations drains the in-process bus so stale-view hints are visible
// in local logs.
func logInvalidations(ctx context.Context, logger *slog.Logger, events <-chan services.InvalidationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			logger.DebugContext(ctx, "view invalidated",
				"resource", event.Resource,
				"user_id", event.UserID,
				"reason", event.Reason,
			)
		}
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ppocha-economy/config"
	httpHandler "ppocha-economy/internal/adapter/http/handler"
	"ppocha-economy/internal/adapter/refdata"
	"ppocha-economy/internal/adapter/storage/memory"
	pgStorage "ppocha-economy/internal/adapter/storage/postgres"
	redisStorage "ppocha-economy/internal/adapter/storage/redis"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/internal/service"
	"ppocha-economy/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("PPOCHA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ppocha economy server")

	ctx := context.Background()

	data, err := refdata.Load(cfg.RefData, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	clock := service.SystemClock{}
	random := service.SystemRandom{}

	// Accounts always live in process memory; the ledger may move to Redis.
	accounts := memory.NewRegistry(clock)
	var ledger ports.Ledger = memory.NewLedger()

	var (
		checkers       []ports.HealthChecker
		rateLimitStore *redisStorage.RateLimitStore
		auditRepo      ports.AuditRepository
	)

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		ledger = redisStorage.NewLedger(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
	}

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare audit schema")
		}
		auditRepo = pgStorage.NewAuditRepository(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	// Initialize business services
	economySvc := service.NewEconomyService(accounts, ledger, data.Catalog, clock, random, log)
	leaderboardSvc := service.NewLeaderboardService(data.Rankings, random, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EconomySvc:     economySvc,
		LeaderboardSvc: leaderboardSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		AllowOrigin:    cfg.CORS.AllowOrigin,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/androidmobilestore/mnw-wallet/config"
	httpHandler "github.com/androidmobilestore/mnw-wallet/internal/adapter/http/handler"
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/rates"
	pgStorage "github.com/androidmobilestore/mnw-wallet/internal/adapter/storage/postgres"
	redisStorage "github.com/androidmobilestore/mnw-wallet/internal/adapter/storage/redis"
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/telegram"
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/tron"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/internal/service"
	"github.com/androidmobilestore/mnw-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting MNW Wallet")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	adminRepo := pgStorage.NewAdminRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	movementRepo := pgStorage.NewMovementRepo(pool)
	exchangeRepo := pgStorage.NewExchangeRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	tokenRepo := pgStorage.NewAdminTokenRepo(pool)
	reconRepo := pgStorage.NewReconciliationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	replayGuard := redisStorage.NewReplayGuard(rdb)

	// Initialize core services
	vaultSvc, err := service.NewVaultService(cfg.Vault.MasterSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key vault")
	}
	sessionSvc := service.NewJWTSessionService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	tokenSvc := service.NewAdminTokenService(tokenRepo, replayGuard, cfg.Telegram.PanelBaseURL, log)

	// Initialize outbound adapters
	httpClient := &http.Client{Timeout: 10 * time.Second}
	feedClient := rates.NewFeedClient(httpClient, cfg.Rates, log)
	chainClient := tron.NewClient(httpClient, cfg.Chain, log)
	notifier, err := telegram.NewNotifier(cfg.Telegram, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram notifier")
	}

	// Initialize business services
	oracle := service.NewRateOracle(feedClient, log)
	ledgerSvc := service.NewLedgerService(walletRepo, movementRepo, transactor, log)
	moneySvc := service.NewMoneyService(
		userRepo,
		walletRepo,
		movementRepo,
		exchangeRepo,
		withdrawalRepo,
		adminRepo,
		ledgerSvc,
		oracle,
		vaultSvc,
		chainClient,
		tokenSvc,
		notifier,
		transactor,
		cfg.Rates.MaxStaleness,
		log,
	)
	onboardingSvc := service.NewOnboardingService(userRepo, walletRepo, vaultSvc, sessionSvc, transactor, log)
	reconciler := service.NewReconcilerService(chainClient, userRepo, walletRepo, reconRepo, transactor, cfg.Chain.RequestTimeout, log)

	// Background workers
	go oracle.Run(ctx, cfg.Rates.RefreshInterval)
	go reconciler.Run(ctx, cfg.Chain.PollInterval)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		LedgerSvc:      ledgerSvc,
		MoneySvc:       moneySvc,
		SessionSvc:     sessionSvc,
		AdminTokenSvc:  tokenSvc,
		MovementRepo:   movementRepo,
		ExchangeRepo:   exchangeRepo,
		WithdrawalRepo: withdrawalRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

package handler

import (
	"github.com/androidmobilestore/mnw-wallet/internal/adapter/http/middleware"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OnboardingSvc  ports.OnboardingService
	LedgerSvc      ports.LedgerService
	MoneySvc       ports.MoneyService
	SessionSvc     ports.SessionService
	AdminTokenSvc  ports.AdminTokenService
	MovementRepo   ports.MovementRepository
	ExchangeRepo   ports.ExchangeRepository
	WithdrawalRepo ports.WithdrawalRepository
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Public routes (Telegram onboarding) ---
	onboardingHandler := NewOnboardingHandler(deps.OnboardingSvc)
	{
		v1.POST("/wallet/create", onboardingHandler.CreateWallet)
		v1.POST("/wallet/restore", onboardingHandler.RestoreWallet)
	}

	// --- Session-authenticated routes ---
	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.MoneySvc, deps.MovementRepo)
	moneyHandler := NewMoneyHandler(deps.MoneySvc)

	wallet := v1.Group("/wallet", sessionAuth)
	{
		wallet.GET("/balance", walletHandler.GetBalance)
		wallet.GET("/movements", walletHandler.ListMovements)
		wallet.POST("/send", walletHandler.Send)
	}

	authed := v1.Group("", sessionAuth)
	{
		authed.POST("/exchange", moneyHandler.Exchange)
		authed.POST("/transfer", moneyHandler.Transfer)
		authed.POST("/withdrawals", moneyHandler.RequestWithdrawal)
	}

	// --- Capability-link routes (token in query, no login) ---
	adminHandler := NewAdminHandler(deps.MoneySvc, deps.AdminTokenSvc, deps.ExchangeRepo, deps.WithdrawalRepo)
	admin := v1.Group("/admin")
	{
		admin.GET("/exchanges/:id", adminHandler.GetExchange)
		admin.PATCH("/exchanges/:id", adminHandler.ResolveExchange)
		admin.GET("/withdrawals/:id", adminHandler.GetWithdrawal)
		admin.PATCH("/withdrawals/:id", adminHandler.ResolveWithdrawal)
	}

	return r
}

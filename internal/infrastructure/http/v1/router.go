// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"driveledger/internal/domain/auth"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/domain/reports"
	"driveledger/internal/infrastructure/http/v1/handlers"
	"driveledger/internal/infrastructure/http/v1/middleware"
	"driveledger/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Ledger is the dealership ledger service
	Ledger *ledger.Service

	// Reports is the aggregation service
	Reports *reports.Service

	// Archive backs the readiness probe
	Archive ledger.Archive

	// ArchiveBackend names the configured archive for /health/info
	ArchiveBackend string

	// CurrencyCode is the ISO 4217 code used for display amounts
	CurrencyCode string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Archive, cfg.ArchiveBackend)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	baseHandler := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes: login is public, /auth/me requires a token
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
		publicAuth := v1.Group("/auth")
		protectedAuth := v1.Group("/auth")
		protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
		authHandler.RegisterRoutes(publicAuth, protectedAuth)

		// Everything else requires a valid token
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		handlers.NewVehicleHandler(baseHandler, cfg.Ledger, cfg.CurrencyCode).RegisterRoutes(protected)
		handlers.NewSaleHandler(baseHandler, cfg.Ledger, cfg.CurrencyCode).RegisterRoutes(protected)
		handlers.NewExpenseHandler(baseHandler, cfg.Ledger, cfg.CurrencyCode).RegisterRoutes(protected)
		handlers.NewReportsHandler(baseHandler, cfg.Reports, cfg.CurrencyCode).RegisterRoutes(protected.Group("/reports"))
		handlers.NewExportHandler(baseHandler, cfg.Ledger).RegisterRoutes(protected.Group("/export"))
	}

	return router
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/familiasoares/imobicrm/config"
	"github.com/familiasoares/imobicrm/pkg/api/handlers"
	custommw "github.com/familiasoares/imobicrm/pkg/api/middleware"
	"github.com/familiasoares/imobicrm/pkg/billing"
	"github.com/familiasoares/imobicrm/pkg/cache"
	"github.com/familiasoares/imobicrm/pkg/dashboard"
	"github.com/familiasoares/imobicrm/pkg/database"
	"github.com/familiasoares/imobicrm/pkg/email"
	"github.com/familiasoares/imobicrm/pkg/export"
	importpkg "github.com/familiasoares/imobicrm/pkg/import"
	"github.com/familiasoares/imobicrm/pkg/jobs"
	"github.com/familiasoares/imobicrm/pkg/leads"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/metrics"
	custommiddleware "github.com/familiasoares/imobicrm/pkg/middleware"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CustomValidator wires go-playground/validator into echo's c.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load configuration
	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel)
	appLog.Info("configuration loaded", "environment", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			appLog.Warn("failed to initialize sentry", "error", err)
		} else {
			appLog.Info("sentry initialized")
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()

	// Domain services
	emailService := email.NewService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, cfg.FrontendURL, appLog)

	var stripeProvider *billing.StripeProvider
	var billingProvider billing.Provider
	if cfg.BillingMock {
		billingProvider = billing.NewMockProvider(cfg.FrontendURL)
		appLog.Info("billing running in mock mode")
	} else {
		stripeProvider = billing.NewStripeProvider(&billing.StripeConfig{
			SecretKey:         cfg.StripeSecretKey,
			WebhookSecret:     cfg.StripeWebhookSecret,
			PriceEssencial:    cfg.StripePriceEssencial,
			PriceProfissional: cfg.StripePricePro,
			SuccessURL:        cfg.FrontendURL + "/planos/sucesso",
			CancelURL:         cfg.FrontendURL + "/planos",
		})
		billingProvider = stripeProvider
	}
	billingService := billing.NewService(db.Ent, billingProvider, appLog)

	leadService := leads.NewService(db.Ent, redisClient, prometheusMetrics, appLog)
	pipelineService := pipeline.NewService(db.Ent, redisClient, prometheusMetrics, appLog)
	dashboardService := dashboard.NewService(db.Ent, redisClient, prometheusMetrics, appLog)
	exportService := export.NewService(db.Ent)
	importService := importpkg.NewCSVImportService(db.Ent)

	// Handlers
	authHandler := handlers.NewAuthHandler(db.Ent, emailService, prometheusMetrics, appLog, cfg.JWTSecret, cfg.JWTExpirationHours)
	leadHandler := handlers.NewLeadHandler(leadService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	billingHandler := handlers.NewBillingHandler(billingService, stripeProvider, appLog)
	transferHandler := handlers.NewTransferHandler(exportService, importService)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // login/register are brute-force targets

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLog.Info("request", "method", c.Request().Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "ImobiCRM API",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
	auth.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())

	// Billing webhook is public; Stripe authenticates via signature.
	v1.POST("/billing/webhook", billingHandler.Webhook)
	v1.GET("/billing/pricing", billingHandler.Pricing)

	// Authenticated routes
	api := v1.Group("")
	api.Use(custommw.JWTMiddleware(cfg.JWTSecret))

	api.GET("/auth/me", authHandler.Me)

	api.POST("/leads", leadHandler.Create)
	api.GET("/leads", leadHandler.List)
	api.GET("/leads/export", transferHandler.Export)
	api.POST("/leads/import", transferHandler.Import)
	api.GET("/leads/:id", leadHandler.Get)
	api.PATCH("/leads/:id", leadHandler.Update)
	api.DELETE("/leads/:id", leadHandler.DeleteForever)
	api.POST("/leads/:id/archive", leadHandler.Archive)
	api.POST("/leads/:id/reactivate", leadHandler.Reactivate)
	api.POST("/leads/bulk/archive", leadHandler.BulkArchive)
	api.POST("/leads/bulk/reactivate", leadHandler.BulkReactivate)
	api.POST("/leads/bulk/delete", leadHandler.BulkDeleteForever)

	api.PATCH("/leads/:id/status", pipelineHandler.Transition)
	api.POST("/leads/:id/notes", pipelineHandler.AddNote)
	api.GET("/leads/:id/history", pipelineHandler.History)
	api.GET("/board", pipelineHandler.Board)

	api.GET("/dashboard", dashboardHandler.Overview)

	api.POST("/billing/checkout", billingHandler.Checkout)
	api.GET("/billing/subscription", billingHandler.Subscription)
	api.POST("/billing/cancel", billingHandler.Cancel)

	// Cron jobs
	cronManager := jobs.NewCronManager(db.Ent, billingService, dashboardService, emailService, appLog)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("failed to set up cron jobs: %v", err)
	}
	cronManager.Start()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	appLog.Info("server starting",
		"address", address,
		"rate_limit_per_minute", cfg.RateLimitRequestsPerMinute,
		"jwt_expiration_hours", cfg.JWTExpirationHours)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	cronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	appLog.Info("server stopped")
}

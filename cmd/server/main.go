package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/adapter/cache"
	"github.com/seu-repo/passlog/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/passlog/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/passlog/internal/adapter/render/charts"
	"github.com/seu-repo/passlog/internal/adapter/render/pdfdoc"
	"github.com/seu-repo/passlog/internal/adapter/storage/csvstore"
	"github.com/seu-repo/passlog/internal/ports"
	"github.com/seu-repo/passlog/internal/service/auth"
	"github.com/seu-repo/passlog/internal/service/eventlog"
	"github.com/seu-repo/passlog/internal/service/export"
	"github.com/seu-repo/passlog/internal/service/health"
	"github.com/seu-repo/passlog/internal/service/report"
	"github.com/seu-repo/passlog/internal/service/roster"
	"github.com/seu-repo/passlog/internal/service/timeslot"
	"github.com/seu-repo/passlog/pkg/config"
)

const serviceName = "passlog"

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Starting passlog",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
	)

	// 3. Initialize Cache (Redis when configured, in-memory otherwise)
	var appCache ports.Cache
	if cfg.Cache.RedisURL != "" {
		appCache, err = cache.NewRedisCache(cfg.Cache.RedisURL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to local cache", zap.Error(err))
			appCache = cache.NewLocalCache(cfg.Cache.CleanupInterval, logger)
		}
	} else {
		appCache = cache.NewLocalCache(cfg.Cache.CleanupInterval, logger)
	}
	defer appCache.Close()

	// 4. Initialize CSV Store and Repositories
	store, err := csvstore.NewStore(cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	eventRepo := csvstore.NewEventRepository(store, logger)
	groupRepo := csvstore.NewGroupRepository(store, logger)
	slotRepo := timeslot.NewCachedRepository(csvstore.NewTimeSlotRepository(store, logger), appCache, cfg.Cache.TTL, logger)

	// 5. Initialize Renderers
	chartRenderer := charts.NewRenderer(logger)
	docBuilder := pdfdoc.NewBuilder(logger)

	// 6. Initialize Services (Business Logic Layer)
	authService := auth.NewService(cfg.Admin, cfg.JWT, logger)
	rosterService := roster.NewService(groupRepo, appCache, cfg.Cache.TTL, logger)
	eventService := eventlog.NewService(eventRepo, logger)
	reportService := report.NewService(eventRepo, slotRepo, chartRenderer, docBuilder, cfg.Report, logger)
	exportService := export.NewService(store, logger)

	// 7. Initialize Health Checks
	healthService := health.NewService(cfg.App.Version, logger)
	healthService.RegisterChecker("data_dir", health.DataDirChecker(cfg.Storage.DataDir))
	healthService.RegisterChecker("cache", health.CacheChecker(appCache))

	// 8. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		BodyLimit:             cfg.HTTP.BodyLimit,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if cfg.HTTP.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.HTTP.RateLimit,
			Expiration: time.Minute,
		}))
	}

	// Health Check Endpoints
	health.NewHandler(healthService).RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)

	// Roster routes
	rosterHandler := handlers.NewRosterHandler(rosterService, logger)
	v1.Get("/groups", rosterHandler.List)
	v1.Get("/groups/:group/members", rosterHandler.Members)

	// Event routes
	eventHandler := handlers.NewEventHandler(eventService, logger)
	v1.Post("/events", eventHandler.Submit)
	v1.Get("/events", eventHandler.ListToday)
	v1.Put("/events", eventHandler.Update)
	v1.Delete("/events", eventHandler.Delete)

	// Report routes
	reportHandler := handlers.NewReportHandler(reportService, logger)
	v1.Post("/reports", reportHandler.Generate)

	// Admin routes (protected)
	adminHandler := handlers.NewAdminHandler(rosterService, exportService, logger)
	admin := v1.Group("/admin", middleware.AuthRequired(authService))
	admin.Put("/groups/:group", adminHandler.UploadRoster)
	admin.Get("/events.csv", adminHandler.EventsCSV)
	admin.Get("/export.zip", adminHandler.ExportZip)

	// 9. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 10. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"domainfolio/internal/adapters/cache"
	"domainfolio/internal/adapters/http/middleware"
	"domainfolio/internal/adapters/http/routes"
	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/config"
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	_ "domainfolio/docs" // Swagger docs
)

// @title domainfolio API
// @version 1.0
// @description Domain name portfolio tracker: domains, sales, evaluations, settings and ROI.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.AppMode, cfg.LogLevel)

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}
	log.Info().Msg("database migration completed")

	if err := config.NewSeeder(db, cfg.Admin).Run(); err != nil {
		log.Warn().Err(err).Msg("database seeding failed")
	}

	// Optional settings cache
	var settingsCache services.SettingsCache
	if cfg.CacheEnabled() {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, settings cache disabled")
			_ = redisCache.Close()
		} else {
			settingsCache = redisCache
			defer redisCache.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Msg("settings cache enabled")
		}
		cancel()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "domainfolio API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, settingsCache)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}

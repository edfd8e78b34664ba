package routes

import (
	"domainfolio/internal/adapters/http/handlers"
	"domainfolio/internal/adapters/http/middleware"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/config"
	"domainfolio/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Domain     *handlers.DomainHandler
	Evaluation *handlers.EvaluationHandler
	Sale       *handlers.SaleHandler
	Settings   *handlers.SettingsHandler
	Stats      *handlers.StatsHandler
}

// Setup configures all routes for the application. settingsCache may be nil.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, settingsCache services.SettingsCache) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	domainRepo := repositories.NewDomainRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	evaluationRepo := repositories.NewEvaluationRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	settingsService := services.NewSettingsService(settingsRepo, settingsCache)
	domainService := services.NewDomainService(domainRepo, settingsService)
	evaluationService := services.NewEvaluationService(evaluationRepo, domainRepo)
	saleService := services.NewSaleService(saleRepo)
	statsService := services.NewStatsService(domainRepo, saleRepo, evaluationRepo)

	// Initialize handlers
	h := &Handlers{
		Health:     handlers.NewHealthHandler(db, cfg),
		Auth:       handlers.NewAuthHandler(authService),
		Domain:     handlers.NewDomainHandler(domainService),
		Evaluation: handlers.NewEvaluationHandler(evaluationService),
		Sale:       handlers.NewSaleHandler(saleService),
		Settings:   handlers.NewSettingsHandler(settingsService),
		Stats:      handlers.NewStatsHandler(statsService),
	}

	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// One auth middleware and one login/register budget shared by both mounts
	auth := middleware.AuthMiddleware(cfg)
	authLimiter := middleware.AuthRateLimiter(cfg.AuthRateLimit)

	// The API is served both at the root and under /api
	setupAPIRoutes(app, h, auth, authLimiter)
	setupAPIRoutes(app.Group("/api"), h, auth, authLimiter)
}

// setupAPIRoutes configures the API on router
func setupAPIRoutes(router fiber.Router, h *Handlers, auth, authLimiter fiber.Handler) {
	setupAuthRoutes(router.Group("/auth"), h.Auth, auth, authLimiter)
	setupDomainRoutes(router.Group("/domains"), h.Domain, auth)
	setupEvaluationRoutes(router.Group("/evaluations"), h.Evaluation)

	// Authenticated groups
	router.Get("/sales", auth, middleware.NoCacheHeaders(), h.Sale.List)
	router.Get("/stats/roi", auth, middleware.NoCacheHeaders(), h.Stats.ROI)

	settingsRoutes := router.Group("/settings", auth)
	settingsRoutes.Get("/", middleware.NoCacheHeaders(), h.Settings.Get)
	settingsRoutes.Put("/", h.Settings.Update)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, auth, authLimiter fiber.Handler) {
	// Public routes
	router.Post("/register", authLimiter, handler.Register)
	router.Post("/login", authLimiter, handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/verify", auth, handler.Verify)
}

// setupDomainRoutes configures domain routes
func setupDomainRoutes(router fiber.Router, handler *handlers.DomainHandler, auth fiber.Handler) {
	// Public routes
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/view", handler.View)
	router.Get("/export", handler.Export)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)

	// Batch routes (authenticated)
	router.Post("/batch/delete", auth, handler.BatchDelete)
	router.Post("/batch/update", auth, handler.BatchUpdate)
	router.Post("/batch/create", auth, handler.BatchCreate)
	router.Post("/import", auth, handler.Import)
}

// setupEvaluationRoutes configures evaluation routes
func setupEvaluationRoutes(router fiber.Router, handler *handlers.EvaluationHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Delete("/:id", handler.Delete)
}

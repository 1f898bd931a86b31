package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/securesign/securesign/internal/auth"
	"github.com/securesign/securesign/internal/config"
	"github.com/securesign/securesign/internal/identity"
	"github.com/securesign/securesign/internal/middleware"
	"github.com/securesign/securesign/internal/tenant"
)

// Deps aggregates shared dependencies required to wire routes. A nil DB
// selects the in-memory stores; a nil Cache disables idempotency replay.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	var identityRepo identity.Repository
	var tenantRepo tenant.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		tenantRepo = tenant.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		tenantRepo = tenant.NewMemoryRepository()
	}

	identitySvc := identity.NewService(identityRepo)
	tokenSvc := auth.NewTokenService(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	authHandler := auth.NewHandler(identitySvc, tokenSvc)
	tenantHandler := tenant.NewHandler(tenant.NewService(tenantRepo))

	api := app.Group("/api")

	RegisterHealthRoutes(api)
	RegisterAuthRoutes(api, authHandler)
	RegisterTenantRoutes(api, tenantHandler)

	// Protected routes
	bearer := middleware.BearerAuth(tokenSvc)
	api.Get("/me", bearer, authHandler.Me)

	app.Static("/", "./web")

	return nil
}

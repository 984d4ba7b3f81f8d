package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/authware/rbac-service/internal/api/handler"
	"github.com/authware/rbac-service/internal/api/middleware"
	"github.com/authware/rbac-service/internal/core/domain"
	"github.com/authware/rbac-service/internal/core/ports"
	"github.com/authware/rbac-service/internal/core/service"
	"github.com/authware/rbac-service/internal/infrastructure/config"
	"github.com/authware/rbac-service/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Mongo and Redis are only used by
// the readiness probe and may be nil in tests.
type Deps struct {
	Users ports.UserRepository
	Roles ports.RoleRegistry
	Mongo *mongo.Database
	Redis *redis.Client
	Cfg   *config.Config
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Core services ---
	tokens := service.NewTokenService(d.Cfg.JWTSecret, d.Cfg.TokenTTL, d.Log)
	hasher := service.NewBcryptHasher(d.Cfg.HashCost)
	authService := service.NewAuthService(d.Users, d.Roles, hasher, tokens, d.Log)
	gate := service.NewAuthorizer(tokens)

	authHandler := handler.NewAuthHandler(authService)
	protectedHandler := handler.NewProtectedHandler()

	// --- Routes ---
	e.GET("/", protectedHandler.Root)

	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/protected", protectedHandler.Protected, middleware.Authorize(gate))
	api.GET("/admin", protectedHandler.Admin, middleware.Authorize(gate, domain.RoleAdmin))
	api.GET("/user", protectedHandler.User, middleware.Authorize(gate, domain.RoleUser, domain.RoleAdmin))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	if d.Mongo != nil && d.Redis != nil {
		e.GET("/health/ready", handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis).Readiness)
	}

	return e
}

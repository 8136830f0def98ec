package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/justdogs/training-system/docs"
	"github.com/justdogs/training-system/internal/api/handler"
	"github.com/justdogs/training-system/internal/api/middleware"
	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
	"github.com/justdogs/training-system/internal/core/service"
	mongodb "github.com/justdogs/training-system/internal/infrastructure/db/mongo"
)

// Dependencies carries everything the router needs to assemble handlers.
// Redis is nil when the local identity backend is active.
type Dependencies struct {
	Log      zerolog.Logger
	Identity ports.IdentityService
	Repos    *mongodb.Repositories
	Mongo    *mongodriver.Database
	Redis    *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("justdogs"))

	// --- Services ---
	log := deps.Log
	repos := deps.Repos
	userService := service.NewUserService(repos.Users, log)
	messageService := service.NewMessageService(repos.Messages, log)
	dogService := service.NewDogService(repos.Dogs, log)
	bookingService := service.NewBookingService(repos.Bookings, repos.Dogs, log)
	sessionService := service.NewTrainingSessionService(repos.Sessions, repos.Bookings, log)
	invoiceService := service.NewInvoiceService(repos.Invoices, log)
	statsService := service.NewStatsService(repos.Users, repos.Dogs, repos.Bookings, repos.Invoices, repos.Messages, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Identity)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewMessageHandler(messageService)
	dogHandler := handler.NewDogHandler(dogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	sessionHandler := handler.NewTrainingSessionHandler(sessionService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	statsHandler := handler.NewStatsHandler(statsService)

	authed := middleware.Auth(deps.Identity)
	staffOnly := middleware.RequireRole(domain.RoleTrainer)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password/reset", authHandler.ResetPassword)
	e.POST("/auth/logout", authHandler.Logout, authed)
	e.GET("/auth/me", authHandler.Me, authed)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authed)
	e.PUT("/auth/password", authHandler.UpdatePassword, authed)

	// --- Versioned API (all authenticated) ---
	v1 := e.Group("/v1", authed)

	v1.GET("/users", userHandler.List, staffOnly)
	v1.GET("/users/:id", userHandler.Get)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)

	v1.POST("/messages", messageHandler.Send)
	v1.GET("/messages", messageHandler.List)
	v1.GET("/messages/unread", messageHandler.Unread)
	v1.GET("/messages/:id", messageHandler.Get)
	v1.POST("/messages/:id/read", messageHandler.MarkRead)
	v1.DELETE("/messages/:id", messageHandler.Delete)

	v1.POST("/dogs", dogHandler.Create)
	v1.GET("/dogs", dogHandler.List)
	v1.GET("/dogs/:id", dogHandler.Get)
	v1.PUT("/dogs/:id", dogHandler.Update)
	v1.DELETE("/dogs/:id", dogHandler.Delete)

	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings", bookingHandler.List)
	v1.GET("/bookings/:id", bookingHandler.Get)
	v1.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

	v1.POST("/sessions", sessionHandler.Record, staffOnly)
	v1.GET("/sessions", sessionHandler.List)
	v1.GET("/sessions/:id", sessionHandler.Get)

	v1.POST("/invoices", invoiceHandler.Issue, staffOnly)
	v1.GET("/invoices", invoiceHandler.List)
	v1.GET("/invoices/:id", invoiceHandler.Get)
	v1.PATCH("/invoices/:id/status", invoiceHandler.UpdateStatus, staffOnly)

	v1.GET("/stats/dashboard", statsHandler.Dashboard, adminOnly)
	v1.GET("/stats/trainer", statsHandler.Trainer, staffOnly)
	v1.GET("/stats/parent", statsHandler.Parent)

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/talentscreen/screening-api/internal/api/handler"
	"github.com/talentscreen/screening-api/internal/api/middleware"
	"github.com/talentscreen/screening-api/internal/core/ports"
	"github.com/talentscreen/screening-api/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	authService ports.AuthService,
	submissionService ports.SubmissionService,
	docs ports.DocumentStore,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	e.Use(echoprometheus.NewMiddleware("screening"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	submissionHandler := handler.NewSubmissionHandler(submissionService, docs)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DataDir, cfg.ResumesDir)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/submissions", submissionHandler.Submit)
	v1.GET("/submissions/ranked", submissionHandler.Ranked, middleware.AdminOnly())
	v1.GET("/resumes/:filename", submissionHandler.Download, middleware.AdminOnly())

	// --- Probes & metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

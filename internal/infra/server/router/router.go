// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/integration/entrypoint/controller"
	"github.com/inkprofit/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	settingsController *controller.SettingsController
	pricingController  *controller.PricingController
	clientController   *controller.ClientController
	proposalController *controller.ProposalController
	reportController   *controller.ReportController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	settingsController *controller.SettingsController,
	pricingController *controller.PricingController,
	clientController *controller.ClientController,
	proposalController *controller.ProposalController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		settingsController: settingsController,
		pricingController:  pricingController,
		clientController:   clientController,
		proposalController: proposalController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
	}

	// Everything below requires the owner token when authentication is enabled
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	settings := protected.Group("/settings")
	{
		settings.GET("/cost-profile", r.settingsController.GetCostProfile)
		settings.PUT("/cost-profile", r.settingsController.UpdateCostProfile)
		settings.GET("/studio-profile", r.settingsController.GetStudioProfile)
		settings.PUT("/studio-profile", r.settingsController.UpdateStudioProfile)
	}

	pricing := protected.Group("/pricing")
	{
		pricing.GET("/catalog", r.pricingController.Catalog)
		pricing.POST("/quote", r.pricingController.Quote)
		pricing.POST("/analysis", r.pricingController.Analyze)
		pricing.POST("/sales-pitch", r.pricingController.SalesPitch)
	}

	clients := protected.Group("/clients")
	{
		clients.GET("", r.clientController.List)
		clients.POST("", r.clientController.Create)
		clients.GET("/:id", r.clientController.Get)
		clients.PUT("/:id", r.clientController.Update)
		clients.DELETE("/:id", r.clientController.Delete)
	}

	proposals := protected.Group("/proposals")
	{
		proposals.GET("", r.proposalController.List)
		proposals.POST("", r.proposalController.Save)
		proposals.GET("/:id", r.proposalController.Get)
		proposals.DELETE("/:id", r.proposalController.Delete)
		proposals.POST("/:id/close", r.proposalController.Close)
		proposals.POST("/:id/share", r.proposalController.Share)
		proposals.GET("/:id/documents/:type", r.proposalController.Document)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/financial", r.reportController.Financial)
	}
}

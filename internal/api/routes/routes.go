package routes

import (
	"internmatch/internal/api/handlers"
	"internmatch/internal/api/middleware"
	"internmatch/internal/config"
	"internmatch/internal/recommend"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, engine *recommend.Engine) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimit(cfg.Recommender.RateLimit))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler(engine))
		health.GET("/ready", handlers.ReadinessHandler(engine))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(engine))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/recommend", handlers.RecommendHandler(engine))
		v1.GET("/sectors", handlers.SectorsHandler(engine))
		v1.GET("/locations", handlers.LocationsHandler(engine))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Internship Recommendation API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

package handlers

import (
	"net/http"
	"time"

	"internmatch/internal/logging"
	"internmatch/internal/recommend"
	"internmatch/pkg/models"
	"internmatch/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.LogWithRequestID(requestIDFrom(c))
		logger.Debug("Health check requested")

		response := models.HealthResponse{
			Status:        "healthy",
			Timestamp:     time.Now(),
			Version:       serviceVersion,
			Uptime:        time.Since(startTime),
			CatalogLoaded: engine.Ready(),
			TotalPostings: engine.Count(),
			Checks: map[string]string{
				"api": "ok",
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}

// ReadinessHandler handles readiness probe requests. Readiness tracks the
// catalog: a failed load leaves the service up but not ready.
func ReadinessHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ready"
		httpStatus := http.StatusOK
		catalogCheck := "ok"
		if !engine.Ready() {
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
			catalogCheck = "catalog not loaded"
		}

		response := models.HealthResponse{
			Status:        status,
			Timestamp:     time.Now(),
			Version:       serviceVersion,
			Uptime:        time.Since(startTime),
			CatalogLoaded: engine.Ready(),
			TotalPostings: engine.Count(),
			Checks: map[string]string{
				"api":     "ok",
				"catalog": catalogCheck,
			},
		}

		return c.JSON(httpStatus, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		catalogState := "loaded"
		if !engine.Ready() {
			catalogState = "not loaded"
		}

		response := models.HealthResponse{
			Status:        "operational",
			Timestamp:     time.Now(),
			Version:       serviceVersion,
			Uptime:        time.Since(startTime),
			CatalogLoaded: engine.Ready(),
			TotalPostings: engine.Count(),
			Checks: map[string]string{
				"api":     "operational",
				"catalog": catalogState,
				"uptime":  utils.FormatDuration(time.Since(startTime)),
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}

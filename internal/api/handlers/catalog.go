package handlers

import (
	"errors"
	"net/http"
	"time"

	"internmatch/internal/recommend"
	"internmatch/pkg/models"

	"github.com/labstack/echo/v4"
)

// SectorsHandler lists the distinct sectors available in the catalog
func SectorsHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		sectors, err := engine.Sectors()
		if err != nil {
			return notReadyResponse(c, err)
		}
		return c.JSON(http.StatusOK, models.SectorsResponse{Sectors: sectors})
	}
}

// LocationsHandler lists the distinct locations available in the catalog
func LocationsHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		locations, err := engine.Locations()
		if err != nil {
			return notReadyResponse(c, err)
		}
		return c.JSON(http.StatusOK, models.LocationsResponse{Locations: locations})
	}
}

func notReadyResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	code := "catalog_query_failed"
	if errors.Is(err, recommend.ErrNotReady) {
		status = http.StatusServiceUnavailable
		code = "service_not_ready"
	}
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		RequestID: requestIDFrom(c),
		Timestamp: time.Now(),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"internmatch/internal/api/validation"
	"internmatch/internal/logging"
	"internmatch/internal/recommend"
	"internmatch/pkg/models"
	"internmatch/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterProfileValidators(v)
	return v
}

// RecommendHandler handles recommendation requests against the engine
func RecommendHandler(engine *recommend.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFrom(c)
		logger := logging.LogWithRequestID(requestID)

		var profile models.UserProfile
		if err := c.Bind(&profile); err != nil {
			logger.Warn("Failed to bind profile", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&profile); err != nil {
			logger.Warn("Profile validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		recommendations, err := engine.Recommend(&profile)
		if err != nil {
			switch {
			case errors.Is(err, recommend.ErrNotReady):
				return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
					Error:     "service_not_ready",
					Message:   "Recommendation service is not ready. Please try again later.",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			case errors.Is(err, recommend.ErrEmptyResult):
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "no_matches",
					Message:   "No suitable internships found. Please try adjusting your preferences.",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			default:
				logger.Error("Recommendation pipeline failed", map[string]interface{}{"error": err.Error()})
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:     "recommendation_failed",
					Message:   "Failed to generate recommendations",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
		}

		logger.Info("Recommendation request completed", map[string]interface{}{
			"matches":         len(recommendations),
			"education_level": string(profile.EducationLevel),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.RecommendResponse{
			UserName:        profile.Name,
			Recommendations: recommendations,
			TotalMatches:    len(recommendations),
			GeneratedAt:     time.Now(),
			RequestID:       requestID,
		})
	}
}

// requestIDFrom returns the request ID set by the validation middleware,
// generating one for requests that bypassed it.
func requestIDFrom(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

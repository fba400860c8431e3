package middleware

import (
	"net/http"
	"time"

	"internmatch/pkg/models"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit enforces a process-wide token bucket of perMinute requests.
// A non-positive limit disables limiting.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}

package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/i474232898/india-weather-history/internal/cities"
	"github.com/i474232898/india-weather-history/internal/store"
	"github.com/i474232898/india-weather-history/internal/weather"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, weather.ErrInvalidRange), errors.Is(err, weather.ErrInvalidCoordinate):
		return fiber.StatusBadRequest
	case errors.Is(err, cities.ErrCityNotFound), errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrNoProviders):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, weather.ErrProvidersFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler returns the centralized Fiber error handler. Server errors are
// logged with the request id and reported without internal detail.
func ErrorHandler(logger *zap.SugaredLogger) fiber.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)
		msg := err.Error()
		if code >= fiber.StatusInternalServerError {
			logger.Errorw("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"requestId", c.GetRespHeader(fiber.HeaderXRequestID),
				"error", err,
			)
			if code == fiber.StatusInternalServerError {
				msg = "internal server error"
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": msg,
		})
	}
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/response"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Typed domain failures carry their own HTTP and business codes.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Dependency failures are operational faults; client input and
		// conflict errors are not.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

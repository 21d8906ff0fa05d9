package handler

import (
	"errors"
	"net/http"

	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondError maps service errors onto HTTP status codes. Unknown errors
// are logged and hidden behind a 500.
func respondError(c echo.Context, log logger.Logger, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrValidation), errors.Is(err, appErrors.ErrInvalidDateTime):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, appErrors.ErrMonthlyLimitExceeded):
		return c.JSON(http.StatusForbidden, errorResponse{
			Error: "Monthly reminder limit reached. Upgrade to premium for unlimited reminders.",
			Code:  appErrors.CodeMonthlyLimitExceeded,
		})
	case errors.Is(err, appErrors.ErrReminderNotFound), errors.Is(err, appErrors.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, appErrors.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		log.Error("Request failed", err, "method", c.Request().Method, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: appErrors.ErrInternalServer.Error()})
	}
}

// bindJSON decodes the body and reports malformed input as a validation error.
func bindJSON(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return errors.Join(appErrors.ErrValidation, err)
	}
	return nil
}

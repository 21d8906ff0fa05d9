package handler

import (
	"net/http"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/service"
	"rudereminder/internal/interfaces/api/middleware"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the session and profile endpoints.
type UserHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// SyncSession handles POST /api/session.
func (h *UserHandler) SyncSession(c echo.Context) error {
	var req dto.SessionRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	u, err := h.userService.SyncSession(c.Request().Context(), middleware.UserID(c), middleware.Email(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Me handles GET /api/me.
func (h *UserHandler) Me(c echo.Context) error {
	u, err := h.userService.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// UpdatePreferences handles PATCH /api/me/preferences.
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	var req dto.UpdatePreferencesRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	u, err := h.userService.UpdatePreferences(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

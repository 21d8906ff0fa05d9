package handler

import (
	"net/http"
	"strconv"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/service"
	"rudereminder/internal/interfaces/api/middleware"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler serves /api/reminders.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, log: log}
}

// Create handles POST /api/reminders. Multi-day requests return one
// reminder per selected day.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	created, err := h.reminderService.CreateReminder(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /api/reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	list, err := h.reminderService.ListReminders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/reminders/:id.
func (h *ReminderHandler) Get(c echo.Context) error {
	r, err := h.reminderService.GetReminder(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Update handles PATCH /api/reminders/:id.
func (h *ReminderHandler) Update(c echo.Context) error {
	var req dto.UpdateReminderRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	r, err := h.reminderService.UpdateReminder(c.Request().Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /api/reminders/:id.
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.reminderService.DeleteReminder(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete handles POST /api/reminders/:id/complete.
func (h *ReminderHandler) Complete(c echo.Context) error {
	r, err := h.reminderService.CompleteReminder(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// GenerateResponse handles POST /api/reminders/:id/generate-response.
func (h *ReminderHandler) GenerateResponse(c echo.Context) error {
	r, err := h.reminderService.RegenerateResponse(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// MoreResponses handles GET /api/reminders/:id/more-responses?refresh=true.
func (h *ReminderHandler) MoreResponses(c echo.Context) error {
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))
	out, err := h.reminderService.MoreResponses(c.Request().Context(), middleware.UserID(c), c.Param("id"), refresh)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

package handler

import (
	"net/http"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/service"
	"rudereminder/internal/interfaces/api/middleware"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// VoiceHandler serves the persona catalog and voice tests.
type VoiceHandler struct {
	voiceService service.VoiceService
	log          logger.Logger
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(voiceService service.VoiceService, log logger.Logger) *VoiceHandler {
	return &VoiceHandler{voiceService: voiceService, log: log}
}

// List handles GET /api/voices.
func (h *VoiceHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.voiceService.Catalog())
}

// Test handles POST /api/voices/test.
func (h *VoiceHandler) Test(c echo.Context) error {
	var req dto.VoiceTestRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	payload, err := h.voiceService.Test(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, payload)
}

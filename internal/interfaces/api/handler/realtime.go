package handler

import (
	"net/http"

	"rudereminder/internal/infrastructure/realtime"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RealtimeHandler upgrades clients onto the broadcast hub.
type RealtimeHandler struct {
	hub *realtime.Hub
	log logger.Logger
}

// NewRealtimeHandler creates a new RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub, log logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, log: log}
}

// Connect handles GET /ws. The upgrader writes its own error response.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	if err := h.hub.ServeWS(c.Response(), c.Request()); err != nil {
		h.log.Warn("WebSocket upgrade failed", "error", err.Error())
	}
	return nil
}

// Health handles GET /healthz.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

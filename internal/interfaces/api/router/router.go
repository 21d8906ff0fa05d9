package router

import (
	"fmt"
	"net/http"

	"rudereminder/internal/config"
	"rudereminder/internal/interfaces/api/handler"
	appMiddleware "rudereminder/internal/interfaces/api/middleware"
	"rudereminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	UserHandler     *handler.UserHandler
	VoiceHandler    *handler.VoiceHandler
	RealtimeHandler *handler.RealtimeHandler
	JWTSecret       string
	RateLimit       config.RateLimit
	Redis           *redis.Client // nil disables rate limiting
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/healthz", handler.Health)

	auth := appMiddleware.JWTAuth(cfg.JWTSecret)
	e.GET("/ws", cfg.RealtimeHandler.Connect, auth)

	api := e.Group("/api", auth, appMiddleware.RateLimit(cfg.RateLimit, cfg.Redis, cfg.Logger))

	api.POST("/session", cfg.UserHandler.SyncSession)
	api.GET("/me", cfg.UserHandler.Me)
	api.PATCH("/me/preferences", cfg.UserHandler.UpdatePreferences)

	api.GET("/voices", cfg.VoiceHandler.List)
	api.POST("/voices/test", cfg.VoiceHandler.Test)

	reminders := api.Group("/reminders")
	reminders.POST("", cfg.ReminderHandler.Create)
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.GET("/:id", cfg.ReminderHandler.Get)
	reminders.PATCH("/:id", cfg.ReminderHandler.Update)
	reminders.PUT("/:id", cfg.ReminderHandler.Update)
	reminders.DELETE("/:id", cfg.ReminderHandler.Delete)
	reminders.PATCH("/:id/complete", cfg.ReminderHandler.Complete)
	reminders.POST("/:id/complete", cfg.ReminderHandler.Complete)
	reminders.POST("/:id/generate-response", cfg.ReminderHandler.GenerateResponse)
	reminders.GET("/:id/more-responses", cfg.ReminderHandler.MoreResponses)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}

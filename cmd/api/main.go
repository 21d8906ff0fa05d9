package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "rudereminder/internal/application/service"
	"rudereminder/internal/config"

	// Infrastructure Layer
	"rudereminder/internal/infrastructure/ai"
	"rudereminder/internal/infrastructure/cache"
	"rudereminder/internal/infrastructure/database/gormdb"
	"rudereminder/internal/infrastructure/mailer"
	"rudereminder/internal/infrastructure/queue"
	"rudereminder/internal/infrastructure/realtime"
	"rudereminder/internal/infrastructure/scheduler"

	// Interfaces Layer
	"rudereminder/internal/interfaces/api/handler"
	"rudereminder/internal/interfaces/api/router"

	// Packages
	appLogger "rudereminder/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// shutdownDeps are the long-lived components stopped on exit, in order.
type shutdownDeps struct {
	server    *http.Server
	scheduler appService.SchedulerService
	followUps appService.FollowUpService
	cron      *scheduler.Scheduler
	hub       *realtime.Hub
	redis     *redis.Client
	db        *gorm.DB
}

func gracefulShutdown(deps shutdownDeps, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop accepting requests first so no new timers get armed
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Stopping scheduler...")
	deps.scheduler.Stop()
	deps.followUps.Stop()
	deps.cron.Stop()
	log.Println("Scheduler stopped.")

	deps.hub.Close()
	if deps.redis != nil {
		_ = deps.redis.Close()
	}

	log.Println("Closing database connection...")
	if err := gormdb.Close(deps.db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Initialization ---
	appLog := appLogger.New(appLogger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer appLogger.Sync(appLog)
	appLog.Info("Logger initialized.")
	if cfg.JWTSecret == "" {
		appLog.Warn("JWT_SECRET not set, every authenticated request will be rejected")
	}

	// --- Infrastructure ---
	db, err := gormdb.Open(gormdb.Config{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL, LogLevel: cfg.DBLogLevel}, appLog)
	if err != nil {
		appLog.Error("Failed to open database", err)
		os.Exit(1)
	}
	userRepo := gormdb.NewUserRepository(db)
	reminderRepo := gormdb.NewReminderRepository(db)
	phraseRepo := gormdb.NewRudePhraseRepository(db)
	whitelistRepo := gormdb.NewWhitelistRepository(db)
	appLog.Info("Database and repositories initialized.")

	hub := realtime.NewHub(appLog)
	cronScheduler := scheduler.New(appLog)
	aiClient := ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, appLog)
	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, appLog)
	publisher := queue.NewPublisher(cfg.RabbitMQURL, appLog)
	rdb := cache.NewRedisClient(cache.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}, appLog)
	appLog.Info(fmt.Sprintf("Channels: ai=%t smtp=%t rabbitmq=%t redis=%t", aiClient.Enabled(), mail.Enabled(), publisher.Enabled(), rdb != nil))

	// --- Application Services ---
	tierSvc := appService.NewTierService(userRepo, appLog)
	whitelistSvc := appService.NewWhitelistService(whitelistRepo, appLog)
	if err := whitelistSvc.Seed(context.Background(), cfg.AdminWhitelist); err != nil {
		appLog.Error("Failed to seed whitelist", err)
	}
	followUpSvc := appService.NewFollowUpService(cronScheduler, reminderRepo, hub, appLog)
	dispatcherSvc := appService.NewDispatcherService(appService.DispatcherDeps{
		UserRepo:     userRepo,
		ReminderRepo: reminderRepo,
		Tier:         tierSvc,
		AI:           aiClient,
		Broadcaster:  hub,
		Mailer:       mail,
		Publisher:    publisher,
		FollowUps:    followUpSvc,
	}, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, reminderRepo, dispatcherSvc, appService.SchedulerOptions{
		SweepInterval:   cfg.SweepInterval,
		LookaheadWindow: cfg.LookaheadWindow,
	}, appLog)
	reminderSvc := appService.NewReminderService(appService.ReminderDeps{
		ReminderRepo: reminderRepo,
		UserRepo:     userRepo,
		PhraseRepo:   phraseRepo,
		Tier:         tierSvc,
		Scheduler:    schedulerSvc,
		FollowUps:    followUpSvc,
		AI:           aiClient,
	}, appLog)
	userSvc := appService.NewUserService(userRepo, whitelistSvc, tierSvc, appLog)
	voiceSvc := appService.NewVoiceService(hub, appLog)
	appLog.Info("Application services initialized.")

	// --- Initialize Schedules ---
	appLog.Info("Initializing reminder schedules...")
	if err := schedulerSvc.InitializeSchedules(context.Background()); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to initialize schedules on startup", err)
	} else {
		appLog.Info("Reminder schedules initialized.")
	}

	// --- Router ---
	echoRouter := router.NewRouter(&router.Config{
		ReminderHandler: handler.NewReminderHandler(reminderSvc, appLog),
		UserHandler:     handler.NewUserHandler(userSvc, appLog),
		VoiceHandler:    handler.NewVoiceHandler(voiceSvc, appLog),
		RealtimeHandler: handler.NewRealtimeHandler(hub, appLog),
		JWTSecret:       cfg.JWTSecret,
		RateLimit:       cfg.RateLimit,
		Redis:           rdb,
		Logger:          appLog,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(shutdownDeps{
		server:    apiServer,
		scheduler: schedulerSvc,
		followUps: followUpSvc,
		cron:      cronScheduler,
		hub:       hub,
		redis:     rdb,
		db:        db,
	}, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"study-plan-assistant/config"
	_ "study-plan-assistant/docs" // Swagger docs
	chatUsecase "study-plan-assistant/internal/chat/usecase"
	"study-plan-assistant/internal/conversation"
	"study-plan-assistant/internal/httpserver"
	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/internal/schedule"
	"study-plan-assistant/internal/storage"
	taskSqlite "study-plan-assistant/internal/task/repository/sqlite"
	taskUsecase "study-plan-assistant/internal/task/usecase"
	"study-plan-assistant/pkg/gcalendar"
	"study-plan-assistant/pkg/log"
	"study-plan-assistant/pkg/openrouter"

	chatHTTP "study-plan-assistant/internal/chat/delivery/http"
	scheduleHTTP "study-plan-assistant/internal/schedule/delivery/http"
	taskHTTP "study-plan-assistant/internal/task/delivery/http"
)

// @title       Study Plan Assistant API
// @description AI study planning assistant with conversational plan building, conflict detection, and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Plan Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage path: %s", cfg.Storage.Path)

	// 3. Storage
	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			logger.Error(ctx, "Failed to create storage directory: ", mkErr)
			return
		}
	}

	store, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	// 4. OpenRouter LLM client
	llm := openrouter.NewClient(cfg.OpenRouter.APIKey)
	if cfg.OpenRouter.Model != "" {
		llm.SetModel(cfg.OpenRouter.Model)
	}
	if cfg.OpenRouter.Referer != "" {
		llm.SetReferer(cfg.OpenRouter.Referer)
	}
	logger.Infof(ctx, "OpenRouter model: %s", cfg.OpenRouter.Model)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Domain wiring
	convStore := conversation.NewStore(store)
	schedManager := schedule.NewManager(store)

	taskRepo := taskSqlite.New(logger, store.DB())
	taskUC := taskUsecase.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.Timezone)
	chatUC := chatUsecase.New(logger, llm, convStore, schedManager, taskUC, taskRepo, cfg.GoogleCalendar.ExportByDefault)

	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHTTP.New(logger, chatUC),
		TaskHandler:     taskHTTP.New(logger, taskUC),
		ScheduleHandler: scheduleHTTP.New(logger, schedManager),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

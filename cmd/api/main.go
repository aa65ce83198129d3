package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intelligent-voice-backend/config"
	_ "intelligent-voice-backend/docs" // Swagger docs
	"intelligent-voice-backend/internal/httpserver"
	sqliteRepo "intelligent-voice-backend/internal/voice/repository/sqlite"
	"intelligent-voice-backend/pkg/llmprovider"
	"intelligent-voice-backend/pkg/log"
)

// @title       Intelligent Voice Backend API
// @description Conversational intent resolution for an educational platform: page-aware voice turns, per-user memory, and analytics.
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

	logger.Info(ctx, "Starting Intelligent Voice Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.SQLite.Path)

	// 3. Storage
	store, err := sqliteRepo.New(cfg.SQLite.Path, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer store.Close()

	// 4. LLM providers (optional)
	var llmManager *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, resolving locally only: %v", err)
	} else if len(providers) > 0 {
		llmManager = llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, resolving locally only")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Store:           store,
		LLMManager:      llmManager,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/windfall/pitch_service/internal/client"
	"github.com/windfall/pitch_service/internal/config"
	"github.com/windfall/pitch_service/internal/handler/http"
	"github.com/windfall/pitch_service/internal/logger"
	"github.com/windfall/pitch_service/internal/server"
	"github.com/windfall/pitch_service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.Environment).Msg("Starting pitch_service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients
	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, pitch analysis will return fallback feedback")
	}
	chatClient := client.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, nil).WithModel(cfg.FeedbackModel)
	log.Info().
		Str("base_url", cfg.OpenAIBaseURL).
		Str("model", chatClient.Model()).
		Dur("timeout", cfg.FeedbackTimeout).
		Msg("Chat completion client initialized")

	// Initialize services
	feedbackService := service.NewFeedbackService(chatClient, service.FeedbackConfig{
		Temperature: cfg.FeedbackTemperature,
		Timeout:     cfg.FeedbackTimeout,
	}, log)
	catalogService := service.NewCatalogService()
	introductionService := service.NewIntroductionService(log)

	// Initialize handlers
	healthHandler := http.NewHealthHandler()
	handlers := server.Handlers{
		Health:       healthHandler,
		Feedback:     http.NewFeedbackHandler(log, feedbackService),
		Catalog:      http.NewCatalogHandler(catalogService),
		Introduction: http.NewIntroductionHandler(log, introductionService),
	}

	// Initialize HTTP server
	httpServer := server.NewHTTPServer(cfg, log, handlers)

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error().Err(err).Msg("HTTP server error")
			cancel()
		}
	}()
	healthHandler.SetReady(true)

	log.Info().
		Str("http_addr", cfg.HTTPAddress()).
		Msg("Servers started")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	healthHandler.SetReady(false)
	log.Info().Msg("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Server stopped")
}

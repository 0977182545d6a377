package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paa-ai/skydesk/pkg/config"
	"github.com/paa-ai/skydesk/pkg/handlers"
	"github.com/paa-ai/skydesk/pkg/logging"
	"github.com/paa-ai/skydesk/pkg/services"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.NewStructuredLogger(cfg.Logging)
	logger.Info("Starting assistant service",
		slog.String("addr", cfg.ListenAddr),
		slog.String("weaviate_host", cfg.Weaviate.Host),
		slog.String("chat_model", cfg.Chat.ModelName),
		slog.String("fallback_intent", string(cfg.FallbackIntent)),
		slog.Bool("llm_scorer", cfg.EnableLLMScorer),
	)

	ctx := context.Background()
	assistant, err := services.NewAssistantService(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize assistant", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := handlers.NewHandler(assistant, logger.Logger)
	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	assistant.Shutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

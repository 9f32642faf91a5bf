package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"procurement-api/internal/api"
	"procurement-api/internal/api/handlers"
	"procurement-api/internal/service"
	"procurement-api/pkg/config"
	"procurement-api/pkg/logger"
	"procurement-api/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title Procurement Recommendation API
// @version 1.0
// @description AI-powered procurement recommendation system using real-time supplier search data and a hosted Llama model.

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting procurement recommendation service")

	// Missing credentials do not stop startup; requests fail upstream instead.
	if cfg.SerpAPI.APIKey == "" {
		appLogger.Warn("SERPAPI_KEY is not set, supplier search will fail")
	}
	if cfg.Groq.APIKey == "" {
		appLogger.Warn("GROQ_API_KEY is not set, completion requests will fail")
	}

	// Initialize metrics
	var (
		collector metrics.Collector
		registry  *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		promCollector := metrics.NewCollector()
		collector = promCollector
		registry = promCollector.Registry()
	} else {
		collector = metrics.NewNoopCollector()
	}

	// Initialize services
	searchService := service.NewSearchService(&cfg.SerpAPI, appLogger)
	llmService := service.NewLLMService(&cfg.Groq, appLogger)
	recService := service.NewRecommendationService(searchService, llmService, collector, appLogger)

	// Initialize handlers
	procHandler := handlers.NewProcurementHandler(recService, collector, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, procHandler, registry, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

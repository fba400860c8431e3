package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internmatch/internal/api/routes"
	"internmatch/internal/config"
	"internmatch/internal/logging"
	"internmatch/internal/recommend"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Adapters); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Internship Recommendation API")

	// Build the engine and load the catalog. A failed load keeps the
	// service up and not-ready; requests get 503 until a restart with a
	// readable catalog.
	engine := recommend.NewEngine(cfg.Recommender.TopN)
	if err := engine.Load(cfg.Catalog.Path); err != nil {
		logger.Error("Failed to load catalog, serving in not-ready state", map[string]interface{}{
			"path":  cfg.Catalog.Path,
			"error": err.Error(),
		})
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, engine)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := logging.CloseLogging(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing logging: %v\n", err)
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}

// Package main implements the entry point for the Mufradat API server,
// the personalized learning and spaced-repetition engine behind the
// Arabic vocabulary app.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/aldirar/mufradat-api/internal/config"
	"github.com/aldirar/mufradat-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		log.Fatalf("Server failed: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires all
// application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"catalog_path", cfg.Catalog.Path,
		"snapshots_enabled", cfg.Database.URL != "")

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	return app, nil
}

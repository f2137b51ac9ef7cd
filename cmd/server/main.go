// Package main provides the HTTP service entry point for the ADHD screening
// engine.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dsm5-adhd-screener/internal/api"
	"github.com/dsm5-adhd-screener/internal/config"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(&cfg.Logging)
	logger.Infof("Starting ADHD Screening Server on %s:%d", cfg.Server.Host, cfg.Server.Port)

	server := api.NewServer(configManager, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}

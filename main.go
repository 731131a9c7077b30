package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sjsage522/freebiefinder/config"
	"sjsage522/freebiefinder/internal/api"
	"sjsage522/freebiefinder/internal/connector"
	"sjsage522/freebiefinder/logger"
	"sjsage522/freebiefinder/services/search"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("craigslist_url", cfg.CraigslistURL).
		Str("default_postal", cfg.DefaultPostal).
		Msg("Starting application")

	// Wire the connector, search service, and HTTP server
	craigslist := connector.NewCraigslistConnector(connector.CraigslistConfig{
		BaseURL: cfg.CraigslistURL,
	})
	logger.Info("Registered connector: %s", craigslist.Name())

	searchService := search.NewService(cfg.DefaultPostal, craigslist)
	server := api.NewServer(&cfg, searchService)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	// Start the server in a goroutine
	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("Starting HTTP server")
		serverDone <- httpServer.ListenAndServe()
	}()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	case err := <-serverDone:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server exited with error")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

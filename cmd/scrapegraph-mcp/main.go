// Package main provides the entry point for the scrapegraph-mcp server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kamath/scrapegraph-mcp/internal/config"
	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
	"github.com/kamath/scrapegraph-mcp/internal/server"
	"github.com/kamath/scrapegraph-mcp/internal/tools"
)

const version = "0.1.0"

func main() {
	// Best-effort .env load before reading the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup logger (stderr text, optional file JSON; stdout is the MCP transport)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("scrapegraph-mcp starting",
		"version", version,
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build the API client only when a key is configured. Without one the
	// server still runs; every tool call answers with a not-initialized
	// error instead of crashing the host session.
	var client *scrapegraph.Client
	if cfg.APIKey != "" {
		client = scrapegraph.NewClient(cfg.APIKey,
			scrapegraph.WithBaseURL(cfg.BaseURL),
			scrapegraph.WithTimeout(cfg.Timeout),
			scrapegraph.WithLogger(logger),
		)
		defer client.Close()
	} else {
		logger.Warn("SGAI_API_KEY not set, tools will return a not-initialized error")
	}

	// Create and setup server
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools
	deps := &tools.Dependencies{
		Client: client,
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info("tools registered", "count", 8)

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

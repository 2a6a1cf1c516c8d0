// Package main is the entry point for the Password Auditor API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/password-auditor/backend/config"
	"github.com/password-auditor/backend/internal/domain/valueobject"
	"github.com/password-auditor/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Password Auditor API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"breach_lookup_enabled", cfg.HIBP.Enabled,
	)

	// Build the wordlist once; it is immutable for the process lifetime.
	wordlist := valueobject.NewWordlist()
	if cfg.Evaluator.WordlistFile != "" {
		loaded, err := valueobject.NewWordlistFromFile(cfg.Evaluator.WordlistFile)
		if err != nil {
			slog.Warn("Failed to load wordlist file, using builtin wordlist",
				"file", cfg.Evaluator.WordlistFile,
				"error", err,
			)
		} else {
			wordlist = loaded
			slog.Info("Wordlist loaded", "file", cfg.Evaluator.WordlistFile)
		}
	}

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, wordlist)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

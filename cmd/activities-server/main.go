package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/api"
	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/config"
	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/directory"
	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/logger"
	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// 1. Seed the directory
	seed := directory.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = directory.LoadSeed(cfg.SeedFile)
		if err != nil {
			zl.Fatal("failed to load seed file", zap.String("path", cfg.SeedFile), zap.Error(err))
		}
	}
	dir := directory.New(seed, directory.Options{EnforceCapacity: cfg.EnforceCapacity})
	for name, a := range dir.List() {
		metrics.SetParticipants(name, len(a.Participants))
	}
	zl.Info("directory ready",
		zap.Int("activities", len(seed)),
		zap.Bool("enforce_capacity", cfg.EnforceCapacity),
		zap.String("seed_file", cfg.SeedFile),
	)

	// 2. HTTP API
	gin.SetMode(gin.ReleaseMode)
	h := api.NewHandler(dir, zl)
	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      api.NewRouter(h, cfg.CORSOrigin),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("http listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 3. Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	zl.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("stopped")
}

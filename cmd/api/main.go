package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwebster45206/mathbrain/internal/config"
	"github.com/jwebster45206/mathbrain/internal/handlers"
	"github.com/jwebster45206/mathbrain/internal/logger"
	"github.com/jwebster45206/mathbrain/internal/middleware"
	"github.com/jwebster45206/mathbrain/internal/services"
	"github.com/jwebster45206/mathbrain/pkg/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting mathbrain skill API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"webhook_path", cfg.WebhookPath,
		"reply_cache", cfg.RedisURL != "")

	var (
		cache   services.Cache
		replies *services.ReplyCache
	)
	if cfg.RedisURL != "" {
		redisService, err := services.NewRedisService(cfg.RedisURL, log)
		if err != nil {
			log.Error("Invalid Redis configuration", "error", err)
			os.Exit(1)
		}
		cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := redisService.WaitForConnection(cacheCtx); err != nil {
			cacheCancel()
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		cacheCancel()
		log.Info("Reply cache connection established successfully", "ttl", cfg.ReplyCacheTTL)

		cache = redisService
		replies = services.NewReplyCache(redisService, cfg.ReplyCacheTTL)
	}

	engine := scenario.NewEngine(scenario.NewRegistry(), scenario.Options{
		SkillName:          cfg.SkillName,
		RepeatConfirmation: cfg.RepeatConfirmation,
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.WebhookPath, handlers.NewWebhookHandler(engine, replies, log))
	mux.Handle("/health", handlers.NewHealthHandler(cache, log))
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logger(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Error("Error closing cache connection", "error", err)
		}
	}

	log.Info("Server exited")
}

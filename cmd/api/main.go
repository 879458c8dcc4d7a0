package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/database"
	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/server"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}

	// Continue without the price cache and rate limiting if Redis is not available
	var redisClient *redis.Client
	if cfg.RedisURL != "" || cfg.RedisHost != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, running without cache and rate limits", zap.Error(err))
			redisClient = nil
		}
	}

	srv := server.New(cfg, db, redisClient)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.L().Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logger.Info("server stopped")
}
